/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package revocation wraps ledger revocation-registry definitions with the
// local tails-file material needed to build revocation states.
package revocation

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/btcsuite/btcutil/base58"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/presentproof/internal/logfields"
)

var logger = log.New("revocation-registry")

// ErrNoTailsLocation indicates the registry definition carries no tails file
// URI, so the tails file cannot be fetched.
var ErrNoTailsLocation = errors.New("registry definition has no tails location")

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Registry is a revocation registry definition fetched from the ledger,
// owning a lazily-fetched local copy of its tails file.
type Registry struct {
	ID            string
	CredDefID     string
	Type          string
	Tag           string
	TailsHash     string
	TailsLocation string

	// RawDef is the registry definition exactly as the ledger returned it,
	// passed through to the crypto holder.
	RawDef json.RawMessage

	tailsDir string
	client   httpClient

	mu        sync.Mutex
	tailsPath string
}

// Opt configures a Registry.
type Opt func(*Registry)

// WithHTTPClient overrides the client used to download the tails file.
func WithHTTPClient(client httpClient) Opt {
	return func(r *Registry) {
		r.client = client
	}
}

// WithTailsDir sets the base directory tails files are cached under.
func WithTailsDir(dir string) Opt {
	return func(r *Registry) {
		r.tailsDir = dir
	}
}

// FromDefinition builds a Registry from a raw ledger registry definition.
func FromDefinition(def json.RawMessage, opts ...Opt) (*Registry, error) {
	id := gjson.GetBytes(def, "id").String()
	if id == "" {
		return nil, fmt.Errorf("registry definition has no id")
	}

	// an empty tails hash would alias the cache directory itself
	tailsHash := gjson.GetBytes(def, "value.tailsHash").String()
	if tailsHash == "" {
		return nil, fmt.Errorf("registry definition for %s has no tails hash", id)
	}

	r := &Registry{
		ID:            id,
		CredDefID:     gjson.GetBytes(def, "credDefId").String(),
		Type:          gjson.GetBytes(def, "revocDefType").String(),
		Tag:           gjson.GetBytes(def, "tag").String(),
		TailsHash:     tailsHash,
		TailsLocation: gjson.GetBytes(def, "value.tailsLocation").String(),
		RawDef:        def,
		tailsDir:      filepath.Join(os.TempDir(), "indy", "tails"),
		client:        http.DefaultClient,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Definition returns the registry definition exactly as the ledger returned
// it.
func (r *Registry) Definition() json.RawMessage {
	return r.RawDef
}

// GetOrFetchLocalTailsPath returns the local path of the registry's tails
// file, downloading it from the tails location on first use. The fetch
// happens at most once per Registry; subsequent calls return the cached path.
func (r *Registry) GetOrFetchLocalTailsPath(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tailsPath != "" {
		return r.tailsPath, nil
	}

	localPath := filepath.Join(r.tailsDir, r.TailsHash)

	if _, err := os.Stat(localPath); err == nil {
		r.tailsPath = localPath

		return localPath, nil
	}

	if err := r.fetchTailsFile(ctx, localPath); err != nil {
		return "", err
	}

	r.tailsPath = localPath

	logger.Debugc(ctx, "tails file cached locally",
		logfields.WithRevRegID(r.ID), logfields.WithTailsPath(localPath))

	return localPath, nil
}

func (r *Registry) fetchTailsFile(ctx context.Context, localPath string) error {
	if r.TailsLocation == "" {
		return ErrNoTailsLocation
	}

	logger.Debugc(ctx, "fetching tails file", logfields.WithRevRegID(r.ID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.TailsLocation, nil)
	if err != nil {
		return fmt.Errorf("create tails request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch tails file from %s: %w", r.TailsLocation, err)
	}

	defer func() {
		if errClose := resp.Body.Close(); errClose != nil {
			logger.Warnc(ctx, "close tails response body", log.WithError(errClose))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch tails file from %s: status %d", r.TailsLocation, resp.StatusCode)
	}

	if err = os.MkdirAll(r.tailsDir, 0o700); err != nil {
		return fmt.Errorf("create tails dir: %w", err)
	}

	tmpPath := filepath.Join(r.tailsDir, uuid.NewString()+".tmp")

	if err = r.writeVerified(resp.Body, tmpPath); err != nil {
		return err
	}

	if err = os.Rename(tmpPath, localPath); err != nil {
		return fmt.Errorf("move tails file into place: %w", err)
	}

	return nil
}

func (r *Registry) writeVerified(body io.Reader, tmpPath string) error {
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create tails temp file: %w", err)
	}

	hash := sha256.New()

	_, err = io.Copy(io.MultiWriter(f, hash), body)

	if errClose := f.Close(); errClose != nil && err == nil {
		err = errClose
	}

	if err != nil {
		removeTemp(tmpPath)

		return fmt.Errorf("write tails file: %w", err)
	}

	if digest := base58.Encode(hash.Sum(nil)); digest != r.TailsHash {
		removeTemp(tmpPath)

		return fmt.Errorf("tails file for %s failed integrity check: got %s want %s", r.ID, digest, r.TailsHash)
	}

	return nil
}

func removeTemp(path string) {
	if err := os.Remove(path); err != nil {
		logger.Warn("remove tails temp file", log.WithError(err))
	}
}
