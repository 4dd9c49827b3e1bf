/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package ledger defines the boundary to the verifiable data registry:
// a handle over one ledger instance plus a selection strategy that routes an
// object identifier to the ledger instance holding it.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
)

// ObjectKind identifies the kind of ledger object a request is for. The
// executor uses it to route multi-ledger deployments.
type ObjectKind string

const (
	ObjectKindSchema      ObjectKind = "schema"
	ObjectKindCredDef     ObjectKind = "credential-definition"
	ObjectKindRevRegDef   ObjectKind = "revocation-registry-definition"
	ObjectKindRevRegDelta ObjectKind = "revocation-registry-delta"
)

var (
	// ErrUnavailable indicates the selected ledger could not be reached.
	ErrUnavailable = errors.New("ledger unavailable")
	// ErrObjectNotFound indicates the requested object does not exist on the
	// selected ledger.
	ErrObjectNotFound = errors.New("ledger object not found")
)

// Ledger is a scoped handle over a single ledger instance. Callers acquire a
// handle per fetch through an Executor and must Close it as soon as the fetch
// completes.
type Ledger interface {
	GetSchema(ctx context.Context, schemaID string) (json.RawMessage, error)
	GetCredentialDefinition(ctx context.Context, credDefID string) (json.RawMessage, error)
	GetRevocationRegistryDefinition(ctx context.Context, revRegID string) (json.RawMessage, error)
	// GetRevocationRegistryDelta returns the net change in the registry state
	// over [from, to] along with the ledger timestamp the delta is valid at.
	GetRevocationRegistryDelta(ctx context.Context, revRegID string, from, to int64) (json.RawMessage, int64, error)
	Close() error
}

// Executor selects the ledger instance to use for one object fetch. It is the
// multi-ledger routing strategy; a single-ledger deployment returns the same
// handle for every identifier.
type Executor interface {
	LedgerForIdentifier(ctx context.Context, id string, kind ObjectKind) (Ledger, error)
}
