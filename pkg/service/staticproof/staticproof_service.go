/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination staticproof_service_mocks_test.go -self_package mocks -package staticproof -source=staticproof_service.go -mock_names revocationRegistry=MockRevocationRegistry
//go:generate mockgen -destination holder_mocks_test.go -package staticproof github.com/trustbloc/presentproof/pkg/holder Store,Holder
//go:generate mockgen -destination ledger_mocks_test.go -package staticproof github.com/trustbloc/presentproof/pkg/ledger Executor,Ledger

// Package staticproof assembles anoncreds presentations: given a proof
// request and the holder's credential selection it resolves every distinct
// credential, ledger object and revocation artifact exactly once, then
// delegates the zero-knowledge proof construction to the crypto holder.
package staticproof

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.uber.org/zap"

	"github.com/trustbloc/presentproof/internal/logfields"
	"github.com/trustbloc/presentproof/pkg/holder"
	"github.com/trustbloc/presentproof/pkg/indy"
	"github.com/trustbloc/presentproof/pkg/ledger"
	noopMetricsProvider "github.com/trustbloc/presentproof/pkg/observability/metrics/noop"
	"github.com/trustbloc/presentproof/pkg/revocation"
)

var logger = log.New("staticproof-service")

type revocationRegistry interface {
	Definition() json.RawMessage
	GetOrFetchLocalTailsPath(ctx context.Context) (string, error)
}

// registryBuilder turns a raw ledger registry definition into a registry with
// local tails-file access.
type registryBuilder func(def json.RawMessage) (revocationRegistry, error)

type metricsProvider interface {
	CreatePresentationTime(value time.Duration)
	CreateRevocationStateTime(value time.Duration)
}

type Config struct {
	CredentialStore holder.Store
	Holder          holder.Holder
	LedgerExecutor  ledger.Executor
	RegistryOpts    []revocation.Opt
	Metrics         metricsProvider

	// Now overrides the wall clock used to default open-ended non-revocation
	// intervals. Leave nil outside of tests.
	Now func() time.Time
}

type Service struct {
	credentialStore holder.Store
	holder          holder.Holder
	ledgerExecutor  ledger.Executor
	newRegistry     registryBuilder
	metrics         metricsProvider
	now             func() time.Time
}

func New(config *Config) *Service {
	metrics := config.Metrics
	if metrics == nil {
		metrics = &noopMetricsProvider.NoMetrics{}
	}

	now := config.Now
	if now == nil {
		now = time.Now
	}

	registryOpts := config.RegistryOpts

	return &Service{
		credentialStore: config.CredentialStore,
		holder:          config.Holder,
		ledgerExecutor:  config.LedgerExecutor,
		newRegistry: func(def json.RawMessage) (revocationRegistry, error) {
			return revocation.FromDefinition(def, registryOpts...)
		},
		metrics: metrics,
		now:     now,
	}
}

// requestedReferent is the per-referent working state for one presentation
// build: the credential backing the referent, its effective non-revocation
// interval and the revocation timestamp resolved for it.
type requestedReferent struct {
	credID    string
	interval  *indy.NonRevocationInterval
	timestamp *int64
	// explicit marks a timestamp supplied by the holder; it is never
	// overwritten by delta resolution.
	explicit bool
}

type deltaKey struct {
	revRegID string
	from     int64
	to       int64
}

// registryDelta is one cached revocation delta along with the credential that
// triggered its fetch and the ledger timestamp it resolved to.
type registryDelta struct {
	revRegID  string
	credID    string
	delta     json.RawMessage
	timestamp int64
}

// CreatePresentation builds an anoncreds presentation. The requested
// credentials structure is annotated in place with resolved revocation
// timestamps. Any failure aborts the build; no partial proof is returned.
func (s *Service) CreatePresentation(
	ctx context.Context,
	proofRequest *indy.ProofRequest,
	requestedCredentials *indy.RequestedCredentials,
) (indy.Proof, error) {
	logger.Debugc(ctx, "CreatePresentation begin")
	startTime := time.Now()

	defer func() {
		s.metrics.CreatePresentationTime(time.Since(startTime))
	}()

	referents := collectReferents(proofRequest, requestedCredentials)

	credentials, err := s.resolveCredentials(ctx, referents)
	if err != nil {
		return nil, err
	}

	dropSuperfluousTimestamps(ctx, requestedCredentials, referents, credentials)

	schemas, credDefs, registries, err := s.resolveLedgerObjects(ctx, credentials)
	if err != nil {
		return nil, err
	}

	deltas, err := s.resolveDeltas(ctx, referents, credentials)
	if err != nil {
		return nil, err
	}

	revocationStates, err := s.buildRevocationStates(ctx, deltas, credentials, registries)
	if err != nil {
		return nil, err
	}

	mergeTimestamps(requestedCredentials, referents)

	proof, err := s.holder.CreatePresentation(ctx, proofRequest, requestedCredentials, schemas, credDefs, revocationStates)
	if err != nil {
		return nil, fmt.Errorf("create presentation: %w", err)
	}

	logger.Debugc(ctx, "CreatePresentation succeed")

	return proof, nil
}

// collectReferents merges the attribute and predicate sections of the
// holder's selection into per-referent working state, attaching the effective
// non-revocation interval where the proof request defines one for the group.
func collectReferents(
	proofRequest *indy.ProofRequest,
	requestedCredentials *indy.RequestedCredentials,
) map[string]*requestedReferent {
	intervals := proofRequest.NonRevocIntervals()
	referents := make(map[string]*requestedReferent)

	for reft, item := range requestedCredentials.RequestedAttributes {
		r := &requestedReferent{credID: item.CredID, timestamp: item.Timestamp, explicit: item.Timestamp != nil}

		if _, ok := proofRequest.RequestedAttributes[reft]; ok {
			r.interval = intervals[reft]
		}

		referents[reft] = r
	}

	for reft, item := range requestedCredentials.RequestedPredicates {
		r := &requestedReferent{credID: item.CredID, timestamp: item.Timestamp, explicit: item.Timestamp != nil}

		if _, ok := proofRequest.RequestedPredicates[reft]; ok {
			r.interval = intervals[reft]
		}

		referents[reft] = r
	}

	return referents
}

// resolveCredentials fetches every distinct credential referenced by the
// request, each exactly once.
func (s *Service) resolveCredentials(
	ctx context.Context,
	referents map[string]*requestedReferent,
) (map[string]*indy.CredentialInfo, error) {
	credentials := make(map[string]*indy.CredentialInfo)

	for _, reft := range sortedKeys(referents) {
		credID := referents[reft].credID

		if _, ok := credentials[credID]; ok {
			continue
		}

		credential, err := s.credentialStore.GetCredential(ctx, credID)
		if err != nil {
			return nil, fmt.Errorf("get credential %s: %w", credID, err)
		}

		credentials[credID] = credential
	}

	return credentials, nil
}

// dropSuperfluousTimestamps removes holder-supplied timestamps that cannot
// correspond to a non-revocation interval because the backing credential is
// not revocable. This normalizes the request rather than failing it.
func dropSuperfluousTimestamps(
	ctx context.Context,
	requestedCredentials *indy.RequestedCredentials,
	referents map[string]*requestedReferent,
	credentials map[string]*indy.CredentialInfo,
) {
	drop := func(reft, credID string, timestamp **int64) {
		if credentials[credID].Revocable() || *timestamp == nil {
			return
		}

		*timestamp = nil

		referents[reft].timestamp = nil
		referents[reft].explicit = false

		logger.Infoc(ctx, "Removed superfluous timestamp for non-revocable credential",
			logfields.WithReferent(reft), logfields.WithCredentialID(credID))
	}

	for reft, item := range requestedCredentials.RequestedAttributes {
		drop(reft, item.CredID, &item.Timestamp)
	}

	for reft, item := range requestedCredentials.RequestedPredicates {
		drop(reft, item.CredID, &item.Timestamp)
	}
}

// resolveLedgerObjects fetches the schema and credential definition for every
// distinct credential, and the revocation registry definition for every
// revocable one. Each distinct identifier is fetched exactly once.
func (s *Service) resolveLedgerObjects(
	ctx context.Context,
	credentials map[string]*indy.CredentialInfo,
) (map[string]json.RawMessage, map[string]json.RawMessage, map[string]revocationRegistry, error) {
	schemas := make(map[string]json.RawMessage)
	credDefs := make(map[string]json.RawMessage)
	registries := make(map[string]revocationRegistry)

	for _, credID := range sortedKeys(credentials) {
		credential := credentials[credID]

		if _, ok := schemas[credential.SchemaID]; !ok {
			schema, err := s.getSchema(ctx, credential.SchemaID)
			if err != nil {
				return nil, nil, nil, err
			}

			schemas[credential.SchemaID] = schema
		}

		if _, ok := credDefs[credential.CredDefID]; !ok {
			credDef, err := s.getCredDef(ctx, credential.CredDefID)
			if err != nil {
				return nil, nil, nil, err
			}

			credDefs[credential.CredDefID] = credDef
		}

		if !credential.Revocable() {
			continue
		}

		if _, ok := registries[credential.RevRegID]; !ok {
			registry, err := s.getRegistry(ctx, credential.RevRegID)
			if err != nil {
				return nil, nil, nil, err
			}

			registries[credential.RevRegID] = registry
		}
	}

	return schemas, credDefs, registries, nil
}

func (s *Service) getSchema(ctx context.Context, schemaID string) (json.RawMessage, error) {
	ld, err := s.ledgerExecutor.LedgerForIdentifier(ctx, schemaID, ledger.ObjectKindSchema)
	if err != nil {
		return nil, fmt.Errorf("select ledger for schema %s: %w", schemaID, err)
	}

	defer s.closeLedger(ctx, ld)

	schema, err := ld.GetSchema(ctx, schemaID)
	if err != nil {
		return nil, fmt.Errorf("get schema %s: %w", schemaID, err)
	}

	logger.Debugc(ctx, "Resolved schema", logfields.WithSchemaID(schemaID))

	return schema, nil
}

func (s *Service) getCredDef(ctx context.Context, credDefID string) (json.RawMessage, error) {
	ld, err := s.ledgerExecutor.LedgerForIdentifier(ctx, credDefID, ledger.ObjectKindCredDef)
	if err != nil {
		return nil, fmt.Errorf("select ledger for credential definition %s: %w", credDefID, err)
	}

	defer s.closeLedger(ctx, ld)

	credDef, err := ld.GetCredentialDefinition(ctx, credDefID)
	if err != nil {
		return nil, fmt.Errorf("get credential definition %s: %w", credDefID, err)
	}

	logger.Debugc(ctx, "Resolved credential definition", logfields.WithCredDefID(credDefID))

	return credDef, nil
}

func (s *Service) getRegistry(ctx context.Context, revRegID string) (revocationRegistry, error) {
	ld, err := s.ledgerExecutor.LedgerForIdentifier(ctx, revRegID, ledger.ObjectKindRevRegDef)
	if err != nil {
		return nil, fmt.Errorf("select ledger for revocation registry %s: %w", revRegID, err)
	}

	defer s.closeLedger(ctx, ld)

	def, err := ld.GetRevocationRegistryDefinition(ctx, revRegID)
	if err != nil {
		return nil, fmt.Errorf("get revocation registry definition %s: %w", revRegID, err)
	}

	registry, err := s.newRegistry(def)
	if err != nil {
		return nil, fmt.Errorf("parse revocation registry definition %s: %w", revRegID, err)
	}

	return registry, nil
}

// resolveDeltas computes one revocation delta per distinct
// (revRegID, from, to) key, then stamps the delta timestamp onto every
// referent backed by the credential the delta was fetched for. One credential
// often satisfies many requested attributes and predicates.
func (s *Service) resolveDeltas(
	ctx context.Context,
	referents map[string]*requestedReferent,
	credentials map[string]*indy.CredentialInfo,
) (map[deltaKey]*registryDelta, error) {
	epochNow := s.now().Unix()
	deltas := make(map[deltaKey]*registryDelta)

	for _, reft := range sortedKeys(referents) {
		precis := referents[reft]
		credential := credentials[precis.credID]

		if !credential.Revocable() || precis.timestamp != nil || precis.interval == nil {
			continue
		}

		key := deltaKey{
			revRegID: credential.RevRegID,
			from:     precis.interval.FromOrDefault(),
			to:       precis.interval.ToOrDefault(epochNow),
		}

		if _, ok := deltas[key]; !ok {
			delta, timestamp, err := s.getDelta(ctx, key)
			if err != nil {
				return nil, err
			}

			deltas[key] = &registryDelta{
				revRegID:  key.revRegID,
				credID:    precis.credID,
				delta:     delta,
				timestamp: timestamp,
			}
		}

		for _, stamp := range referents {
			if stamp.credID != precis.credID || stamp.explicit {
				continue
			}

			timestamp := deltas[key].timestamp
			stamp.timestamp = &timestamp
		}
	}

	return deltas, nil
}

func (s *Service) getDelta(ctx context.Context, key deltaKey) (json.RawMessage, int64, error) {
	ld, err := s.ledgerExecutor.LedgerForIdentifier(ctx, key.revRegID, ledger.ObjectKindRevRegDelta)
	if err != nil {
		return nil, 0, fmt.Errorf("select ledger for revocation registry %s: %w", key.revRegID, err)
	}

	defer s.closeLedger(ctx, ld)

	delta, timestamp, err := ld.GetRevocationRegistryDelta(ctx, key.revRegID, key.from, key.to)
	if err != nil {
		return nil, 0, fmt.Errorf("get revocation registry delta %s [%d, %d]: %w", key.revRegID, key.from, key.to, err)
	}

	return delta, timestamp, nil
}

// buildRevocationStates produces one non-revocation state per distinct
// (revRegID, timestamp) pair, using the locally cached tails file of the
// registry. A holder failure is fatal for the build and is not retried.
func (s *Service) buildRevocationStates(
	ctx context.Context,
	deltas map[deltaKey]*registryDelta,
	credentials map[string]*indy.CredentialInfo,
	registries map[string]revocationRegistry,
) (map[string]map[int64]json.RawMessage, error) {
	states := make(map[string]map[int64]json.RawMessage)

	for _, key := range sortedDeltaKeys(deltas) {
		d := deltas[key]

		if _, ok := states[d.revRegID]; !ok {
			states[d.revRegID] = make(map[int64]json.RawMessage)
		}

		if _, ok := states[d.revRegID][d.timestamp]; ok {
			continue
		}

		registry := registries[d.revRegID]

		tailsPath, err := registry.GetOrFetchLocalTailsPath(ctx)
		if err != nil {
			return nil, fmt.Errorf("get tails file for %s: %w", d.revRegID, err)
		}

		stateStart := time.Now()

		state, err := s.holder.CreateRevocationState(
			ctx, credentials[d.credID].CredRevID, registry.Definition(), d.delta, d.timestamp, tailsPath)

		s.metrics.CreateRevocationStateTime(time.Since(stateStart))

		if err != nil {
			fields := []zap.Field{
				log.WithError(err), logfields.WithCredentialID(d.credID),
				logfields.WithRevRegID(d.revRegID), logfields.WithTimestamp(d.timestamp),
				logfields.WithTailsPath(tailsPath),
			}

			var holderErr *holder.Error
			if errors.As(err, &holderErr) {
				fields = append(fields, logfields.WithHolderErrorCode(holderErr.Code))
			}

			logger.Errorc(ctx, "Failed to create revocation state", fields...)

			return nil, fmt.Errorf("create revocation state: %w", err)
		}

		states[d.revRegID][d.timestamp] = state
	}

	return states, nil
}

// mergeTimestamps writes the resolved timestamps back onto the holder's
// selection, matched by referent name in both sections.
func mergeTimestamps(requestedCredentials *indy.RequestedCredentials, referents map[string]*requestedReferent) {
	for reft, precis := range referents {
		if precis.timestamp == nil {
			continue
		}

		if item, ok := requestedCredentials.RequestedAttributes[reft]; ok {
			item.Timestamp = precis.timestamp
		}

		if item, ok := requestedCredentials.RequestedPredicates[reft]; ok {
			item.Timestamp = precis.timestamp
		}
	}
}

func (s *Service) closeLedger(ctx context.Context, ld ledger.Ledger) {
	if err := ld.Close(); err != nil {
		logger.Warnc(ctx, "close ledger handle", log.WithError(err))
	}
}

// sortedKeys keeps iteration order stable so a build is deterministic for a
// given input and clock.
func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)

	return keys
}

func sortedDeltaKeys(deltas map[deltaKey]*registryDelta) []deltaKey {
	keys := lo.Keys(deltas)

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].revRegID != keys[j].revRegID {
			return keys[i].revRegID < keys[j].revRegID
		}

		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}

		return keys[i].to < keys[j].to
	})

	return keys
}
