/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package indy contains the anoncreds data model shared by the static proof
// service and its collaborators: proof requests, requested credentials,
// credential info snapshots and the final proof payload.
package indy

// NonRevocationInterval is the [from, to] window (epoch seconds) a proof of
// non-revocation must certify. Both bounds are optional on the wire.
type NonRevocationInterval struct {
	From *int64 `json:"from,omitempty"`
	To   *int64 `json:"to,omitempty"`
}

// ProofRequestAttr is a single requested attribute group within a proof request.
type ProofRequestAttr struct {
	Name         string                 `json:"name,omitempty"`
	Names        []string               `json:"names,omitempty"`
	Restrictions interface{}            `json:"restrictions,omitempty"`
	NonRevoked   *NonRevocationInterval `json:"non_revoked,omitempty"`
}

// ProofRequestPredicate is a single requested predicate within a proof request.
type ProofRequestPredicate struct {
	Name         string                 `json:"name"`
	PType        string                 `json:"p_type"`
	PValue       int32                  `json:"p_value"`
	Restrictions interface{}            `json:"restrictions,omitempty"`
	NonRevoked   *NonRevocationInterval `json:"non_revoked,omitempty"`
}

// ProofRequest is an anoncreds-formatted proof request. Referent names map to
// requested attribute or predicate groups.
type ProofRequest struct {
	Name                string                           `json:"name"`
	Version             string                           `json:"version"`
	Nonce               string                           `json:"nonce,omitempty"`
	RequestedAttributes map[string]ProofRequestAttr      `json:"requested_attributes"`
	RequestedPredicates map[string]ProofRequestPredicate `json:"requested_predicates"`
	NonRevoked          *NonRevocationInterval           `json:"non_revoked,omitempty"`
}

// NonRevocIntervals resolves the effective non-revocation interval per
// referent. A group-level interval overrides the request-level one; referents
// with neither are absent from the result. An interval with from == to is
// normalized to start at 0, which is how the ledger expects a point-in-time
// query to be phrased.
func (pr *ProofRequest) NonRevocIntervals() map[string]*NonRevocationInterval {
	intervals := make(map[string]*NonRevocationInterval)

	for reft, attr := range pr.RequestedAttributes {
		if interval := effectiveInterval(attr.NonRevoked, pr.NonRevoked); interval != nil {
			intervals[reft] = interval
		}
	}

	for reft, pred := range pr.RequestedPredicates {
		if interval := effectiveInterval(pred.NonRevoked, pr.NonRevoked); interval != nil {
			intervals[reft] = interval
		}
	}

	return intervals
}

func effectiveInterval(item, request *NonRevocationInterval) *NonRevocationInterval {
	interval := item
	if interval == nil {
		interval = request
	}

	if interval == nil {
		return nil
	}

	normalized := &NonRevocationInterval{From: interval.From, To: interval.To}

	if normalized.To != nil && normalized.From != nil && *normalized.From == *normalized.To {
		zero := int64(0)
		normalized.From = &zero
	}

	return normalized
}

// FromOrDefault returns the lower bound, defaulting to 0.
func (i *NonRevocationInterval) FromOrDefault() int64 {
	if i.From == nil {
		return 0
	}

	return *i.From
}

// ToOrDefault returns the upper bound, defaulting to the given epoch time.
func (i *NonRevocationInterval) ToOrDefault(epochNow int64) int64 {
	if i.To == nil {
		return epochNow
	}

	return *i.To
}
