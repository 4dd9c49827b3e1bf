/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package indy

// RequestedAttribute maps a proof-request attribute referent to the credential
// the holder wants to satisfy it with. Timestamp, when set, pins the
// revocation state the proof must be built against.
type RequestedAttribute struct {
	CredID    string `json:"cred_id"`
	Revealed  bool   `json:"revealed"`
	Timestamp *int64 `json:"timestamp,omitempty"`
}

// RequestedPredicate maps a proof-request predicate referent to the credential
// the holder wants to satisfy it with.
type RequestedPredicate struct {
	CredID    string `json:"cred_id"`
	Timestamp *int64 `json:"timestamp,omitempty"`
}

// RequestedCredentials is the holder's selection of credentials per referent.
// The static proof service annotates it in place with resolved revocation
// timestamps before handing it to the crypto holder.
type RequestedCredentials struct {
	SelfAttestedAttributes map[string]string              `json:"self_attested_attributes,omitempty"`
	RequestedAttributes    map[string]*RequestedAttribute `json:"requested_attributes"`
	RequestedPredicates    map[string]*RequestedPredicate `json:"requested_predicates"`
}
