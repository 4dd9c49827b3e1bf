/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package indy

import "encoding/json"

// CredentialInfo is the wallet's view of a stored credential, as returned by
// the holder credential store. RevRegID and CredRevID are empty for
// credentials issued without revocation support.
type CredentialInfo struct {
	Referent  string            `json:"referent"`
	Attrs     map[string]string `json:"attrs,omitempty"`
	SchemaID  string            `json:"schema_id"`
	CredDefID string            `json:"cred_def_id"`
	RevRegID  string            `json:"rev_reg_id,omitempty"`
	CredRevID string            `json:"cred_rev_id,omitempty"`
}

// Revocable reports whether the credential was issued against a revocation
// registry.
func (c *CredentialInfo) Revocable() bool {
	return c.RevRegID != ""
}

// Proof is an anoncreds-formatted presentation. Its internal shape belongs to
// the credential exchange protocol, so it stays opaque here.
type Proof = json.RawMessage
