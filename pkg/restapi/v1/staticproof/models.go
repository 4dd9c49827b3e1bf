/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package staticproof

import "github.com/trustbloc/presentproof/pkg/indy"

// CreateStaticProofRequest is the request body for creating a static proof.
// Presentation carries the holder's credential selection per referent.
type CreateStaticProofRequest struct {
	ProofRequest *indy.ProofRequest         `json:"proof_request"`
	Presentation *indy.RequestedCredentials `json:"presentation"`
}

// StaticProofResponse returns the built presentation together with the proof
// request it answers, nonce included.
type StaticProofResponse struct {
	Presentation        indy.Proof         `json:"presentation"`
	PresentationRequest *indy.ProofRequest `json:"presentation_request"`
}
