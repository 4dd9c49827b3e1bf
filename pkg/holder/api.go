/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package holder defines the boundary to the wallet: the credential store and
// the cryptographic operations needed to assemble a presentation.
package holder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/trustbloc/presentproof/pkg/indy"
)

// ErrCredentialNotFound indicates the wallet holds no credential under the
// given id.
var ErrCredentialNotFound = errors.New("credential not found")

// Error is a failure reported by the underlying crypto implementation,
// carrying its error code alongside the message.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Store provides read access to the wallet's stored credentials.
type Store interface {
	GetCredential(ctx context.Context, credentialID string) (*indy.CredentialInfo, error)
}

// Holder performs the zero-knowledge proof construction. Both operations may
// fail with *Error.
type Holder interface {
	// CreateRevocationState builds the cryptographic material certifying the
	// credential at credRevID was not revoked at timestamp, from the registry
	// definition, the registry delta valid at that timestamp and the local
	// tails file.
	CreateRevocationState(
		ctx context.Context,
		credRevID string,
		regDef json.RawMessage,
		delta json.RawMessage,
		timestamp int64,
		tailsPath string,
	) (json.RawMessage, error)

	// CreatePresentation builds the final proof from the request, the
	// holder's credential selection and the resolved ledger objects.
	// Revocation states are keyed by registry id, then timestamp.
	CreatePresentation(
		ctx context.Context,
		proofRequest *indy.ProofRequest,
		requestedCredentials *indy.RequestedCredentials,
		schemas map[string]json.RawMessage,
		credDefs map[string]json.RawMessage,
		revocationStates map[string]map[int64]json.RawMessage,
	) (indy.Proof, error)
}
