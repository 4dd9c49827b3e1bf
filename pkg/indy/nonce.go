/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package indy

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// proof request nonces are decimal strings of at most 80 bits
var nonceLimit = new(big.Int).Lsh(big.NewInt(1), 80)

// GenerateNonce returns a new proof-request nonce.
func GenerateNonce() (string, error) {
	n, err := rand.Int(rand.Reader, nonceLimit)
	if err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	return n.String(), nil
}
