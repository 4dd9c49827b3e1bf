/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

type Component string

const (
	StaticProofSvcComponent Component = "staticproof.service"
	CryptoHolderComponent   Component = "holder.crypto"
	LedgerComponent         Component = "ledger"
)
