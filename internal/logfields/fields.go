/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"go.uber.org/zap"
)

// Log Fields.
const (
	FieldCredentialID    = "credentialID"
	FieldCredDefID       = "credDefID"
	FieldSchemaID        = "schemaID"
	FieldRevRegID        = "revRegID"
	FieldReferent        = "referent"
	FieldTimestamp       = "timestamp"
	FieldTailsPath       = "tailsPath"
	FieldHolderErrorCode = "holderErrorCode"
)

// WithCredentialID sets the CredentialID field.
func WithCredentialID(credentialID string) zap.Field {
	return zap.String(FieldCredentialID, credentialID)
}

// WithCredDefID sets the CredDefID (credential definition ID) field.
func WithCredDefID(credDefID string) zap.Field {
	return zap.String(FieldCredDefID, credDefID)
}

// WithSchemaID sets the SchemaID field.
func WithSchemaID(schemaID string) zap.Field {
	return zap.String(FieldSchemaID, schemaID)
}

// WithRevRegID sets the RevRegID (revocation registry ID) field.
func WithRevRegID(revRegID string) zap.Field {
	return zap.String(FieldRevRegID, revRegID)
}

// WithReferent sets the Referent field.
func WithReferent(referent string) zap.Field {
	return zap.String(FieldReferent, referent)
}

// WithTimestamp sets the Timestamp field.
func WithTimestamp(timestamp int64) zap.Field {
	return zap.Int64(FieldTimestamp, timestamp)
}

// WithTailsPath sets the TailsPath field.
func WithTailsPath(tailsPath string) zap.Field {
	return zap.String(FieldTailsPath, tailsPath)
}

// WithHolderErrorCode sets the HolderErrorCode field.
func WithHolderErrorCode(code string) zap.Field {
	return zap.String(FieldHolderErrorCode, code)
}
