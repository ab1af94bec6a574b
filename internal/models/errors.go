// Stratus - SpatioTemporal Asset Catalog API Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stratus

package models

// Error codes used in error responses.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeDatabaseError   = "DATABASE_ERROR"
	CodeInternalError   = "INTERNAL_ERROR"
)

// ErrorResponse is the JSON error envelope, following the OGC API error
// shape (code + description).
type ErrorResponse struct {
	Code        string                 `json:"code"`
	Description string                 `json:"description"`
	Details     map[string]interface{} `json:"details,omitempty"`
}
