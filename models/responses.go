// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenResponse is the body returned by the token issuance endpoint on a
// successful credential check.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ErrorResponse is the body returned for single-message failures:
// authentication errors, conflicts, and lookup misses.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationErrorResponse is the body returned with HTTP 422 when one or more
// submitted fields fail validation. Detail maps each failing field name to an
// ordered list of human-readable messages, so a caller can report every
// violation at once.
type ValidationErrorResponse struct {
	Detail map[string][]string `json:"detail"`
}

// HealthResponse is the body returned by the unauthenticated health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
