// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Sentinel errors returned by config validation. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoTokenSignKey is returned when the token signing key resolves to
	// an empty string after all sources are merged.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")

	// ErrUnsupportedTokenAlgorithm is returned when the configured signing
	// algorithm identifier is anything other than HS256, the only symmetric
	// algorithm the token service supports.
	ErrUnsupportedTokenAlgorithm = errors.New("unsupported token signing algorithm")

	// ErrNoTokenIssuer is returned when the token issuer is empty.
	ErrNoTokenIssuer = errors.New("token issuer is not configured")

	// ErrInvalidTokenTTL is returned when the token time-to-live is zero or
	// negative.
	ErrInvalidTokenTTL = errors.New("token TTL must be positive")

	// ErrNoServerAddress is returned when the HTTP listen address is empty.
	ErrNoServerAddress = errors.New("server address is not configured")

	// ErrNoDatabaseDSN is returned when the database DSN is empty.
	ErrNoDatabaseDSN = errors.New("database DSN is not configured")
)
