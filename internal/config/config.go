// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges, and validates process-wide configuration for
// the registry server and the API client. Values are read from environment
// variables, command-line flags, and an optional JSON file, then filled in
// with defaults. Configuration is fixed at startup and never hot-reloaded.
package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-user-registry application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file, with built-in defaults filling any remaining
// gaps.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds the token signing parameters and the static admin
	// credential.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds the relational database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Client holds settings consumed by the API client and cmd/client.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds the token-service configuration. All values are process-wide
// and read-only after startup; the sign key never changes for the process
// lifetime, so any instance sharing it can verify tokens issued by any other.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenAlgorithm is the symmetric signing algorithm identifier.
	// Only "HS256" is supported; any other value fails validation.
	// Env: AUTH_TOKEN_ALGORITHM
	TokenAlgorithm string `env:"TOKEN_ALGORITHM"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Tokens whose issuer does not match are rejected during verification.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenTTL specifies how long an issued token remains valid (e.g. "1h").
	// Env: AUTH_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL"`

	// AdminUsername and AdminPassword seed the static credential store
	// consulted by the token issuance endpoint.
	// Env: AUTH_ADMIN_USERNAME / AUTH_ADMIN_PASSWORD
	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the Data Source Name used to open the database connection.
	// A "postgres://" or "postgresql://" prefix selects the pgx driver;
	// anything else is treated as an SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds configuration for the convenience API client.
type Client struct {
	// BaseURL is the root URL of the registry server the client talks to.
	// Env: CLIENT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Username and Password are exchanged for a bearer token at client
	// construction time when Token is empty.
	// Env: CLIENT_USERNAME / CLIENT_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`

	// Token is a ready-made bearer token. When set, the client skips the
	// credential exchange entirely.
	// Env: CLIENT_TOKEN
	Token string `env:"TOKEN"`

	// Timeout bounds every outbound HTTP request issued by the client.
	// Env: CLIENT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win; later sources only fill fields still unset):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// GetClientConfig loads the configuration consumed by cmd/client. Flag
// parsing is skipped so that the client binary is free to define its own
// subcommand arguments; values come from environment variables, the optional
// JSON file, and built-in defaults.
func GetClientConfig() (Client, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return Client{}, err
	}

	return cfg.Client, nil
}
