// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the user registry server.
//
// The primary abstraction is [RegistryClient], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRegistryClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for a duplicate national_id,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-registry/models"
)

// RegistryClient defines transport-agnostic communication with the user
// registry server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type RegistryClient interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Authenticate, or with an externally obtained token.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Authenticate exchanges the username/password pair for a bearer token
	// via the form-encoded token endpoint. On success it stores the token via
	// SetToken and returns its signed string. Returns [ErrUnauthorized]
	// (wrapped) if the credentials are rejected.
	Authenticate(ctx context.Context, username, password string) (string, error)

	// CreateUser submits a new registry record. Returns [ErrValidation]
	// (wrapped) if the server rejects the candidate's fields, or
	// [ErrConflict] (wrapped) if the national_id is already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// GetUser fetches a record by its server-assigned ID. If no record with
	// that ID exists it returns (nil, nil): an absent record is a normal
	// answer for a lookup, not an error.
	GetUser(ctx context.Context, id int64) (*models.User, error)

	// ListUserIDs fetches the identifiers of every stored record, in
	// ascending order.
	ListUserIDs(ctx context.Context) ([]int64, error)

	// Health probes the unauthenticated liveness endpoint.
	Health(ctx context.Context) error
}
