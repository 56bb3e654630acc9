// Package store implements the persistence boundary of the registry: a
// keyed users table with a storage-enforced uniqueness constraint on the
// national ID, plus the credential store consulted during token issuance.
package store

import (
	"context"

	"github.com/MKhiriev/go-user-registry/models"
)

// UserRepository is the record-store boundary for User records.
//
// The underlying table enforces the national_id uniqueness constraint, so the
// insert is the authoritative guard against duplicates: two concurrent
// creates racing on the same identifier resolve with exactly one success and
// one [ErrNationalIDExists].
type UserRepository interface {
	// CreateUser persists a new record and returns it with the
	// store-assigned ID. Returns ErrNationalIDExists when the unique
	// constraint on national_id is violated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// GetUserByID looks a record up by primary key.
	// Returns ErrUserNotFound on a miss.
	GetUserByID(ctx context.Context, id int64) (models.User, error)

	// FindUserByNationalID looks a record up by its national ID.
	// Returns ErrUserNotFound on a miss.
	FindUserByNationalID(ctx context.Context, nationalID string) (models.User, error)

	// ListUserIDs returns every stored primary key in ascending order.
	// An empty store yields an empty slice, never an error.
	ListUserIDs(ctx context.Context) ([]int64, error)
}

// CredentialStore verifies the out-of-band username/password pair presented
// to the token issuance endpoint. The token service only consumes a
// valid/invalid outcome; the principal's subject name is the username itself.
//
// Implementations are pluggable collaborators — the default is a static,
// config-seeded store, but nothing in the token service depends on that.
type CredentialStore interface {
	// VerifyCredentials returns nil when the pair identifies a known
	// principal and ErrInvalidCredentials otherwise.
	VerifyCredentials(ctx context.Context, username, password string) error
}
