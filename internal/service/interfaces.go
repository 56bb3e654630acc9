// Package service implements the registry's business logic: the token
// service that issues and verifies bearer tokens, and the user service that
// orchestrates validated, uniqueness-checked writes against the record store.
package service

import (
	"context"

	"github.com/MKhiriev/go-user-registry/models"
)

// AuthService is the token service. Tokens are stateless: any process
// instance sharing the sign key can verify a token issued by any other, and
// expiry is enforced purely by timestamp comparison at verification time.
type AuthService interface {
	// IssueToken checks the credential pair against the credential store and,
	// on success, returns a signed token whose subject is the username.
	// A failed check yields store.ErrInvalidCredentials.
	IssueToken(ctx context.Context, username, password string) (models.Token, error)

	// ParseToken verifies the signature, issuer, and expiry of tokenString.
	// Returns ErrTokenIsExpired when the expiry timestamp has passed and
	// ErrTokenIsInvalid for every other verification failure.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService orchestrates the create/get/list resource operations.
type UserService interface {
	// CreateUser validates and normalizes the candidate, enforces the
	// national_id uniqueness invariant, and persists the record. Returns a
	// *validators.ValidationError when any field fails, or
	// store.ErrNationalIDExists on a duplicate identifier.
	CreateUser(ctx context.Context, candidate models.User) (models.User, error)

	// GetUser looks a record up by its store-assigned ID.
	// Returns store.ErrUserNotFound on a miss.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// ListUserIDs returns every stored ID in ascending order.
	ListUserIDs(ctx context.Context) ([]int64, error)
}
