package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNationalIDExists is returned when an insert fails because a record
	// with the same national_id already exists. It is produced both by the
	// pre-insert lookup and by the storage-level unique constraint, which is
	// the authoritative guarantee.
	ErrNationalIDExists = errors.New("user with this national_id already exists")

	// ErrUserNotFound is returned when a lookup by primary key or national ID
	// produces an empty result set. It is an empty result at the transport
	// boundary, not a system error.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned by the credential store when the
	// username/password pair does not identify a known principal.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrScanningRows is returned when scanning column values during result
	// set iteration fails.
	ErrScanningRows = errors.New("failed to scan user rows")
)
