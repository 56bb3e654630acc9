package service

import "errors"

// Sentinel errors returned by the service layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrTokenCreationFailed is returned when JWT generation fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpired is returned by ParseToken when the token's embedded
	// expiry timestamp is in the past at verification time, even by one
	// second.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrTokenIsInvalid is returned by ParseToken when the signature does
	// not verify, the token is malformed, the issuer does not match, or a
	// required claim is absent.
	ErrTokenIsInvalid = errors.New("token is invalid")
)
