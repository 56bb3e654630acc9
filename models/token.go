// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// Subject is a cached copy of the "sub" claim — the authenticated principal's
// username. It is populated during issuance and after successful verification
// so that callers do not need to reach into the claim set.
//
// A token is never persisted: it is self-contained and stateless, and expires
// purely by comparing the embedded expiry timestamp to the wall clock at
// verification time.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// Subject is the principal extracted from the "sub" claim.
	Subject string `json:"-"`
}

// GetPrincipal returns the authenticated principal from the token's "sub"
// (subject) claim. Returns an error if the claim is missing or empty.
func (t *Token) GetPrincipal() (string, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	return subject, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
