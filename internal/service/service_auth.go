// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/internal/utils"
	"github.com/MKhiriev/go-user-registry/models"
)

// authService is the concrete implementation of AuthService.
// It delegates the credential check to a pluggable CredentialStore and
// handles the JWT lifecycle with an HMAC-SHA256 signature.
type authService struct {
	// credentials is the external collaborator that decides whether a
	// username/password pair identifies a known principal.
	credentials store.CredentialStore

	// tokenSignKey is the process-wide secret used to sign and verify JWT
	// tokens. Read-only after construction.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenTTL controls how long a newly issued JWT remains valid.
	tokenTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// CredentialStore and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(credentials store.CredentialStore, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		credentials:  credentials,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		tokenTTL:     cfg.TokenTTL,
		logger:       logger,
	}
}

// IssueToken exchanges a credential pair for a signed bearer token.
//
// The credential store is consulted first; only a valid pair reaches the
// signing step. The issued token carries the username as its "sub" claim and
// an absolute expiry of now + TTL.
//
// Returns:
//   - store.ErrInvalidCredentials if the pair is not recognized.
//   - A wrapped ErrTokenCreationFailed if JWT generation fails.
func (a *authService) IssueToken(ctx context.Context, username, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.credentials.VerifyCredentials(ctx, username, password); err != nil {
		log.Debug().Str("username", username).Msg("credential check failed")
		return models.Token{}, err
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, username, a.tokenTTL, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("username", username).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim, and the expiry. Failures are normalised to exactly two
// sentinels so that callers do not need to inspect low-level JWT errors:
//   - ErrTokenIsExpired — the embedded expiry timestamp has passed.
//   - ErrTokenIsInvalid — any other failure (bad signature, malformed
//     structure, wrong issuer, missing subject).
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
