// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-user-registry/internal/logger"
)

// staticCredentialStore is a [CredentialStore] seeded from configuration at
// startup. Passwords are held only as bcrypt hashes; the map is read-only
// after construction, so the store is safe for concurrent use without locks.
type staticCredentialStore struct {
	// hashes maps a username to the bcrypt hash of its password.
	hashes map[string][]byte

	logger *logger.Logger
}

// NewStaticCredentialStore builds a credential store holding the given
// principals, hashing each password with bcrypt at construction time.
//
// The credential check behind token issuance is deliberately pluggable: the
// token service only depends on [CredentialStore], and this static
// implementation exists so a single process can run without an external
// identity provider.
func NewStaticCredentialStore(credentials map[string]string, log *logger.Logger) (CredentialStore, error) {
	hashes := make(map[string][]byte, len(credentials))
	for username, password := range credentials {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("error hashing credential for %q: %w", username, err)
		}
		hashes[username] = hash
	}

	log.Debug().Int("principals", len(hashes)).Msg("static credential store created")
	return &staticCredentialStore{hashes: hashes, logger: log}, nil
}

// VerifyCredentials implements [CredentialStore]. Unknown usernames and
// wrong passwords are indistinguishable to the caller: both yield
// [ErrInvalidCredentials].
func (s *staticCredentialStore) VerifyCredentials(ctx context.Context, username, password string) error {
	log := logger.FromContext(ctx)

	hash, ok := s.hashes[username]
	if !ok {
		log.Debug().Str("username", username).Msg("unknown principal")
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		log.Debug().Str("username", username).Msg("password mismatch")
		return ErrInvalidCredentials
	}

	return nil
}
