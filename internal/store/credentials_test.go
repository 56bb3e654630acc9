// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-registry/internal/logger"
)

func newTestCredentialStore(t *testing.T) CredentialStore {
	t.Helper()
	s, err := NewStaticCredentialStore(map[string]string{"admin": "admin"}, logger.Nop())
	require.NoError(t, err)
	return s
}

func TestVerifyCredentials_Valid(t *testing.T) {
	s := newTestCredentialStore(t)
	require.NoError(t, s.VerifyCredentials(context.Background(), "admin", "admin"))
}

func TestVerifyCredentials_WrongPassword(t *testing.T) {
	s := newTestCredentialStore(t)
	err := s.VerifyCredentials(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyCredentials_UnknownUser(t *testing.T) {
	s := newTestCredentialStore(t)
	err := s.VerifyCredentials(context.Background(), "nobody", "admin")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestNewStaticCredentialStore_MultiplePrincipals(t *testing.T) {
	s, err := NewStaticCredentialStore(map[string]string{
		"alice": "s3cret",
		"bob":   "hunter2",
	}, logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	assert.NoError(t, s.VerifyCredentials(ctx, "alice", "s3cret"))
	assert.NoError(t, s.VerifyCredentials(ctx, "bob", "hunter2"))
	assert.ErrorIs(t, s.VerifyCredentials(ctx, "alice", "hunter2"), ErrInvalidCredentials)
}
