// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/models"
)

// newTestClient builds an httpRegistryClient pointed at the test server.
func newTestClient(t *testing.T, serverURL string) *httpRegistryClient {
	t.Helper()
	c := NewHTTPRegistryClient(config.Client{BaseURL: serverURL})
	return c.(*httpRegistryClient)
}

// ── Authenticate ────────────────────────────────────────────────────────────

func TestAuthenticate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/token", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "admin", r.PostFormValue("username"))
		assert.Equal(t, "secret", r.PostFormValue("password"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.TokenResponse{AccessToken: "signed.jwt.token", TokenType: "bearer"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	token, err := c.Authenticate(context.Background(), "admin", "secret")

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", token)
	assert.Equal(t, "signed.jwt.token", c.Token())
}

func TestAuthenticate_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Incorrect username or password"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Authenticate(context.Background(), "admin", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, c.Token())
}

// ── CreateUser ──────────────────────────────────────────────────────────────

func TestCreateUser_Adapter_Success(t *testing.T) {
	want := models.User{ID: 1, Name: "Test User", Address: "Test Address", Phone: "0521234567", NationalID: "123456782"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "Bearer test.jwt.token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("test.jwt.token")

	got, err := c.CreateUser(context.Background(), models.User{Name: "Test User"})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCreateUser_Adapter_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"User with this national_id already exists"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.CreateUser(context.Background(), models.User{NationalID: "123456782"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateUser_Adapter_ValidationRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":{"name":["Name is required"]}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.CreateUser(context.Background(), models.User{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

// ── GetUser ─────────────────────────────────────────────────────────────────

func TestGetUser_Adapter_Success(t *testing.T) {
	want := models.User{ID: 42, Name: "Test User", NationalID: "123456782"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.GetUser(context.Background(), 42)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

// TestGetUser_Adapter_NotFound verifies that a lookup miss is not an error:
// a 404 from the server yields a nil user and a nil error.
func TestGetUser_Adapter_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"User not found"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.GetUser(context.Background(), 99999)

	require.NoError(t, err)
	assert.Nil(t, got)
}

// ── ListUserIDs ─────────────────────────────────────────────────────────────

func TestListUserIDs_Adapter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[1,2,3]`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	ids, err := c.ListUserIDs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

// ── Health ──────────────────────────────────────────────────────────────────

func TestHealth_Adapter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	require.NoError(t, c.Health(context.Background()))
}
