// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/service"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/internal/validators"
	"github.com/MKhiriev/go-user-registry/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	issueTokenFn func(ctx context.Context, username, password string) (models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) IssueToken(ctx context.Context, username, password string) (models.Token, error) {
	return m.issueTokenFn(ctx, username, password)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	createUserFn  func(ctx context.Context, candidate models.User) (models.User, error)
	getUserFn     func(ctx context.Context, id int64) (models.User, error)
	listUserIDsFn func(ctx context.Context) ([]int64, error)
}

func (m *mockUserService) CreateUser(ctx context.Context, candidate models.User) (models.User, error) {
	return m.createUserFn(ctx, candidate)
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return m.getUserFn(ctx, id)
}

func (m *mockUserService) ListUserIDs(ctx context.Context) ([]int64, error) {
	return m.listUserIDsFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// acceptingAuth returns an AuthService mock that accepts every token and
// reports "admin" as its subject.
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{Subject: "admin"}, nil
		},
	}
}

func newTestHandler(auth service.AuthService, users service.UserService) *Handler {
	return NewHandler(&service.Services{
		AuthService: auth,
		UserService: users,
	}, logger.Nop())
}

// do routes a request through the fully wired router, including middleware.
func do(t *testing.T, h *Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func authorized(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer test.jwt.token")
	return req
}

func userBody(t *testing.T, u models.User) *strings.Reader {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

var validUser = models.User{
	Name:       "Test User",
	Address:    "Test Address",
	Phone:      "0521234567",
	NationalID: "123456782",
}

// ─────────────────────────────────────────────
// GET /health
// ─────────────────────────────────────────────

func TestHealth(t *testing.T) {
	h := newTestHandler(acceptingAuth(), &mockUserService{})

	// no Authorization header on purpose
	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// POST /token
// ─────────────────────────────────────────────

func tokenRequest(username, password string) *http.Request {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestToken_Success(t *testing.T) {
	auth := &mockAuthService{
		issueTokenFn: func(_ context.Context, username, password string) (models.Token, error) {
			require.Equal(t, "admin", username)
			require.Equal(t, "secret", password)
			return models.Token{SignedString: "signed.jwt.token", Subject: username}, nil
		},
	}
	h := newTestHandler(auth, &mockUserService{})

	rec := do(t, h, tokenRequest("admin", "secret"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}

func TestToken_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		issueTokenFn: func(context.Context, string, string) (models.Token, error) {
			return models.Token{}, store.ErrInvalidCredentials
		},
	}
	h := newTestHandler(auth, &mockUserService{})

	rec := do(t, h, tokenRequest("admin", "wrong"))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"Incorrect username or password"}`, rec.Body.String())
}

// TestToken_MissingFields verifies that an empty form resolves to the same
// generic 401 as a wrong password.
func TestToken_MissingFields(t *testing.T) {
	auth := &mockAuthService{
		issueTokenFn: func(_ context.Context, username, password string) (models.Token, error) {
			require.Empty(t, username)
			require.Empty(t, password)
			return models.Token{}, store.ErrInvalidCredentials
		},
	}
	h := newTestHandler(auth, &mockUserService{})

	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := do(t, h, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// POST /users
// ─────────────────────────────────────────────

func TestCreateUser_Handler_Success(t *testing.T) {
	users := &mockUserService{
		createUserFn: func(_ context.Context, candidate models.User) (models.User, error) {
			candidate.ID = 1
			return candidate, nil
		},
	}
	h := newTestHandler(acceptingAuth(), users)

	req := authorized(httptest.NewRequest(http.MethodPost, "/users", userBody(t, validUser)))
	rec := do(t, h, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, validUser.NationalID, created.NationalID)
}

func TestCreateUser_Handler_ValidationError(t *testing.T) {
	users := &mockUserService{
		createUserFn: func(context.Context, models.User) (models.User, error) {
			return models.User{}, &validators.ValidationError{Fields: map[string][]string{
				"name":        {"Name is required"},
				"national_id": {"Invalid national ID"},
			}}
		},
	}
	h := newTestHandler(acceptingAuth(), users)

	req := authorized(httptest.NewRequest(http.MethodPost, "/users", userBody(t, models.User{})))
	rec := do(t, h, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp models.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Name is required"}, resp.Detail["name"])
	assert.Equal(t, []string{"Invalid national ID"}, resp.Detail["national_id"])
}

func TestCreateUser_Handler_Duplicate(t *testing.T) {
	users := &mockUserService{
		createUserFn: func(context.Context, models.User) (models.User, error) {
			return models.User{}, store.ErrNationalIDExists
		},
	}
	h := newTestHandler(acceptingAuth(), users)

	req := authorized(httptest.NewRequest(http.MethodPost, "/users", userBody(t, validUser)))
	rec := do(t, h, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Detail, "already exists")
}

func TestCreateUser_Handler_InvalidJSON(t *testing.T) {
	h := newTestHandler(acceptingAuth(), &mockUserService{})

	req := authorized(httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("{not json")))
	rec := do(t, h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUser_Handler_Unauthorized(t *testing.T) {
	h := newTestHandler(acceptingAuth(), &mockUserService{})

	// no Authorization header
	rec := do(t, h, httptest.NewRequest(http.MethodPost, "/users", userBody(t, validUser)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// GET /users/{id}
// ─────────────────────────────────────────────

func TestGetUser_Handler_Found(t *testing.T) {
	want := validUser
	want.ID = 42
	users := &mockUserService{
		getUserFn: func(_ context.Context, id int64) (models.User, error) {
			require.Equal(t, int64(42), id)
			return want, nil
		},
	}
	h := newTestHandler(acceptingAuth(), users)

	rec := do(t, h, authorized(httptest.NewRequest(http.MethodGet, "/users/42", nil)))

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestGetUser_Handler_NotFound(t *testing.T) {
	users := &mockUserService{
		getUserFn: func(context.Context, int64) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	h := newTestHandler(acceptingAuth(), users)

	rec := do(t, h, authorized(httptest.NewRequest(http.MethodGet, "/users/99999", nil)))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"User not found"}`, rec.Body.String())
}

func TestGetUser_Handler_NonNumericID(t *testing.T) {
	h := newTestHandler(acceptingAuth(), &mockUserService{})

	rec := do(t, h, authorized(httptest.NewRequest(http.MethodGet, "/users/abc", nil)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// GET /users
// ─────────────────────────────────────────────

func TestListUsers_Handler(t *testing.T) {
	users := &mockUserService{
		listUserIDsFn: func(context.Context) ([]int64, error) {
			return []int64{1, 2, 3}, nil
		},
	}
	h := newTestHandler(acceptingAuth(), users)

	rec := do(t, h, authorized(httptest.NewRequest(http.MethodGet, "/users", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[1,2,3]`, rec.Body.String())
}

func TestListUsers_Handler_Empty(t *testing.T) {
	users := &mockUserService{
		listUserIDsFn: func(context.Context) ([]int64, error) {
			return []int64{}, nil
		},
	}
	h := newTestHandler(acceptingAuth(), users)

	rec := do(t, h, authorized(httptest.NewRequest(http.MethodGet, "/users", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
