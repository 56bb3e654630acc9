package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/models"
)

type httpRegistryClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPRegistryClient constructs a RegistryClient that talks to the server
// over HTTP/REST. If cfg carries a pre-issued token it is stored immediately,
// so Authenticate is only needed for username/password flows.
func NewHTTPRegistryClient(cfg config.Client) RegistryClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	c := &httpRegistryClient{client: cli}
	if cfg.Token != "" {
		c.SetToken(cfg.Token)
	}
	return c
}

func (h *httpRegistryClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRegistryClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRegistryClient) Authenticate(ctx context.Context, username, password string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		Post("/token")
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var tr models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &tr); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}

	h.SetToken(tr.AccessToken)
	return tr.AccessToken, nil
}

func (h *httpRegistryClient) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var created models.User
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.User{}, fmt.Errorf("decode create user response: %w", err)
	}

	return created, nil
}

func (h *httpRegistryClient) GetUser(ctx context.Context, id int64) (*models.User, error) {
	resp, err := h.authedRequest(ctx).
		Get("/users/" + strconv.FormatInt(id, 10))
	if err != nil {
		return nil, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		// an absent record is an answer, not a failure
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var found models.User
	if err = json.Unmarshal(resp.Body(), &found); err != nil {
		return nil, fmt.Errorf("decode get user response: %w", err)
	}

	return &found, nil
}

func (h *httpRegistryClient) ListUserIDs(ctx context.Context) ([]int64, error) {
	resp, err := h.authedRequest(ctx).Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var ids []int64
	if err = json.Unmarshal(resp.Body(), &ids); err != nil {
		return nil, fmt.Errorf("decode list users response: %w", err)
	}

	return ids, nil
}

func (h *httpRegistryClient) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRegistryClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
