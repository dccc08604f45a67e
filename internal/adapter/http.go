package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	registerPath   = "/api/auth/register"
	loginPath      = "/api/auth/login"
	passwordsPath  = "/api/passwords"
	passwordPath   = "/api/passwords/{id}"
	versionPath    = "/api/version"
	authHeaderName = "Authorization"
)

type httpVaultAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPVaultAdapter constructs the REST implementation of [VaultAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying resty client with it and the request timeout.
//
// Requests are never retried: a repeated POST could store a record twice.
func NewHTTPVaultAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (VaultAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpVaultAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [VaultAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpVaultAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [VaultAdapter].
func (h *httpVaultAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [VaultAdapter]. It POSTs to /api/auth/register and
// keeps the token from the body, or from the Authorization header when the
// body has none.
func (h *httpVaultAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, registerPath, req)
}

// Login implements [VaultAdapter]. It POSTs to /api/auth/login.
func (h *httpVaultAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, loginPath, req)
}

func (h *httpVaultAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if result.Token == "" {
		token, err := utils.ParseBearerToken(resp.Header().Get(authHeaderName))
		if err != nil {
			return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrEmptyToken, err)
		}
		result.Token = token
	}

	h.SetToken(result.Token)
	h.logger.Debug().Str("func", "*httpVaultAdapter.authenticate").Str("path", path).Int64("user_id", result.User.UserID).Msg("authenticated")

	return result, nil
}

// ListCredentials implements [VaultAdapter]. GET /api/passwords.
func (h *httpVaultAdapter) ListCredentials(ctx context.Context) ([]models.Credential, error) {
	var result models.CredentialListResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.SetResult(&result).Get(passwordsPath)
	if err != nil {
		return nil, fmt.Errorf("list credentials request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if result.Passwords == nil {
		result.Passwords = []models.Credential{}
	}
	return result.Passwords, nil
}

// GetCredential implements [VaultAdapter]. GET /api/passwords/{id}; the
// server answers with the bare record.
func (h *httpVaultAdapter) GetCredential(ctx context.Context, id int64) (models.Credential, error) {
	var result models.Credential

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Credential{}, err
	}

	resp, err := req.
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&result).
		Get(passwordPath)
	if err != nil {
		return models.Credential{}, fmt.Errorf("get credential request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	return result, nil
}

// CreateCredential implements [VaultAdapter]. POST /api/passwords.
func (h *httpVaultAdapter) CreateCredential(ctx context.Context, body models.CredentialRequest) (models.Credential, error) {
	var result models.CredentialResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Credential{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post(passwordsPath)
	if err != nil {
		return models.Credential{}, fmt.Errorf("create credential request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	return result.Password, nil
}

// UpdateCredential implements [VaultAdapter]. PUT /api/passwords/{id}.
func (h *httpVaultAdapter) UpdateCredential(ctx context.Context, id int64, body models.CredentialRequest) (models.Credential, error) {
	var result models.CredentialResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Credential{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(body).
		SetResult(&result).
		Put(passwordPath)
	if err != nil {
		return models.Credential{}, fmt.Errorf("update credential request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	return result.Password, nil
}

// DeleteCredential implements [VaultAdapter]. DELETE /api/passwords/{id}.
func (h *httpVaultAdapter) DeleteCredential(ctx context.Context, id int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete(passwordPath)
	if err != nil {
		return fmt.Errorf("delete credential request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [VaultAdapter]. GET /api/version answers in plain text.
func (h *httpVaultAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// authedRequest returns a request carrying the bearer token, or
// [ErrNotAuthenticated] when there is none to send.
func (h *httpVaultAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}
