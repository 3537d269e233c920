package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/happydeal-transit/erp/internal/config"
	"github.com/happydeal-transit/erp/internal/logger"
	"github.com/happydeal-transit/erp/internal/utils"
	"github.com/happydeal-transit/erp/models"
)

type httpERPClient struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPERPClient constructs an HTTP/REST implementation of [ERPClient].
// It normalises and validates the resolved base URL from cfg.APIBaseURL and
// configures the underlying HTTP client with the base URL and request
// timeout.
//
// Returns an error if cfg.APIBaseURL is empty or cannot be parsed as a
// valid URL. Resolution itself never rejects a value, so a malformed
// override surfaces here, at the first consumer.
func NewHTTPERPClient(cfg *config.ClientConfig, logger *logger.Logger) (ERPClient, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpERPClient{client: client, logger: logger}, nil
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

// SetToken implements [ERPClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpERPClient) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ERPClient]. It returns the bearer token currently held
// by the client, or an empty string if none has been set.
func (h *httpERPClient) Token() string {
	return h.token
}

// Health implements [ERPClient].
func (h *httpERPClient) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/api/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

// APITest implements [ERPClient].
func (h *httpERPClient) APITest(ctx context.Context) (models.APITestResponse, error) {
	var info models.APITestResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/test")
	if err != nil {
		return models.APITestResponse{}, fmt.Errorf("api test request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.APITestResponse{}, err
	}

	return info, nil
}

// Login implements [ERPClient]. It POSTs the credentials to POST /api/login,
// stores the returned access token via SetToken, and returns the server-side
// user record.
func (h *httpERPClient) Login(ctx context.Context, email, password string) (models.User, error) {
	var loginResponse models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Email: email, Password: password}).
		SetResult(&loginResponse).
		Post("/api/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	if loginResponse.AccessToken == "" {
		return models.User{}, fmt.Errorf("login response carries no access token")
	}

	h.SetToken(loginResponse.AccessToken)
	return loginResponse.User, nil
}

// Profile implements [ERPClient]. It requires a prior successful Login (or an
// explicit SetToken call); without a token the backend answers 401, which is
// mapped to [ErrUnauthorized].
func (h *httpERPClient) Profile(ctx context.Context) (models.ProfileResponse, error) {
	var profile models.ProfileResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token).
		SetResult(&profile).
		Get("/api/user/profile")
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProfileResponse{}, err
	}

	return profile, nil
}
