package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happydeal-transit/erp/internal/config"
	"github.com/happydeal-transit/erp/internal/logger"
	"github.com/happydeal-transit/erp/internal/service"
	"github.com/happydeal-transit/erp/models"
)

func newRoutedHandler(t *testing.T) *Handler {
	t.Helper()
	svcs := &service.Services{
		AppInfoService: &mockAppInfoService{version: "3.3-STABLE", dbStatus: service.DatabaseHealthy},
		AuthService: &mockAuthService{
			parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
				if tokenString != "valid.jwt.token" {
					return models.Token{}, service.ErrTokenIsExpiredOrInvalid
				}
				return models.Token{UserID: 3}, nil
			},
			profileFn: func(_ context.Context, userID int64) (models.User, error) {
				return models.User{UserID: userID, Email: "fatima@happydealtransit.ma"}, nil
			},
		},
	}
	return NewHandler(svcs, config.CORS{}, logger.Nop())
}

func TestRoutes_PublicEndpoints(t *testing.T) {
	router := newRoutedHandler(t).Init()

	for _, path := range []string{"/api/health", "/api/test"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "GET %s should not require auth", path)
	}
}

func TestRoutes_ProfileRequiresAuth(t *testing.T) {
	router := newRoutedHandler(t).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_ProfileWithValidToken(t *testing.T) {
	router := newRoutedHandler(t).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fatima@happydealtransit.ma")
}

func TestRoutes_UnknownPath(t *testing.T) {
	router := newRoutedHandler(t).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
