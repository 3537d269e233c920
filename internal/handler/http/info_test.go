package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happydeal-transit/erp/internal/config"
	"github.com/happydeal-transit/erp/internal/logger"
	"github.com/happydeal-transit/erp/internal/service"
	"github.com/happydeal-transit/erp/models"
)

func newInfoHandler(t *testing.T, info service.AppInfoService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{AppInfoService: info}, config.CORS{}, logger.Nop())
}

func TestHealth_Healthy(t *testing.T) {
	h := newInfoHandler(t, &mockAppInfoService{dbStatus: service.DatabaseHealthy})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	h.health(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "healthy", resp.Database)

	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err, "timestamp must be RFC 3339")
}

func TestHealth_DegradedStillAnswers200(t *testing.T) {
	h := newInfoHandler(t, &mockAppInfoService{dbStatus: "error: connection refused"})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	h.health(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "error: connection refused", resp.Database)
}

func TestAPITest(t *testing.T) {
	h := newInfoHandler(t, &mockAppInfoService{
		version:  "3.3-STABLE",
		features: []string{"role-based-access", "multi-currency", "enhanced-error-handling"},
		dbStatus: service.DatabaseHealthy,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	rec := httptest.NewRecorder()

	h.apiTest(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.APITestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Happy Deal Transit ERP API is working!", resp.Message)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "3.3-STABLE", resp.Version)
	assert.Len(t, resp.Features, 3)
}
