package http

import (
	"net/http"
	"time"

	"github.com/happydeal-transit/erp/internal/service"
	"github.com/happydeal-transit/erp/internal/utils"
	"github.com/happydeal-transit/erp/models"
)

// health reports service liveness. The endpoint always answers 200 so load
// balancers keep routing; a broken database is visible in the payload.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dbStatus := h.services.AppInfoService.CheckDatabase(ctx)

	status := "healthy"
	if dbStatus != service.DatabaseHealthy {
		status = "degraded"
	}

	utils.WriteJSON(w, models.HealthResponse{
		Status:    status,
		Database:  dbStatus,
		Timestamp: time.Now().Format(time.RFC3339),
	}, http.StatusOK)
}

// apiTest is the connectivity-test endpoint used by frontend deployments to
// verify they are pointed at a live backend.
func (h *Handler) apiTest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	utils.WriteJSON(w, models.APITestResponse{
		Message:   "Happy Deal Transit ERP API is working!",
		Status:    "success",
		Version:   h.services.AppInfoService.GetAppVersion(ctx),
		Features:  h.services.AppInfoService.GetFeatures(ctx),
		Timestamp: time.Now().Format(time.RFC3339),
	}, http.StatusOK)
}
