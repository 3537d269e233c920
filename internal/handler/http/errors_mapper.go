package http

import (
	"net/http"

	"github.com/happydeal-transit/erp/internal/utils"
	"github.com/happydeal-transit/erp/models"
)

// writeError sends a JSON error payload in the shape every API consumer
// already expects: {"error": "<message>"}.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
