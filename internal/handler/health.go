package handler

import (
	"net/http"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status string `json:"status"`
	Items  int    `json:"items"`
}

// HandleHealthz provides a basic liveness check along with the catalog size
// @Summary Liveness check
// @Description Report liveness and the number of catalog items
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz(items ItemCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := HealthResponse{Status: "ok"}
		if items != nil {
			response.Items = len(items.Items())
		}
		respondJSON(w, http.StatusOK, response)
	}
}
