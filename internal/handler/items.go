package handler

import (
	"net/http"

	"github.com/osse101/stackgrid/internal/catalog"
)

// ItemsResponse lists the catalog
type ItemsResponse struct {
	Items []catalog.Item `json:"items"`
}

// HandleListItems exports the item catalog
// @Summary List items
// @Description Export the item catalog
// @Tags items
// @Produce json
// @Success 200 {object} ItemsResponse
// @Failure 500 {object} ErrorResponse
// @Router /items [get]
func (h *Handlers) HandleListItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := []catalog.Item{}
		if h.items != nil {
			items = h.items.Items()
		}
		respondJSON(w, http.StatusOK, ItemsResponse{Items: items})
	}
}
