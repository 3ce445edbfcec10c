package handler

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the inventory API on r
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Route("/inventories", func(r chi.Router) {
		r.Post("/", h.HandleCreateInventory())
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.HandleGetInventory())
			r.Delete("/", h.HandleDeleteInventory())
			r.Post("/deposit", h.HandleDeposit())
			r.Post("/split", h.HandleSplit())
			r.Route("/slots/{index}", func(r chi.Router) {
				r.Put("/restriction", h.HandleSetRestriction())
				r.Post("/deposit", h.HandleDepositAt())
				r.Post("/insert", h.HandleInsert())
			})
		})
	})

	r.Post("/swap", h.HandleSwap())
	r.Post("/combine", h.HandleCombine())
	r.Post("/transfer", h.HandleTransfer())
	r.Post("/move", h.HandleMove())
	r.Get("/items", h.HandleListItems())
}
