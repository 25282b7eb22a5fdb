package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(api chi.Router) {
		// routes without authorization
		api.Get("/health", h.health)
		api.Post("/register", h.register)
		api.Post("/login", h.login)
		api.Post("/scan", h.scan)

		// routes behind bearer authentication
		api.Group(func(protected chi.Router) {
			protected.Use(h.auth)
			protected.Get("/me", h.me)
			protected.Get("/inventory", h.listInventory)
			protected.Get("/inventory/{barcode}", h.getInventoryItem)
			protected.Post("/inventory", h.upsertInventoryItem)
			protected.Post("/inventory/adjust", h.adjustInventory)
		})
	})

	return router
}
