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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Post("/token", h.token)
	})

	// routes protected by a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/users", h.createUser)
		r.Get("/users", h.listUsers)
		r.Get("/users/{id}", h.getUser)
	})

	return router
}
