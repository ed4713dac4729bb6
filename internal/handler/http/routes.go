package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/generator/password", h.generatePassword)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.withAuthRateLimit)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/vault", h.listVaultItems)
		r.Post("/api/vault", h.createVaultItem)
		r.Put("/api/vault/{id}", h.updateVaultItem)
		r.Delete("/api/vault/{id}", h.deleteVaultItem)
	})

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeStatus(w, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
