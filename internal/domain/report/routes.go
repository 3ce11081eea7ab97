package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns report routes
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// All routes require authentication
	r.Use(authMiddleware)

	r.Post("/", h.Submit)

	return r
}
