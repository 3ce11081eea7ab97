package language

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns public vocabulary routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListLanguages)

	return r
}

// AbilityRoutes returns per-user language ability routes
func (h *Handler) AbilityRoutes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// All routes require authentication
	r.Use(authMiddleware)

	r.Get("/", h.ListMine)
	r.Put("/{code}", h.UpsertAbility)
	r.Delete("/{code}", h.RemoveAbility)

	return r
}
