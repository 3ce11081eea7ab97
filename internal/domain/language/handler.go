package language

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/homeroam/homeroam-api/internal/middleware"
	"github.com/homeroam/homeroam-api/internal/pkg/response"
	"github.com/homeroam/homeroam-api/internal/pkg/validator"
)

// Handler handles language HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates language handler
func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// ListLanguages returns the language vocabulary
// GET /languages
func (h *Handler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	languages, err := h.service.ListLanguages(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, languages)
}

// ListMine returns the caller's language abilities
// GET /me/languages
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == 0 {
		response.Unauthorized(w, "Authentication required")
		return
	}

	abilities, err := h.service.ListAbilities(r.Context(), userID)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, abilities)
}

// UpsertAbility sets the caller's fluency for a language
// PUT /me/languages/{code}
func (h *Handler) UpsertAbility(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == 0 {
		response.Unauthorized(w, "Authentication required")
		return
	}

	code := chi.URLParam(r, "code")
	if err := validator.ValidateVar(code, "required,language_code"); err != nil {
		response.BadRequest(w, "Invalid language code")
		return
	}

	var req UpsertAbilityRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	ability, err := h.service.UpsertAbility(r.Context(), userID, code, Fluency(req.Fluency))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidFluency):
			response.BadRequest(w, "Invalid fluency level")
		case errors.Is(err, ErrUnknownLanguage):
			response.NotFound(w, "Unknown language code")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, ability)
}

// RemoveAbility deletes the caller's ability for a language
// DELETE /me/languages/{code}
func (h *Handler) RemoveAbility(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == 0 {
		response.Unauthorized(w, "Authentication required")
		return
	}

	code := chi.URLParam(r, "code")
	if err := h.service.RemoveAbility(r.Context(), userID, code); err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]string{"message": "Language removed"})
}
