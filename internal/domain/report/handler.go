package report

import (
	"errors"
	"net/http"

	"github.com/homeroam/homeroam-api/internal/middleware"
	"github.com/homeroam/homeroam-api/internal/pkg/response"
	"github.com/homeroam/homeroam-api/internal/pkg/validator"
)

// Handler handles report HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates report handler
func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// Submit files a content report
// POST /reports
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == 0 {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req ContentReportRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	// Fall back to the transport-level user agent when the client did
	// not capture one itself
	if req.UserAgent == "" {
		req.UserAgent = r.UserAgent()
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if _, err := h.service.SubmitReport(r.Context(), userID, &req); err != nil {
		if errors.Is(err, ErrStorageFailure) {
			response.StorageError(w)
		} else {
			response.InternalError(w)
		}
		return
	}

	// Empty acknowledgment: submission success means the report is
	// durably stored, nothing more
	response.Created(w, nil)
}
