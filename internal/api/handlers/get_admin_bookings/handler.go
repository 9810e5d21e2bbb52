package get_admin_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/curbside-pickup/internal/api/handlers"
	"github.com/m04kA/curbside-pickup/internal/domain"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Query params: status, date, page, limit (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceReq, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			h.logger.Warn("GET /admin/bookings - Invalid parameters: %v", err)
			handlers.RespondValidationError(w, validationErr)
			return
		}
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("GET /admin/bookings - Invalid parameters: %v", err)
			return
		}
		h.logger.Error("GET /admin/bookings - Failed to get bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved successfully: count=%d, total=%d",
		len(result.Bookings), result.Pagination.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
