package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/curbside-pickup/internal/api/handlers"
	"github.com/m04kA/curbside-pickup/internal/domain"
)

const (
	msgNotFound  = "Booking not found"
	msgCancelled = "Booking cancelled successfully"
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

// Handle POST /api/v1/bookings/cancel/{token}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	if err := h.service.Cancel(r.Context(), token); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("POST /bookings/cancel/{token} - Booking not found")
			handlers.RespondNotFound(w, msgNotFound)

		case handlers.RespondDomainError(w, err):
			h.logger.Warn("POST /bookings/cancel/{token} - Cannot cancel: %v", err)

		default:
			h.logger.Error("POST /bookings/cancel/{token} - Failed to cancel booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/cancel/{token} - Booking cancelled successfully")
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgCancelled})
}
