package track_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/curbside-pickup/internal/api/handlers"
	"github.com/m04kA/curbside-pickup/internal/domain"
	"github.com/m04kA/curbside-pickup/internal/service/bookings/models"
)

const msgNotFound = "Booking not found"

// TrackBookingResponse HTTP response model
type TrackBookingResponse struct {
	Booking *models.TrackResponse `json:"booking"`
}

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

// Handle GET /api/v1/bookings/track/{token}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	booking, err := h.service.Track(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("GET /bookings/track/{token} - Booking not found")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/track/{token} - Failed to get booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/track/{token} - Booking retrieved successfully: booking_id=%d", booking.ID)
	handlers.RespondJSON(w, http.StatusOK, TrackBookingResponse{Booking: booking})
}
