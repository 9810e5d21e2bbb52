package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/curbside-pickup/internal/api/handlers"
	"github.com/m04kA/curbside-pickup/internal/domain"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgSlotNotAvailable   = "This time slot is already booked. Please select another time."
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, start=%s", req.BookingDate, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case handlers.RespondDomainError(w, err):
			h.logger.Warn("POST /bookings - Rejected: date=%s, start=%s: %v", req.BookingDate, req.StartTime, err)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, start=%s, error=%v",
				req.BookingDate, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
