package review_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/curbside-pickup/internal/api/handlers"
	"github.com/m04kA/curbside-pickup/internal/domain"
	reviewBooking "github.com/m04kA/curbside-pickup/internal/usecase/review_booking"
)

const msgNotFound = "Booking not found or invalid token"

// Handler действия персонала по ссылке из письма.
// GET только показывает бронирование, статус меняет POST на тот же путь.
type Handler struct {
	useCase ReviewBookingUseCase
	logger  Logger
}

func NewHandler(useCase ReviewBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Preview GET /api/v1/admin/{action}/{adminToken}
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	req := toUseCaseRequest(r)

	result, err := h.useCase.Preview(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET", req, err)
		return
	}

	h.logger.Info("GET /admin/%s/{token} - Preview: booking_id=%d, can_perform=%t",
		req.Action, result.Booking.ID, result.CanPerform)
	handlers.RespondJSON(w, http.StatusOK, FromPreviewResponse(result))
}

// Handle POST /api/v1/admin/{action}/{adminToken}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := toUseCaseRequest(r)

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		h.respondError(w, "POST", req, err)
		return
	}

	h.logger.Info("POST /admin/%s/{token} - Booking id=%d is now %s", req.Action, result.Booking.ID, result.Booking.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(req.Action, result))
}

func (h *Handler) respondError(w http.ResponseWriter, method string, req *reviewBooking.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.logger.Warn("%s /admin/%s/{token} - Booking not found", method, req.Action)
		handlers.RespondNotFound(w, msgNotFound)

	case handlers.RespondDomainError(w, err):
		h.logger.Warn("%s /admin/%s/{token} - Rejected: %v", method, req.Action, err)

	default:
		h.logger.Error("%s /admin/%s/{token} - Failed: %v", method, req.Action, err)
		handlers.RespondInternalError(w)
	}
}

func toUseCaseRequest(r *http.Request) *reviewBooking.Request {
	vars := mux.Vars(r)
	return &reviewBooking.Request{
		AdminToken: vars["adminToken"],
		Action:     domain.Action(vars["action"]),
	}
}
