package get_slots_range

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/curbside-pickup/internal/api/handlers"
)

const msgInvalidDate = "Invalid date format. Use YYYY-MM-DD"

type Handler struct {
	useCase GetSlotsRangeUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotsRangeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/available/{startDate}/{endDate}
// Выходные и прошедшие дни в ответ не попадают.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	startStr, endStr := vars["startDate"], vars["endDate"]

	useCaseReq, err := ToUseCaseRequest(startStr, endStr)
	if err != nil {
		h.logger.Warn("GET /slots/available/{startDate}/{endDate} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.ExecuteRange(r.Context(), useCaseReq)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("GET /slots/available/{startDate}/{endDate} - Rejected: %s..%s: %v", startStr, endStr, err)
			return
		}
		h.logger.Error("GET /slots/available/{startDate}/{endDate} - Failed to get slots: %s..%s, error=%v",
			startStr, endStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots/available/{startDate}/{endDate} - Slots retrieved successfully: %s..%s, days=%d",
		startStr, endStr, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(useCaseReq, result))
}
