package get_next_available

import (
	"net/http"

	"github.com/m04kA/curbside-pickup/internal/api/handlers"
)

type Handler struct {
	useCase NextAvailableUseCase
	logger  Logger
}

func NewHandler(useCase NextAvailableUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/next-available
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.NextAvailable(r.Context())
	if err != nil {
		h.logger.Error("GET /slots/next-available - Failed to get next available slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots/next-available - Found %d days with free slots", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
