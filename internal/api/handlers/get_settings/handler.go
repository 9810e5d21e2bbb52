package get_settings

import (
	"net/http"

	"github.com/m04kA/curbside-pickup/internal/api/handlers"
)

type Handler struct {
	service SettingsService
}

func NewHandler(service SettingsService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/v1/slots/settings
// Публичный endpoint
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.GetSettings())
}
