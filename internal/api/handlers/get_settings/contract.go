package get_settings

import "github.com/m04kA/curbside-pickup/internal/service/config/models"

type SettingsService interface {
	GetSettings() *models.SettingsResponse
}
