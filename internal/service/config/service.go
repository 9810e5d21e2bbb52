package config

import (
	"time"

	"github.com/m04kA/curbside-pickup/internal/domain"
	"github.com/m04kA/curbside-pickup/internal/service/config/models"
)

// Business публичные данные бизнеса
type Business struct {
	Name    string
	Address string
}

// Service отдает публичные настройки расписания.
// Настройки читаются из конфигурации при старте и не меняются во время работы.
type Service struct {
	settings *models.SettingsResponse
	logger   Logger
}

// NewService создает сервис настроек
func NewService(business Business, schedule domain.Schedule, logger Logger) *Service {
	settings := &models.SettingsResponse{
		BusinessName:    business.Name,
		BusinessAddress: business.Address,
		OpeningHour:     schedule.OpeningHour,
		ClosingHour:     schedule.ClosingHour,
		SlotDuration:    schedule.SlotDurationMinutes,
		Timezone:        schedule.Location.String(),
		OperatingDays:   weekdayNames(schedule.OpenDays()),
		ClosedDays:      weekdayNames(schedule.ClosedDays),
	}

	logger.Info("Settings: %s, %02d:00-%02d:00, slot=%dm, closed=%v",
		settings.Timezone, settings.OpeningHour, settings.ClosingHour, settings.SlotDuration, settings.ClosedDays)

	return &Service{settings: settings, logger: logger}
}

// GetSettings возвращает копию настроек
func (s *Service) GetSettings() *models.SettingsResponse {
	out := *s.settings
	out.OperatingDays = append([]string(nil), s.settings.OperatingDays...)
	out.ClosedDays = append([]string(nil), s.settings.ClosedDays...)
	return &out
}

func weekdayNames(days []time.Weekday) []string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String())
	}
	return names
}
