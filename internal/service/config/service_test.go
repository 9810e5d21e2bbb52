package config

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/curbside-pickup/internal/domain"
	"github.com/m04kA/curbside-pickup/internal/service/config/models"
	"github.com/m04kA/curbside-pickup/pkg/logger"
)

func TestService_GetSettings(t *testing.T) {
	loc, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)

	svc := NewService(
		Business{Name: "Gem Pickup", Address: "30 Bertrand Ave, Scarborough, ON"},
		domain.Schedule{
			OpeningHour:         11,
			ClosingHour:         17,
			SlotDurationMinutes: 15,
			Location:            loc,
			ClosedDays:          []time.Weekday{time.Sunday},
		},
		logger.NewWithWriter(io.Discard, "error"),
	)

	settings := svc.GetSettings()

	assert.Equal(t, &models.SettingsResponse{
		BusinessName:    "Gem Pickup",
		BusinessAddress: "30 Bertrand Ave, Scarborough, ON",
		OpeningHour:     11,
		ClosingHour:     17,
		SlotDuration:    15,
		Timezone:        "America/Toronto",
		OperatingDays:   []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		ClosedDays:      []string{"Sunday"},
	}, settings)

	settings.ClosedDays[0] = "Monday"
	assert.Equal(t, []string{"Sunday"}, svc.GetSettings().ClosedDays)
}
