package track_booking

import (
	"context"

	"github.com/m04kA/curbside-pickup/internal/service/bookings/models"
)

type BookingService interface {
	Track(ctx context.Context, token string) (*models.TrackResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
