package review_booking

import (
	"context"

	"github.com/m04kA/curbside-pickup/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByAdminToken(ctx context.Context, token string) (*domain.Booking, error)
	TransitionStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (bool, error)
}

// Notifier письма клиенту о решении персонала
type Notifier interface {
	SendFinalConfirmation(ctx context.Context, booking *domain.Booking) bool
	SendDeclineNotification(ctx context.Context, booking *domain.Booking) bool
}

// Metrics счетчик переходов статуса
type Metrics interface {
	IncBookingTransition(to string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
