package bookings

import (
	"context"
	"time"

	"github.com/m04kA/curbside-pickup/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByBookingToken(ctx context.Context, token string) (*domain.Booking, error)
	TransitionStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (bool, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Count(ctx context.Context, filter domain.BookingsFilter) (int, error)
	Stats(ctx context.Context, today time.Time) (*domain.BookingStats, error)
}

// SlotCache кэш занятых слотов
type SlotCache interface {
	Invalidate(ctx context.Context, date time.Time) error
}

// Metrics счетчик переходов статуса
type Metrics interface {
	IncBookingTransition(to string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
