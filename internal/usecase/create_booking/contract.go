package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/curbside-pickup/internal/domain"
	"github.com/m04kA/curbside-pickup/internal/service/tokens"
	"github.com/m04kA/curbside-pickup/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ExistsActiveAtSlot(ctx context.Context, date time.Time, start types.TimeString) (bool, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TokenIssuer выпускает токены клиента и персонала
type TokenIssuer interface {
	Issue() (tokens.Pair, error)
}

// SlotCache кэш занятых слотов
type SlotCache interface {
	Invalidate(ctx context.Context, date time.Time) error
}

// Notifier отправляет письма после создания бронирования
type Notifier interface {
	SendCustomerConfirmation(ctx context.Context, booking *domain.Booking) bool
	SendStaffNotification(ctx context.Context, booking *domain.Booking) bool
}

// Metrics счетчик созданных бронирований
type Metrics interface {
	IncBookingCreated()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
