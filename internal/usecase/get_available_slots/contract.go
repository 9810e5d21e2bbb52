package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/curbside-pickup/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetOccupiedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error)
	GetOccupiedTimesInRange(ctx context.Context, from, to time.Time) (map[string][]types.TimeString, error)
}

// OccupiedCache кэш занятых слотов по дате
type OccupiedCache interface {
	GetOccupied(ctx context.Context, date time.Time) ([]types.TimeString, bool, error)
	SetOccupied(ctx context.Context, date time.Time, occupied []types.TimeString) error
}

// CacheMetrics счетчик попаданий в кэш
type CacheMetrics interface {
	IncSlotCache(hit bool)
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
