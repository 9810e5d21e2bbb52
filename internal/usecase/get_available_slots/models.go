package get_available_slots

import (
	"time"

	"github.com/m04kA/curbside-pickup/internal/domain"
	"github.com/m04kA/curbside-pickup/pkg/types"
)

// Request запрос слотов на одну дату
type Request struct {
	Date time.Time // Дата без времени
}

// Response свободные слоты на дату
type Response = domain.DayAvailability

// RangeRequest запрос слотов на диапазон дат (включительно)
type RangeRequest struct {
	StartDate time.Time
	EndDate   time.Time
}

// RangeResponse свободные слоты по дням. Выходные и прошедшие дни пропускаются.
type RangeResponse struct {
	Days []domain.DayAvailability
}

// NextAvailableDay ближайший день со свободными слотами
type NextAvailableDay struct {
	Date           time.Time
	Slots          []types.TimeString // первые domain.NextAvailableSlotsPerDay слотов
	AvailableCount int                // всего свободных слотов в этот день
	IsToday        bool
}

// NextAvailableResponse ближайшие дни со свободными слотами
type NextAvailableResponse struct {
	Days []NextAvailableDay
}
