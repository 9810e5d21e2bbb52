package domain

import (
	"time"

	"github.com/m04kA/curbside-pickup/pkg/types"
)

// DayAvailability свободные слоты на одну дату
type DayAvailability struct {
	Date       time.Time
	Slots      []types.TimeString
	TotalSlots int // число свободных слотов
	IsToday    bool
}

// HasAvailability есть ли хотя бы один свободный слот
func (d *DayAvailability) HasAvailability() bool {
	return len(d.Slots) > 0
}
