package get_next_available

import (
	"github.com/m04kA/curbside-pickup/internal/domain"
	getAvailableSlots "github.com/m04kA/curbside-pickup/internal/usecase/get_available_slots"
)

// NextAvailableDay ближайший день со свободными слотами
type NextAvailableDay struct {
	Date           string   `json:"date"`
	DayOfWeek      string   `json:"dayOfWeek"`
	AvailableSlots []string `json:"availableSlots"`
	TotalAvailable int      `json:"totalAvailable"`
	IsToday        bool     `json:"isToday"`
}

// NextAvailableResponse HTTP response model
type NextAvailableResponse struct {
	NextAvailableSlots []NextAvailableDay `json:"nextAvailableSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.NextAvailableResponse) *NextAvailableResponse {
	out := &NextAvailableResponse{NextAvailableSlots: make([]NextAvailableDay, 0, len(resp.Days))}

	for _, day := range resp.Days {
		slots := make([]string, 0, len(day.Slots))
		for _, s := range day.Slots {
			slots = append(slots, s.String())
		}
		out.NextAvailableSlots = append(out.NextAvailableSlots, NextAvailableDay{
			Date:           day.Date.Format(domain.DateFormat),
			DayOfWeek:      day.Date.Weekday().String(),
			AvailableSlots: slots,
			TotalAvailable: day.AvailableCount,
			IsToday:        day.IsToday,
		})
	}

	return out
}
