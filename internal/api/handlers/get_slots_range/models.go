package get_slots_range

import (
	"time"

	"github.com/m04kA/curbside-pickup/internal/domain"
	getAvailableSlots "github.com/m04kA/curbside-pickup/internal/usecase/get_available_slots"
)

// DaySlots свободные слоты одного дня
type DaySlots struct {
	Date           string   `json:"date"`
	DayOfWeek      string   `json:"dayOfWeek"`
	AvailableSlots []string `json:"availableSlots"`
	TotalSlots     int      `json:"totalSlots"`
	IsToday        bool     `json:"isToday"`
}

// SlotsRangeResponse HTTP response model
type SlotsRangeResponse struct {
	StartDate string     `json:"startDate"`
	EndDate   string     `json:"endDate"`
	Slots     []DaySlots `json:"slots"`
}

// ToUseCaseRequest парсит границы диапазона из пути
func ToUseCaseRequest(startStr, endStr string) (*getAvailableSlots.RangeRequest, error) {
	start, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		return nil, err
	}
	return &getAvailableSlots.RangeRequest{StartDate: start, EndDate: end}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(req *getAvailableSlots.RangeRequest, resp *getAvailableSlots.RangeResponse) *SlotsRangeResponse {
	out := &SlotsRangeResponse{
		StartDate: req.StartDate.Format(domain.DateFormat),
		EndDate:   req.EndDate.Format(domain.DateFormat),
		Slots:     make([]DaySlots, 0, len(resp.Days)),
	}

	for _, day := range resp.Days {
		slots := make([]string, 0, len(day.Slots))
		for _, s := range day.Slots {
			slots = append(slots, s.String())
		}
		out.Slots = append(out.Slots, DaySlots{
			Date:           day.Date.Format(domain.DateFormat),
			DayOfWeek:      day.Date.Weekday().String(),
			AvailableSlots: slots,
			TotalSlots:     day.TotalSlots,
			IsToday:        day.IsToday,
		})
	}

	return out
}
