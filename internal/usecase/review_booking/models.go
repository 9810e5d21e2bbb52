package review_booking

import (
	"time"

	"github.com/m04kA/curbside-pickup/internal/domain"
	"github.com/m04kA/curbside-pickup/pkg/types"
)

// Request действие персонала по токену из письма
type Request struct {
	AdminToken string
	Action     domain.Action // accept или decline
}

// BookingSummary данные бронирования для персонала. Токены не возвращаются.
type BookingSummary struct {
	ID                  int64
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	BookingDate         time.Time
	StartTime           types.TimeString
	EndTime             types.TimeString
	Status              domain.BookingStatus
	SpecialInstructions *string
	ItemsDescription    *string
}

// PreviewResponse результат просмотра без изменения статуса
type PreviewResponse struct {
	Booking    BookingSummary
	Action     domain.Action
	CanPerform bool
	Reason     string // причина, если действие уже невозможно
}

// Response результат выполненного действия
type Response struct {
	Booking BookingSummary
}

func toSummary(b *domain.Booking) BookingSummary {
	return BookingSummary{
		ID:                  b.ID,
		CustomerName:        b.CustomerName,
		CustomerEmail:       b.CustomerEmail,
		CustomerPhone:       b.CustomerPhone,
		BookingDate:         b.BookingDate,
		StartTime:           b.StartTime,
		EndTime:             b.EndTime,
		Status:              b.Status,
		SpecialInstructions: b.SpecialInstructions,
		ItemsDescription:    b.ItemsDescription,
	}
}
