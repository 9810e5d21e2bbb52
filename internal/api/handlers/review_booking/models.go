package review_booking

import (
	"github.com/m04kA/curbside-pickup/internal/domain"
	reviewBooking "github.com/m04kA/curbside-pickup/internal/usecase/review_booking"
)

var actionMessages = map[domain.Action]string{
	domain.ActionAccept:  "Booking confirmed successfully",
	domain.ActionDecline: "Booking declined successfully",
}

// BookingResponse бронирование для персонала
type BookingResponse struct {
	ID                  int64   `json:"id"`
	CustomerName        string  `json:"customerName"`
	CustomerEmail       string  `json:"customerEmail"`
	CustomerPhone       string  `json:"customerPhone"`
	BookingDate         string  `json:"bookingDate"` // "Monday, March 17, 2025"
	StartTime           string  `json:"startTime"`
	EndTime             string  `json:"endTime"`
	Status              string  `json:"status"`
	StatusDisplay       string  `json:"statusDisplay"`
	SpecialInstructions *string `json:"specialInstructions,omitempty"`
	ItemsDescription    *string `json:"itemsDescription,omitempty"`
}

// PreviewResponse ответ на GET: что произойдет после подтверждения
type PreviewResponse struct {
	Booking    BookingResponse `json:"booking"`
	Action     string          `json:"action"`
	CanPerform bool            `json:"canPerform"`
	Reason     string          `json:"reason,omitempty"`
}

// ActionResponse ответ на POST
type ActionResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

func fromSummary(b reviewBooking.BookingSummary) BookingResponse {
	return BookingResponse{
		ID:                  b.ID,
		CustomerName:        b.CustomerName,
		CustomerEmail:       b.CustomerEmail,
		CustomerPhone:       b.CustomerPhone,
		BookingDate:         b.BookingDate.Format(domain.LongDateFormat),
		StartTime:           b.StartTime.String(),
		EndTime:             b.EndTime.String(),
		Status:              string(b.Status),
		StatusDisplay:       b.Status.Display(),
		SpecialInstructions: b.SpecialInstructions,
		ItemsDescription:    b.ItemsDescription,
	}
}

// FromPreviewResponse конвертирует результат просмотра
func FromPreviewResponse(resp *reviewBooking.PreviewResponse) *PreviewResponse {
	return &PreviewResponse{
		Booking:    fromSummary(resp.Booking),
		Action:     string(resp.Action),
		CanPerform: resp.CanPerform,
		Reason:     resp.Reason,
	}
}

// FromUseCaseResponse конвертирует результат действия
func FromUseCaseResponse(action domain.Action, resp *reviewBooking.Response) *ActionResponse {
	return &ActionResponse{
		Message: actionMessages[action],
		Booking: fromSummary(resp.Booking),
	}
}
