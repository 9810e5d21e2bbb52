package create_booking

import (
	"github.com/m04kA/curbside-pickup/internal/domain"
	createBooking "github.com/m04kA/curbside-pickup/internal/usecase/create_booking"
)

const msgBookingCreated = "Booking created successfully"

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName        string  `json:"customerName"`
	CustomerEmail       string  `json:"customerEmail"`
	CustomerPhone       string  `json:"customerPhone"`
	BookingDate         string  `json:"bookingDate"` // "2025-03-17"
	StartTime           string  `json:"startTime"`   // "11:00"
	SpecialInstructions *string `json:"specialInstructions,omitempty"`
	ItemsDescription    *string `json:"itemsDescription,omitempty"`
}

// BookingResponse созданное бронирование
type BookingResponse struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	BookingDate  string `json:"bookingDate"` // "Monday, March 17, 2025"
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Status       string `json:"status"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Формат даты и времени проверяет use case.
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		CustomerName:        r.CustomerName,
		CustomerEmail:       r.CustomerEmail,
		CustomerPhone:       r.CustomerPhone,
		BookingDate:         r.BookingDate,
		StartTime:           r.StartTime,
		SpecialInstructions: r.SpecialInstructions,
		ItemsDescription:    r.ItemsDescription,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Message: msgBookingCreated,
		Booking: BookingResponse{
			ID:           resp.ID,
			CustomerName: resp.CustomerName,
			BookingDate:  resp.BookingDate.Format(domain.LongDateFormat),
			StartTime:    resp.StartTime.String(),
			EndTime:      resp.EndTime.String(),
			Status:       string(resp.Status),
		},
	}
}
