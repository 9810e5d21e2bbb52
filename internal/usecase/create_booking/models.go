package create_booking

import (
	"time"

	"github.com/m04kA/curbside-pickup/internal/domain"
	"github.com/m04kA/curbside-pickup/pkg/types"
)

// Request модель запроса на создание бронирования.
// Дата и время приходят строками, формат проверяется при валидации.
type Request struct {
	CustomerName        string  `field:"customerName"`
	CustomerEmail       string  `field:"customerEmail"`
	CustomerPhone       string  `field:"customerPhone"`
	BookingDate         string  `field:"bookingDate"`
	StartTime           string  `field:"startTime"`
	SpecialInstructions *string `field:"specialInstructions"`
	ItemsDescription    *string `field:"itemsDescription"`
}

// Response модель ответа с созданным бронированием. Токены не возвращаются.
type Response struct {
	ID           int64
	CustomerName string
	BookingDate  time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	Status       domain.BookingStatus
	CreatedAt    time.Time
}
