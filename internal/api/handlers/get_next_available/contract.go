package get_next_available

import (
	"context"

	getAvailableSlots "github.com/m04kA/curbside-pickup/internal/usecase/get_available_slots"
)

type NextAvailableUseCase interface {
	NextAvailable(ctx context.Context) (*getAvailableSlots.NextAvailableResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
