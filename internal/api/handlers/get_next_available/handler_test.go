package get_next_available

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	getAvailableSlots "github.com/m04kA/curbside-pickup/internal/usecase/get_available_slots"
	"github.com/m04kA/curbside-pickup/pkg/logger"
	"github.com/m04kA/curbside-pickup/pkg/types"
)

type MockNextAvailableUseCase struct {
	mock.Mock
}

func (m *MockNextAvailableUseCase) NextAvailable(ctx context.Context) (*getAvailableSlots.NextAvailableResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAvailableSlots.NextAvailableResponse), args.Error(1)
}

func TestHandler(t *testing.T) {
	uc := &MockNextAvailableUseCase{}
	uc.On("NextAvailable", mock.Anything).Return(&getAvailableSlots.NextAvailableResponse{
		Days: []getAvailableSlots.NextAvailableDay{{
			Date:           time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC),
			Slots:          []types.TimeString{"11:00", "11:15"},
			AvailableCount: 24,
			IsToday:        true,
		}},
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewWithWriter(io.Discard, "error")).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots/next-available", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"nextAvailableSlots":[
		{"date":"2025-03-17","dayOfWeek":"Monday","availableSlots":["11:00","11:15"],"totalAvailable":24,"isToday":true}
	]}`, rec.Body.String())
}

func TestHandler_NothingFree(t *testing.T) {
	uc := &MockNextAvailableUseCase{}
	uc.On("NextAvailable", mock.Anything).Return(&getAvailableSlots.NextAvailableResponse{}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewWithWriter(io.Discard, "error")).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots/next-available", nil))

	assert.JSONEq(t, `{"nextAvailableSlots":[]}`, rec.Body.String())
}
