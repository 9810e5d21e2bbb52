package get_slots_range

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/curbside-pickup/internal/domain"
	getAvailableSlots "github.com/m04kA/curbside-pickup/internal/usecase/get_available_slots"
	"github.com/m04kA/curbside-pickup/pkg/logger"
	"github.com/m04kA/curbside-pickup/pkg/types"
)

type MockGetSlotsRangeUseCase struct {
	mock.Mock
}

func (m *MockGetSlotsRangeUseCase) ExecuteRange(ctx context.Context, req *getAvailableSlots.RangeRequest) (*getAvailableSlots.RangeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAvailableSlots.RangeResponse), args.Error(1)
}

func serve(uc *MockGetSlotsRangeUseCase, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/slots/available/{startDate}/{endDate}", NewHandler(uc, logger.NewWithWriter(io.Discard, "error")).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandler_OK(t *testing.T) {
	uc := &MockGetSlotsRangeUseCase{}
	start := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

	uc.On("ExecuteRange", mock.Anything, &getAvailableSlots.RangeRequest{StartDate: start, EndDate: end}).
		Return(&getAvailableSlots.RangeResponse{Days: []domain.DayAvailability{
			{Date: start, Slots: []types.TimeString{"16:45"}, TotalSlots: 1, IsToday: true},
			{Date: end, Slots: []types.TimeString{"11:00", "11:15"}, TotalSlots: 2},
		}}, nil)

	rec := serve(uc, "/slots/available/2025-03-15/2025-03-17")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"startDate": "2025-03-15",
		"endDate": "2025-03-17",
		"slots": [
			{"date":"2025-03-15","dayOfWeek":"Saturday","availableSlots":["16:45"],"totalSlots":1,"isToday":true},
			{"date":"2025-03-17","dayOfWeek":"Monday","availableSlots":["11:00","11:15"],"totalSlots":2,"isToday":false}
		]
	}`, rec.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	t.Run("invalid end date", func(t *testing.T) {
		uc := &MockGetSlotsRangeUseCase{}

		rec := serve(uc, "/slots/available/2025-03-15/tomorrow")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "ExecuteRange", mock.Anything, mock.Anything)
	})

	t.Run("reversed range", func(t *testing.T) {
		uc := &MockGetSlotsRangeUseCase{}
		uc.On("ExecuteRange", mock.Anything, mock.Anything).
			Return(nil, domain.NewValidationError("endDate", "Start date must be before or equal to end date"))

		rec := serve(uc, "/slots/available/2025-03-17/2025-03-15")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "endDate")
	})

	t.Run("internal", func(t *testing.T) {
		uc := &MockGetSlotsRangeUseCase{}
		uc.On("ExecuteRange", mock.Anything, mock.Anything).Return(nil, getAvailableSlots.ErrInternal)

		rec := serve(uc, "/slots/available/2025-03-15/2025-03-17")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
