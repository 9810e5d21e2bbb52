package get_stats

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/curbside-pickup/internal/service/bookings/models"
	"github.com/m04kA/curbside-pickup/pkg/logger"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Stats(ctx context.Context) (*models.StatsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StatsResponse), args.Error(1)
}

func TestHandler(t *testing.T) {
	svc := &MockBookingService{}
	svc.On("Stats", mock.Anything).Return(&models.StatsResponse{
		TotalBookings: 10, TodayBookings: 2, PendingBookings: 3, ConfirmedBookings: 4, NextWeekBookings: 5,
	}, nil).Once()
	svc.On("Stats", mock.Anything).Return(nil, errors.New("db down")).Once()

	h := NewHandler(svc, logger.NewWithWriter(io.Discard, "error"))

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalBookings":10,"todayBookings":2,"pendingBookings":3,"confirmedBookings":4,"nextWeekBookings":5}`,
		rec.Body.String())

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
