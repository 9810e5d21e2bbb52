package track_booking

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/curbside-pickup/internal/domain"
	"github.com/m04kA/curbside-pickup/internal/service/bookings/models"
	"github.com/m04kA/curbside-pickup/pkg/logger"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Track(ctx context.Context, token string) (*models.TrackResponse, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TrackResponse), args.Error(1)
}

func serve(svc *MockBookingService, token string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/bookings/track/{token}", NewHandler(svc, logger.NewWithWriter(io.Discard, "error")).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/track/"+token, nil))
	return rec
}

func TestHandler_OK(t *testing.T) {
	svc := &MockBookingService{}
	svc.On("Track", mock.Anything, "bt").Return(&models.TrackResponse{
		ID:            42,
		CustomerName:  "Jane Doe",
		BookingDate:   "Monday, March 17, 2025",
		StartTime:     "11:00",
		EndTime:       "11:15",
		Status:        "pending",
		StatusDisplay: "Pending Review",
	}, nil)

	rec := serve(svc, "bt")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"booking":{"id":42`)
	assert.Contains(t, rec.Body.String(), `"statusDisplay":"Pending Review"`)
}

func TestHandler_NotFound(t *testing.T) {
	svc := &MockBookingService{}
	svc.On("Track", mock.Anything, "nope").Return(nil, domain.ErrNotFound)

	rec := serve(svc, "nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Booking not found"}`, rec.Body.String())
}
