package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/curbside-pickup/internal/domain"
	createBooking "github.com/m04kA/curbside-pickup/internal/usecase/create_booking"
	"github.com/m04kA/curbside-pickup/pkg/logger"
)

type MockCreateBookingUseCase struct {
	mock.Mock
}

func (m *MockCreateBookingUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createBooking.Response), args.Error(1)
}

const validBody = `{
	"customerName": "Jane Doe",
	"customerEmail": "jane@example.com",
	"customerPhone": "+1 416 555 0100",
	"bookingDate": "2025-03-17",
	"startTime": "11:00"
}`

func serve(uc *MockCreateBookingUseCase, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewWithWriter(io.Discard, "error"))
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)))
	return rec
}

func TestHandler_Created(t *testing.T) {
	uc := &MockCreateBookingUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createBooking.Request) bool {
		return r.CustomerName == "Jane Doe" && r.StartTime == "11:00" && r.SpecialInstructions == nil
	})).Return(&createBooking.Response{
		ID:           1,
		CustomerName: "Jane Doe",
		BookingDate:  time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC),
		StartTime:    "11:00",
		EndTime:      "11:15",
		Status:       domain.StatusPending,
	}, nil)

	rec := serve(uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"message": "Booking created successfully",
		"booking": {
			"id": 1,
			"customerName": "Jane Doe",
			"bookingDate": "Monday, March 17, 2025",
			"startTime": "11:00",
			"endTime": "11:15",
			"status": "pending"
		}
	}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "Token")
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantError string
	}{
		{
			name:      "slot taken",
			err:       fmt.Errorf("wrapped: %w", domain.ErrSlotTaken),
			wantCode:  http.StatusConflict,
			wantError: msgSlotNotAvailable,
		},
		{
			name:      "closed day",
			err:       &domain.DateError{Reason: "We are closed on Sundays"},
			wantCode:  http.StatusBadRequest,
			wantError: "We are closed on Sundays",
		},
		{
			name:      "validation",
			err:       domain.NewValidationError("customerEmail", "must be a valid email address"),
			wantCode:  http.StatusBadRequest,
			wantError: "Validation failed",
		},
		{
			name:      "internal",
			err:       createBooking.ErrInternal,
			wantCode:  http.StatusInternalServerError,
			wantError: "Something went wrong. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MockCreateBookingUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(uc, validBody)

			assert.Equal(t, tt.wantCode, rec.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}

func TestHandler_InvalidBody(t *testing.T) {
	uc := &MockCreateBookingUseCase{}

	rec := serve(uc, `{"customerName":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
