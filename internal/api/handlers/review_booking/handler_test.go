package review_booking

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
	reviewBooking "github.com/m04kA/curbside-pickup/internal/usecase/review_booking"
	"github.com/m04kA/curbside-pickup/pkg/logger"
)

type MockReviewBookingUseCase struct {
	mock.Mock
}

func (m *MockReviewBookingUseCase) Preview(ctx context.Context, req *reviewBooking.Request) (*reviewBooking.PreviewResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reviewBooking.PreviewResponse), args.Error(1)
}

func (m *MockReviewBookingUseCase) Execute(ctx context.Context, req *reviewBooking.Request) (*reviewBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reviewBooking.Response), args.Error(1)
}

func serve(uc *MockReviewBookingUseCase, method, path string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewWithWriter(io.Discard, "error"))

	r := mux.NewRouter()
	r.HandleFunc("/admin/{action:accept|decline}/{adminToken}", h.Preview).Methods(http.MethodGet)
	r.HandleFunc("/admin/{action:accept|decline}/{adminToken}", h.Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func summary(status domain.BookingStatus) reviewBooking.BookingSummary {
	return reviewBooking.BookingSummary{
		ID:           42,
		CustomerName: "Jane Doe",
		BookingDate:  time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC),
		StartTime:    "11:00",
		EndTime:      "11:15",
		Status:       status,
	}
}

func TestHandler_PreviewDoesNotExecute(t *testing.T) {
	uc := &MockReviewBookingUseCase{}
	uc.On("Preview", mock.Anything, &reviewBooking.Request{AdminToken: "at", Action: domain.ActionAccept}).
		Return(&reviewBooking.PreviewResponse{
			Booking:    summary(domain.StatusPending),
			Action:     domain.ActionAccept,
			CanPerform: true,
		}, nil)

	rec := serve(uc, http.MethodGet, "/admin/accept/at")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"canPerform":true`)
	assert.Contains(t, rec.Body.String(), `"bookingDate":"Monday, March 17, 2025"`)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandler_Accept(t *testing.T) {
	uc := &MockReviewBookingUseCase{}
	uc.On("Execute", mock.Anything, &reviewBooking.Request{AdminToken: "at", Action: domain.ActionAccept}).
		Return(&reviewBooking.Response{Booking: summary(domain.StatusConfirmed)}, nil)

	rec := serve(uc, http.MethodPost, "/admin/accept/at")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Booking confirmed successfully"`)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)
}

func TestHandler_Decline(t *testing.T) {
	uc := &MockReviewBookingUseCase{}
	uc.On("Execute", mock.Anything, &reviewBooking.Request{AdminToken: "at", Action: domain.ActionDecline}).
		Return(&reviewBooking.Response{Booking: summary(domain.StatusDeclined)}, nil)

	rec := serve(uc, http.MethodPost, "/admin/decline/at")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Booking declined successfully"`)
}

func TestHandler_Errors(t *testing.T) {
	t.Run("unknown token", func(t *testing.T) {
		uc := &MockReviewBookingUseCase{}
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

		rec := serve(uc, http.MethodPost, "/admin/accept/nope")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Booking not found or invalid token"}`, rec.Body.String())
	})

	t.Run("already processed", func(t *testing.T) {
		uc := &MockReviewBookingUseCase{}
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, &domain.TransitionError{
			Action: domain.ActionAccept, From: domain.StatusConfirmed, Reason: "Booking is already confirmed", Already: true,
		})

		rec := serve(uc, http.MethodPost, "/admin/accept/at")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Booking is already confirmed"}`, rec.Body.String())
	})

	t.Run("unknown action does not match route", func(t *testing.T) {
		uc := &MockReviewBookingUseCase{}

		rec := serve(uc, http.MethodPost, "/admin/cancel/at")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("internal", func(t *testing.T) {
		uc := &MockReviewBookingUseCase{}
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, reviewBooking.ErrInternal)

		rec := serve(uc, http.MethodPost, "/admin/decline/at")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
