package get_admin_bookings

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/curbside-pickup/internal/domain"
	"github.com/m04kA/curbside-pickup/internal/service/bookings/models"
	"github.com/m04kA/curbside-pickup/pkg/logger"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingListResponse), args.Error(1)
}

func serve(svc *MockBookingService, url string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewWithWriter(io.Discard, "error")).
		Handle(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandler_OK(t *testing.T) {
	svc := &MockBookingService{}
	svc.On("List", mock.Anything, &models.ListBookingsRequest{Status: "pending", Date: "2025-03-17", Page: 2, Limit: 10}).
		Return(&models.BookingListResponse{
			Bookings: []models.BookingResponse{{ID: 1, CustomerName: "Jane Doe", Status: "pending"}},
			Pagination: models.Pagination{
				Page: 2, Limit: 10, Total: 11, Pages: 2,
			},
		}, nil)

	rec := serve(svc, "/api/v1/admin/bookings?status=pending&date=2025-03-17&page=2&limit=10")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pagination":{"page":2,"limit":10,"total":11,"pages":2}`)
	assert.NotContains(t, rec.Body.String(), "Token")
}

func TestHandler_InvalidQuery(t *testing.T) {
	svc := &MockBookingService{}

	rec := serve(svc, "/api/v1/admin/bookings?page=abc&limit=-1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"page"`)
	assert.Contains(t, rec.Body.String(), `"field":"limit"`)
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestHandler_ServiceValidation(t *testing.T) {
	svc := &MockBookingService{}
	svc.On("List", mock.Anything, mock.Anything).
		Return(nil, domain.NewValidationError("status", "must be all, pending, confirmed, declined or cancelled"))

	rec := serve(svc, "/api/v1/admin/bookings?status=archived")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"status"`)
}
