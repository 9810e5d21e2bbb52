package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/curbside-pickup/pkg/logger"
)

type MockHTTPRecorder struct {
	mock.Mock
}

func (m *MockHTTPRecorder) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.Called(method, path, status, duration)
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	recorder := &MockHTTPRecorder{}
	recorder.On("ObserveHTTPRequest", http.MethodGet, "/api/v1/bookings/track/{token}", http.StatusNotFound, mock.Anything).Return()

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(recorder))
	r.HandleFunc("/api/v1/bookings/track/{token}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/track/secret-token", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	recorder.AssertExpectations(t)
}

func TestLogging_PassesThrough(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Logging(logger.NewWithWriter(io.Discard, "info")))
	r.HandleFunc("/health", okHandler)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORS(t *testing.T) {
	handler := CORS([]string{"https://pickup.example.com/"})(http.HandlerFunc(okHandler))

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://pickup.example.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "https://pickup.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "https://pickup.example.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), AdminKeyHeader)
	})
}

func TestAdminKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		header   string
		wantCode int
	}{
		{name: "valid key", key: "s3cret", header: "s3cret", wantCode: http.StatusOK},
		{name: "wrong key", key: "s3cret", header: "nope", wantCode: http.StatusUnauthorized},
		{name: "missing header", key: "s3cret", wantCode: http.StatusUnauthorized},
		{name: "check disabled", key: "", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AdminKey(tt.key)(http.HandlerFunc(okHandler))
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
			if tt.header != "" {
				req.Header.Set(AdminKeyHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
