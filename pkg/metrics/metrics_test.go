package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest(http.MethodGet, "/health", http.StatusOK, time.Millisecond)
		m.ObserveDBQuery("query", nil, time.Millisecond)
		m.SetDBPoolStats(1, 1, 0, 0)
		m.IncBookingCreated()
		m.IncBookingTransition("confirmed")
		m.IncEmailSent("final_confirmation", true)
		m.IncSlotCache(true)
	})
}

func TestMetrics_Counters(t *testing.T) {
	m := New("curbside-pickup")

	m.IncBookingCreated()
	m.IncBookingCreated()
	m.IncBookingTransition("confirmed")
	m.IncEmailSent("staff_notification", false)
	m.IncSlotCache(false)
	m.ObserveDBQuery("exec", errors.New("boom"), time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingTransitions.WithLabelValues("confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.emailsSent.WithLabelValues("staff_notification", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.slotCacheRequests.WithLabelValues("miss")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New("curbside-pickup")
	m.ObserveHTTPRequest(http.MethodPost, "/api/v1/bookings", http.StatusCreated, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="POST",path="/api/v1/bookings",service="curbside-pickup",status="201"} 1`)
}
