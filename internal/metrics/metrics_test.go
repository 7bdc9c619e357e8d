package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingCounters(t *testing.T) {
	before := testutil.ToFloat64(bookingsCreated.WithLabelValues("room"))
	BookingCreated("room")
	assert.Equal(t, before+1, testutil.ToFloat64(bookingsCreated.WithLabelValues("room")))

	rejected := testutil.ToFloat64(bookingsRejected.WithLabelValues("overlap"))
	BookingRejected("overlap")
	assert.Equal(t, rejected+1, testutil.ToFloat64(bookingsRejected.WithLabelValues("overlap")))
}

func TestHandler_ExposesHTTPMetrics(t *testing.T) {
	ObserveHTTP(http.MethodGet, "/api/v1/rooms", http.StatusOK, 15*time.Millisecond)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `staybooker_http_requests_total{method="GET",route="/api/v1/rooms",status="200"}`)
	assert.Contains(t, w.Body.String(), "staybooker_http_request_duration_seconds")
}
