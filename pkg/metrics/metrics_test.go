package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.IncBookingCreated()
	m.IncBookingCreated()
	m.IncBookingRejected("DATE_ALREADY_BOOKED")
	m.IncCacheLookup("hit")
	m.ObserveHTTPRequest("GET", "/api/v1/shifts", 200, 10*time.Millisecond)
	m.ObserveDBQuery("query", errors.New("boom"), time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.bookingsCreated))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.bookingRejections.WithLabelValues("DATE_ALREADY_BOOKED")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/shifts", "200")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncBookingCreated()
		m.IncBookingRejected("SHIFT_INACTIVE")
		m.IncCacheLookup("miss")
		m.SetDBConnections(1, 1, 0)
		m.ObserveHTTPRequest("POST", "/api/v1/bookings", 201, time.Second)
		m.ObserveDBQuery("exec", nil, time.Second)
	})
}
