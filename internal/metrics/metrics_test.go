package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBookingCounters(t *testing.T) {
	Register(prometheus.NewRegistry())

	before := testutil.ToFloat64(bookingsCreated)
	IncBookingCreated()
	assert.Equal(t, before+1, testutil.ToFloat64(bookingsCreated))

	approvedBefore := testutil.ToFloat64(bookingTransitions.WithLabelValues("APPROVED"))
	IncBookingTransition("APPROVED")
	IncBookingTransition("APPROVED")
	assert.Equal(t, approvedBefore+2, testutil.ToFloat64(bookingTransitions.WithLabelValues("APPROVED")))
}

func TestObserveHTTP(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/bookings/:id", "200"))
	ObserveHTTP("GET", "/bookings/:id", "200", 0.01)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/bookings/:id", "200")))
}

func TestRegister_Idempotent(t *testing.T) {
	reg := prometheus.NewRegistry()
	assert.NotPanics(t, func() {
		Register(reg)
		Register(reg)
	})
}
