package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Bookings(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "test")

	m.BookingAdmitted()
	m.BookingAdmitted()
	m.BookingRejected("slot_already_booked")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsAdmitted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsRejected.WithLabelValues("slot_already_booked")))
}

func TestMetrics_Subscriptions(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "test")

	m.SubscriptionOpened()
	m.SubscriptionOpened()
	m.SubscriptionClosed()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.liveSubscriptions))
}

func TestMetrics_DB(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "test")

	m.ObserveDB("select", time.Millisecond, nil)
	m.ObserveDB("insert", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueriesTotal.WithLabelValues("select", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueriesTotal.WithLabelValues("insert", "error")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.BookingAdmitted()
		m.BookingRejected("x")
		m.SubscriptionOpened()
		m.SubscriptionClosed()
		m.ObserveHTTP("GET", "/", 200, time.Second)
		m.ObserveDB("select", time.Second, nil)
	})
}
