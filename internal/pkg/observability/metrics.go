package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "carpool"

// Metrics holds the service's Prometheus collectors. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	SeatReservations    *prometheus.CounterVec
	LockConflicts       *prometheus.CounterVec
	OrdersIssued        *prometheus.CounterVec
	RequestsCancelled   prometheus.Counter
	CouponsClaimed      prometheus.Counter
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics registers all collectors on a fresh registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		SeatReservations: factory.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "seat_reservations_total", Help: "Seat reservation attempts by outcome"},
			[]string{"result"},
		),
		LockConflicts: factory.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "lock_conflicts_total", Help: "Operations that hit lock contention"},
			[]string{"operation"},
		),
		OrdersIssued: factory.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "orders_issued_total", Help: "Trip orders issued by trip type"},
			[]string{"trip_type"},
		),
		RequestsCancelled: factory.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "trip_requests_cancelled_total", Help: "Trip requests cancelled by passengers"},
		),
		CouponsClaimed: factory.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "coupons_claimed_total", Help: "Coupons claimed by accounts"},
		),
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests handled"},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distribution",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}
}

// Handler exposes the registry for scraping
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTP records one finished HTTP request
func (m *Metrics) ObserveHTTP(method, path, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(d.Seconds())
}

// SeatReservation records the outcome of a reservation attempt
func (m *Metrics) SeatReservation(result string) {
	if m == nil {
		return
	}
	m.SeatReservations.WithLabelValues(result).Inc()
}

// LockConflict records lock contention hit by operation
func (m *Metrics) LockConflict(operation string) {
	if m == nil {
		return
	}
	m.LockConflicts.WithLabelValues(operation).Inc()
}

// OrderIssued records a newly issued order
func (m *Metrics) OrderIssued(tripType string) {
	if m == nil {
		return
	}
	m.OrdersIssued.WithLabelValues(tripType).Inc()
}

// RequestCancelled records a passenger cancellation
func (m *Metrics) RequestCancelled() {
	if m == nil {
		return
	}
	m.RequestsCancelled.Inc()
}

// CouponClaimed records a coupon claim
func (m *Metrics) CouponClaimed() {
	if m == nil {
		return
	}
	m.CouponsClaimed.Inc()
}
