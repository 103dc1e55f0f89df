package obs

import "github.com/prometheus/client_golang/prometheus"

// Metrics is the metric set for a service instance. Both binaries register
// the same set; the order counters simply stay at zero on the inventory side.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	OrdersCreated   prometheus.Counter
	OrdersCompleted prometheus.Counter
}

// NewMetrics registers the metric set on the given registry. Tests pass a
// fresh prometheus.NewRegistry to avoid duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		OrdersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Orders accepted and persisted as pending.",
		}),
		OrdersCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_completed_total",
			Help: "Orders completed and published to the event stream.",
		}),
	}

	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.OrdersCreated, m.OrdersCompleted)
	return m
}
