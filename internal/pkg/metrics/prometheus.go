package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "belajarhosting",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "belajarhosting",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "belajarhosting",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	// Order metrics
	ordersCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "belajarhosting",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of deploy orders created",
		},
		[]string{"service_type", "billing_cycle"},
	)

	ordersFulfilledTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "belajarhosting",
			Subsystem: "orders",
			Name:      "fulfilled_total",
			Help:      "Total number of deploy orders fulfilled by admins",
		},
		[]string{"service_type"},
	)

	instancesSuspendedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "belajarhosting",
			Subsystem: "billing",
			Name:      "instances_suspended_total",
			Help:      "Instances suspended by the renewal scanner",
		},
	)

	topupAmountTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "belajarhosting",
			Subsystem: "credits",
			Name:      "topup_amount_idr_total",
			Help:      "Total top-up amount in IDR by final status",
		},
		[]string{"status"},
	)
)

// OrderCreated records a created deploy order
func OrderCreated(serviceType, billingCycle string) {
	ordersCreatedTotal.WithLabelValues(serviceType, billingCycle).Inc()
}

// OrderFulfilled records an admin fulfillment
func OrderFulfilled(serviceType string) {
	ordersFulfilledTotal.WithLabelValues(serviceType).Inc()
}

// InstanceSuspended records a renewal-scanner suspension
func InstanceSuspended() {
	instancesSuspendedTotal.Inc()
}

// TopupRecorded records a settled or rejected top-up amount
func TopupRecorded(status string, amountIDR int64) {
	topupAmountTotal.WithLabelValues(status).Add(float64(amountIDR))
}

// Handler returns the prometheus metrics handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware instruments HTTP requests with count, duration and in-flight gauges
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		// Use the route pattern, not the raw path, to bound cardinality
		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}

		status := strconv.Itoa(ww.status)
		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
