package metrics

import (
	"net/http"
	"strconv"
	"time"
	"tripavail/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tripavail"

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeReplayed = "replayed"
	OutcomeFailed   = "failed"
)

type Metrics interface {
	ObserveHTTP(route, method string, status int, elapsed time.Duration)
	ObserveTransition(transition, outcome string)
	ObserveInventoryRejection()
	ObserveExpiredHolds(count int)
	Handler() http.Handler
}

type metricsImpl struct {
	registry    *prometheus.Registry
	requests    *prometheus.CounterVec
	durations   *prometheus.HistogramVec
	transitions *prometheus.CounterVec
	rejections  prometheus.Counter
	expired     prometheus.Counter
}

func New(_ *config.Config) Metrics {
	registry := prometheus.NewRegistry()

	m := &metricsImpl{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests processed.",
		}, []string{"route", "method", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_transitions_total",
			Help:      "Booking state transitions by outcome.",
		}, []string{"transition", "outcome"}),
		rejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inventory_rejections_total",
			Help:      "Holds rejected for lack of inventory.",
		}),
		expired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "holds_expired_total",
			Help:      "Holds released after their TTL passed.",
		}),
	}

	registry.MustRegister(
		m.requests,
		m.durations,
		m.transitions,
		m.rejections,
		m.expired,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *metricsImpl) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.durations.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *metricsImpl) ObserveTransition(transition, outcome string) {
	m.transitions.WithLabelValues(transition, outcome).Inc()
}

func (m *metricsImpl) ObserveInventoryRejection() {
	m.rejections.Inc()
}

func (m *metricsImpl) ObserveExpiredHolds(count int) {
	if count <= 0 {
		return
	}

	m.expired.Add(float64(count))
}

func (m *metricsImpl) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
