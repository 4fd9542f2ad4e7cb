package mocks

import (
	"net/http"
	"time"
	"tripavail/infras/metrics"
)

type metricsImpl struct {
}

// ObserveHTTP implements metrics.Metrics.
func (m *metricsImpl) ObserveHTTP(_, _ string, _ int, _ time.Duration) {

}

// ObserveTransition implements metrics.Metrics.
func (m *metricsImpl) ObserveTransition(_, _ string) {

}

// ObserveInventoryRejection implements metrics.Metrics.
func (m *metricsImpl) ObserveInventoryRejection() {

}

// ObserveExpiredHolds implements metrics.Metrics.
func (m *metricsImpl) ObserveExpiredHolds(_ int) {

}

// Handler implements metrics.Metrics.
func (m *metricsImpl) Handler() http.Handler {
	return http.NotFoundHandler()
}

func NewMetrics() metrics.Metrics {
	return &metricsImpl{}
}
