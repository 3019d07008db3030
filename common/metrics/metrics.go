// Package metrics exposes prometheus collectors for SDK operations.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Laisky/cloudsdk/common/config"
)

const namespace = "cloudsdk"

// Outcome labels for OperationDuration.
const (
	OutcomeSuccess      = "success"
	OutcomeServiceError = "service_error"
	OutcomeClientError  = "client_error"
)

// Collector groups the SDK collectors. A nil *Collector is valid and records nothing.
type Collector struct {
	OperationDuration *prometheus.HistogramVec
	OperationErrors   *prometheus.CounterVec
	Retries           *prometheus.CounterVec
}

// NewCollector creates the collectors and registers them on reg when reg is non-nil.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		OperationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Latency of SDK operations including retries.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "operation", "outcome"}),
		OperationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_errors_total",
			Help:      "SDK operations that ended with an error, by error code.",
		}, []string{"service", "operation", "code"}),
		Retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_retries_total",
			Help:      "HTTP attempts retried by the SDK.",
		}, []string{"service", "operation"}),
	}
	if reg != nil {
		reg.MustRegister(c.OperationDuration, c.OperationErrors, c.Retries)
	}
	return c
}

var (
	defaultOnce      sync.Once
	defaultCollector *Collector
)

// Default returns the process-wide collector. It is registered on the
// prometheus default registry only when ENABLE_PROMETHEUS_METRICS is true.
func Default() *Collector {
	defaultOnce.Do(func() {
		var reg prometheus.Registerer
		if config.EnablePrometheusMetrics {
			reg = prometheus.DefaultRegisterer
		}
		defaultCollector = NewCollector(reg)
	})
	return defaultCollector
}

// ObserveOperation records one finished operation.
func (c *Collector) ObserveOperation(service, operation, outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.OperationDuration.WithLabelValues(service, operation, outcome).Observe(elapsed.Seconds())
}

// IncError counts a failed operation under its error code.
func (c *Collector) IncError(service, operation, code string) {
	if c == nil {
		return
	}
	c.OperationErrors.WithLabelValues(service, operation, code).Inc()
}

func (c *Collector) IncRetry(service, operation string) {
	if c == nil {
		return
	}
	c.Retries.WithLabelValues(service, operation).Inc()
}
