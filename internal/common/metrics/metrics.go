// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "service_requests_total",
			Help: "Total number of HTTP requests handled per service",
		},
		[]string{"service", "route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "service_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"service", "route"},
	)

	RequestsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "service_requests_active",
			Help: "Number of in-flight requests per service",
		},
		[]string{"service"},
	)

	DownstreamCallsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_downstream_calls_failed_total",
			Help: "Total number of failed relay to provider calls",
		},
		[]string{"service", "error_code"},
	)

	DispatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatcher_dispatches_total",
			Help: "Total number of dispatch cycles by intent and result type",
		},
		[]string{"intent", "result"},
	)
)
