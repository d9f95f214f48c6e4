// Package prompush implements a Prometheus Pushgateway backend for the
// metrics package.
//
// This package adapts the generic metrics.Backend interface to Prometheus by:
//
//   - Using client_golang CounterVec and SummaryVec collectors.
//   - Mapping the common fetch labels (job, method, status) onto Prometheus
//     labels, with job doubling as the Pushgateway grouping key.
//   - Pushing collected metrics to a Prometheus Pushgateway instance instead
//     of exposing an HTTP scrape endpoint, since the fetch CLIs are
//     short-lived processes that would never be scraped.
//
// All Prometheus-specific dependencies stay inside this package so the rest
// of the module can swap to alternative backends without changes.
package prompush

import (
	"fmt"

	"eveapi/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Backend is a Prometheus Pushgateway metrics backend.
type Backend struct {
	gatewayURL string // e.g. http://pushgateway:9091
	jobName    string // Pushgateway "job" group
	reg        *prometheus.Registry

	requestCounter  *prometheus.CounterVec // "eveapi_requests_total"
	requestDuration *prometheus.SummaryVec // "eveapi_request_duration_seconds"
	rowCounter      *prometheus.CounterVec // "eveapi_rows_total"
}

// NewBackend constructs a Prometheus Pushgateway backend.
// jobName is the Pushgateway "job" grouping; gatewayURL is the base URL of
// the Pushgateway server.
func NewBackend(jobName, gatewayURL string) (*Backend, error) {
	if gatewayURL == "" {
		return nil, fmt.Errorf("prompush: gateway URL is required")
	}
	if jobName == "" {
		jobName = "eveapi"
	}

	reg := prometheus.NewRegistry()

	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eveapi_requests_total",
			Help: "Total number of API requests, partitioned by method and status.",
		},
		[]string{"method", "status"},
	)
	requestDuration := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "eveapi_request_duration_seconds",
			Help:       "Duration of API requests in seconds, partitioned by method and status.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"method", "status"},
	)
	rowCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eveapi_rows_total",
			Help: "Rowset row counts per kind (converted, stored).",
		},
		[]string{"kind"},
	)

	if err := reg.Register(requestCounter); err != nil {
		return nil, fmt.Errorf("prompush: register request counter: %w", err)
	}
	if err := reg.Register(requestDuration); err != nil {
		return nil, fmt.Errorf("prompush: register request summary: %w", err)
	}
	if err := reg.Register(rowCounter); err != nil {
		return nil, fmt.Errorf("prompush: register row counter: %w", err)
	}

	return &Backend{
		gatewayURL:      gatewayURL,
		jobName:         jobName,
		reg:             reg,
		requestCounter:  requestCounter,
		requestDuration: requestDuration,
		rowCounter:      rowCounter,
	}, nil
}

// IncCounter implements metrics.Backend.
func (b *Backend) IncCounter(name string, delta float64, labels metrics.Labels) {
	switch name {
	case "eveapi_requests_total":
		if b.requestCounter == nil {
			return
		}
		b.requestCounter.WithLabelValues(labels["method"], labels["status"]).Add(delta)

	case "eveapi_rows_total":
		if b.rowCounter == nil {
			return
		}
		b.rowCounter.WithLabelValues(labels["kind"]).Add(delta)

	default:
		// unknown metric name: ignore
	}
}

// ObserveHistogram implements metrics.Backend.
func (b *Backend) ObserveHistogram(name string, value float64, labels metrics.Labels) {
	if name != "eveapi_request_duration_seconds" || b.requestDuration == nil {
		return
	}
	b.requestDuration.WithLabelValues(labels["method"], labels["status"]).Observe(value)
}

// Flush pushes the current registry to the Pushgateway.
func (b *Backend) Flush() error {
	return push.New(b.gatewayURL, b.jobName).
		Gatherer(b.reg).
		Push()
}
