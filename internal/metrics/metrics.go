// Package metrics registers the prometheus collectors for the backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	datasetLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "emissions",
		Name:      "dataset_loads_total",
		Help:      "Dataset load attempts by dataset name and outcome.",
	}, []string{"dataset", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "emissions",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by path and status code.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"path", "status"})
)

// DatasetLoad records one dataset load outcome (ok, error, malformed).
func DatasetLoad(dataset, status string) {
	datasetLoads.WithLabelValues(dataset, status).Inc()
}

// ObserveRequest records one HTTP request latency.
func ObserveRequest(path, status string, seconds float64) {
	httpDuration.WithLabelValues(path, status).Observe(seconds)
}
