package prometheus

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Sink is a port.Metrics backed by prometheus collectors
type Sink struct {
	counters *prometheus.CounterVec
	timings  *prometheus.HistogramVec
	gatherer prometheus.Gatherer
}

// NewSink registers the sink collectors on registry
func NewSink(registry *prometheus.Registry, namespace string) (*Sink, error) {
	counters := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Number of occurrences of a named event.",
		},
		[]string{"name"},
	)
	timings := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "timing_seconds",
			Help:      "Duration of a named operation in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"name"},
	)

	if err := registry.Register(counters); err != nil {
		return nil, fmt.Errorf("failed to register counters: %w", err)
	}
	if err := registry.Register(timings); err != nil {
		return nil, fmt.Errorf("failed to register timings: %w", err)
	}

	return &Sink{counters: counters, timings: timings, gatherer: registry}, nil
}

// Count increments the counter of name
func (s *Sink) Count(name string) {
	s.counters.WithLabelValues(name).Inc()
}

// Timing records one sample of d for name
func (s *Sink) Timing(name string, d time.Duration) {
	s.timings.WithLabelValues(name).Observe(d.Seconds())
}

// Handler exposes the registry in the prometheus text format
func (s *Sink) Handler() http.Handler {
	return promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})
}
