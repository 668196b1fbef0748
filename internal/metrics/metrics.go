// Package metrics records job counts and durations in a private Prometheus
// registry and can dump them in the node-exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "verikit"

// Outcome labels.
const (
	OutcomeOK            = "ok"
	OutcomeNegativeCycle = "negative_cycle"
	OutcomeError         = "error"
)

// durationBuckets spans microsecond tree checks to multi-second V³ solves.
var durationBuckets = prometheus.ExponentialBuckets(1e-6, 4, 12)

// Recorder owns a registry and the job instruments. Safe for concurrent use.
type Recorder struct {
	registry *prometheus.Registry
	jobs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates a Recorder with its own registry, so repeated construction
// (tests, multiple runs) never collides on collector registration.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		jobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_total",
			Help:      "Jobs executed, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "job_duration_seconds",
			Help:      "Wall time spent inside the algorithm, by kind.",
			Buckets:   durationBuckets,
		}, []string{"kind"}),
	}
	r.registry.MustRegister(r.jobs, r.duration)

	return r
}

// Observe records one finished job.
func (r *Recorder) Observe(kind, outcome string, d time.Duration) {
	r.jobs.WithLabelValues(kind, outcome).Inc()
	r.duration.WithLabelValues(kind).Observe(d.Seconds())
}

// Registry exposes the underlying registry (for gathering in tests or
// serving elsewhere).
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteFile writes all metrics to path atomically in text exposition format.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
