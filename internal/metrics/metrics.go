// Package metrics instruments the sequence runs with Prometheus counters.
// The registry is process-private; nothing is exported over HTTP. The
// -stats flag gathers the registry and prints it in text exposition
// format, which keeps the instrumentation inspectable without standing up
// a scrape endpoint for a program that exits in microseconds.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds the application's Prometheus instruments on a private
// registry.
type Metrics struct {
	registry *prometheus.Registry

	// Runs counts completed sequence runs, successful or not.
	Runs prometheus.Counter
	// TermsEmitted counts individual terms written to the output.
	TermsEmitted prometheus.Counter
	// OverflowEvents counts calculations rejected by the strict policy.
	OverflowEvents prometheus.Counter
	// RunDuration observes wall-clock run time in seconds.
	RunDuration prometheus.Histogram
}

// New creates a Metrics instance backed by a fresh private registry,
// including the standard Go runtime collector.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		Runs: factory.NewCounter(prometheus.CounterOpts{
			Name: "fibseq_runs_total",
			Help: "Total number of sequence runs.",
		}),
		TermsEmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "fibseq_terms_emitted_total",
			Help: "Total number of Fibonacci terms written to the output.",
		}),
		OverflowEvents: factory.NewCounter(prometheus.CounterOpts{
			Name: "fibseq_overflow_events_total",
			Help: "Total number of calculations aborted by the strict overflow policy.",
		}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name: "fibseq_run_duration_seconds",
			Help: "Wall-clock duration of sequence runs.",
			// Runs complete in microseconds; the default buckets start at 5ms.
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
	}
}

// Registry exposes the underlying registry, primarily for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Dump gathers the registry and writes it to w in Prometheus text
// exposition format.
func (m *Metrics) Dump(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := enc.Encode(family); err != nil {
			return err
		}
	}
	return nil
}
