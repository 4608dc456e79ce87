package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestNew verifies the registry and instruments are initialized.
func TestNew(t *testing.T) {
	m := New()
	if m == nil {
		t.Fatal("New returned nil")
	}
	if m.registry == nil {
		t.Error("Metrics.registry should be initialized")
	}
}

// TestCounters verifies the counters increment independently.
func TestCounters(t *testing.T) {
	m := New()

	m.Runs.Inc()
	m.TermsEmitted.Add(10)
	m.OverflowEvents.Inc()

	if got := testutil.ToFloat64(m.Runs); got != 1 {
		t.Errorf("fibseq_runs_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.TermsEmitted); got != 10 {
		t.Errorf("fibseq_terms_emitted_total = %v, want 10", got)
	}
	if got := testutil.ToFloat64(m.OverflowEvents); got != 1 {
		t.Errorf("fibseq_overflow_events_total = %v, want 1", got)
	}
}

// TestDump verifies the text exposition output names every instrument
// plus the Go runtime collector.
func TestDump(t *testing.T) {
	m := New()
	m.Runs.Inc()
	m.TermsEmitted.Add(10)
	m.RunDuration.Observe(0.0000128)

	var sb strings.Builder
	if err := m.Dump(&sb); err != nil {
		t.Fatalf("Dump returned error: %v", err)
	}
	body := sb.String()

	for _, want := range []string{
		"fibseq_runs_total 1",
		"fibseq_terms_emitted_total 10",
		"fibseq_overflow_events_total 0",
		"fibseq_run_duration_seconds",
		"go_",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Dump output should contain %q, got:\n%s", want, body)
		}
	}
}

// TestMemoryCollector verifies a snapshot carries live runtime values.
func TestMemoryCollector(t *testing.T) {
	snapshot := NewMemoryCollector().Snapshot()

	if snapshot.HeapAlloc == 0 {
		t.Error("HeapAlloc should be non-zero in a running process")
	}
	if snapshot.Sys == 0 {
		t.Error("Sys should be non-zero in a running process")
	}
}
