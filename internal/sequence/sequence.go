// Package sequence drives the Fibonacci calculator over a range of
// indices and emits one canonical line per term.
//
// The run is single-threaded and fully synchronous: terms are computed
// and written in increasing index order, and the first failure (write
// error, overflow under the strict policy, or context cancellation)
// aborts the run.
package sequence

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/fibseq/internal/cli"
	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/fib"
	"github.com/agbru/fibseq/internal/logging"
	"github.com/agbru/fibseq/internal/metrics"
)

const tracerName = "github.com/agbru/fibseq/internal/sequence"

// Generator computes and emits the leading terms of the Fibonacci
// sequence using a single Calculator.
type Generator struct {
	calc    *fib.Calculator
	count   uint64
	log     logging.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option configures a Generator during construction.
type Option func(*Generator)

// WithLogger sets the structured logger used for run diagnostics.
func WithLogger(log logging.Logger) Option {
	return func(g *Generator) { g.log = log }
}

// WithMetrics sets the metrics collection the run reports into.
func WithMetrics(m *metrics.Metrics) Option {
	return func(g *Generator) { g.metrics = m }
}

// NewGenerator creates a Generator emitting terms for indices
// [0, count).
func NewGenerator(calc *fib.Calculator, count uint64, opts ...Option) *Generator {
	g := &Generator{
		calc:   calc,
		count:  count,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = logging.NewDefaultLogger()
	}
	if g.metrics == nil {
		g.metrics = metrics.New()
	}
	return g
}

// Terms computes the sequence without emitting it. Used by presentation
// layers (file output, TUI) that render the terms themselves.
func (g *Generator) Terms(ctx context.Context) ([]fib.Term, error) {
	terms := make([]fib.Term, 0, g.count)
	for i := uint64(0); i < g.count; i++ {
		if err := ctx.Err(); err != nil {
			return terms, err
		}
		v, err := g.calc.Calculate(i)
		if err != nil {
			g.noteOverflow(err, i)
			return terms, err
		}
		terms = append(terms, fib.Term{Index: i, Value: v})
	}
	return terms, nil
}

// Run computes the sequence and writes one canonical line per term to w,
// in increasing index order. It returns the emitted terms so callers can
// reuse them (e.g. for file output) without recomputation.
//
// The writer is buffered internally; a failed write or flush is fatal
// and surfaces as an apperrors.WriteError.
func (g *Generator) Run(ctx context.Context, w io.Writer) ([]fib.Term, error) {
	start := time.Now()

	ctx, span := g.tracer.Start(ctx, "sequence.run", trace.WithAttributes(
		attribute.Int64("fibseq.count", int64(g.count)),
		attribute.String("fibseq.policy", g.calc.Policy().String()),
	))
	defer span.End()

	terms, err := g.emit(ctx, w)

	duration := time.Since(start)
	g.metrics.Runs.Inc()
	g.metrics.RunDuration.Observe(duration.Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		g.log.Error("sequence run failed", err,
			logging.Uint64("count", g.count),
			logging.Int("emitted", len(terms)))
		return terms, err
	}

	span.SetAttributes(attribute.Int("fibseq.terms_emitted", len(terms)))
	g.log.Debug("sequence run complete",
		logging.Uint64("count", g.count),
		logging.String("policy", g.calc.Policy().String()),
		logging.Float64("seconds", duration.Seconds()))
	return terms, nil
}

// emit performs the computation/write loop behind Run.
func (g *Generator) emit(ctx context.Context, w io.Writer) ([]fib.Term, error) {
	bw := bufio.NewWriter(w)
	terms := make([]fib.Term, 0, g.count)

	for i := uint64(0); i < g.count; i++ {
		if err := ctx.Err(); err != nil {
			return terms, err
		}

		v, err := g.calc.Calculate(i)
		if err != nil {
			g.noteOverflow(err, i)
			// flush what was already computed before reporting
			if flushErr := bw.Flush(); flushErr != nil {
				return terms, apperrors.NewWriteError("output flush", flushErr)
			}
			return terms, err
		}

		if err := cli.DisplayTerm(bw, i, v); err != nil {
			return terms, apperrors.NewWriteError("term "+strconv.FormatUint(i, 10), err)
		}
		terms = append(terms, fib.Term{Index: i, Value: v})
		g.metrics.TermsEmitted.Inc()
	}

	if err := bw.Flush(); err != nil {
		return terms, apperrors.NewWriteError("output flush", err)
	}
	return terms, nil
}

// noteOverflow records strict-policy overflow in metrics; other errors
// pass through untouched.
func (g *Generator) noteOverflow(err error, i uint64) {
	var overflow *fib.OverflowError
	if errors.As(err, &overflow) {
		g.metrics.OverflowEvents.Inc()
		g.log.Debug("strict policy rejected term", logging.Uint64("index", i))
	}
}
