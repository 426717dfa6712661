package harness

import (
	"context"
	"log/slog"
)

// logger wraps slog.Logger with the harness's record shapes so that field
// names stay consistent across runs.
type logger struct {
	*slog.Logger
}

// logRun records a single algorithm run.
func (l logger) logRun(ctx context.Context, res Result) {
	l.DebugContext(ctx, "algorithm finished",
		"algorithm", res.Algorithm.String(),
		"count", res.Count,
		"elapsed", res.Elapsed,
	)
}

// logSummary records the outcome of a whole Run.
func (l logger) logSummary(ctx context.Context, rep Report) {
	if rep.Empty {
		l.InfoContext(ctx, "empty range",
			"a", rep.A,
			"b", rep.B,
		)
		return
	}
	fastest, _ := rep.Fastest()
	l.InfoContext(ctx, "benchmark completed",
		"lo", rep.Range.Lo,
		"hi", rep.Range.Hi,
		"algorithms", len(rep.Results),
		"count", rep.Count(),
		"fastest", fastest.Algorithm.String(),
		"fastest_elapsed", fastest.Elapsed,
	)
}

// logDivergence records a disagreement between two algorithms.
func (l logger) logDivergence(ctx context.Context, rep Report, div *DivergenceError) {
	l.WarnContext(ctx, "algorithms disagree",
		"lo", rep.Range.Lo,
		"hi", rep.Range.Hi,
		"reference", div.Reference.String(),
		"algorithm", div.Algorithm.String(),
		"missing", div.Missing,
		"extra", div.Extra,
		"first", div.First,
		"order_only", div.OrderOnly,
	)
}

// logFailure records a run aborted by an error other than a divergence.
func (l logger) logFailure(ctx context.Context, a, b int64, err error) {
	l.ErrorContext(ctx, "benchmark failed",
		"a", a,
		"b", b,
		"error", err,
	)
}
