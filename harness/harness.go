package harness

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/primerange/sieve"
)

// Run enumerates the primes in [a, b] with every configured algorithm and
// verifies that all of them return the reference sequence.
//
// Degenerate ranges are not errors: the report has Empty set, every result
// counts zero primes and Agreed is true.
//
// Errors:
//   - *DivergenceError (matches ErrDivergence) when an algorithm disagrees
//     with the reference; the returned Report is complete and has Agreed false.
//   - sieve.ErrBoundTooLarge when a forwarded sieve.WithMaxBound rejects b.
//   - ctx.Err() when the context is done before all runs have started.
func Run(ctx context.Context, a, b int64, opts ...Option) (Report, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := logger{cfg.Logger}

	rep := Report{A: a, B: b, Host: hostInfo()}
	rng, ok := sieve.Normalize(a, b)
	if ok {
		rep.Range = rng
	}
	rep.Empty = !ok

	results := make([]Result, len(cfg.Algorithms))
	seqs := make([][]int64, len(cfg.Algorithms))
	runOne := func(ctx context.Context, i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		algo := cfg.Algorithms[i]
		start := time.Now()
		primes, err := cfg.primes(a, b, algo, cfg.SieveOptions...)
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("harness: %s: %w", algo, err)
		}
		results[i] = Result{
			Algorithm: algo,
			Count:     len(primes),
			Elapsed:   elapsed,
			Digest:    digest(primes),
		}
		seqs[i] = primes
		log.logRun(ctx, results[i])

		return nil
	}

	var err error
	if cfg.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		for i := range cfg.Algorithms {
			g.Go(func() error { return runOne(gctx, i) })
		}
		err = g.Wait()
	} else {
		for i := range cfg.Algorithms {
			if err = runOne(ctx, i); err != nil {
				break
			}
		}
	}
	if err != nil {
		log.logFailure(ctx, a, b, err)
		return rep, err
	}

	rep.Results = results
	if cfg.KeepPrimes && len(seqs) > 0 {
		rep.Primes = seqs[0]
	}
	if div := verify(results, seqs); div != nil {
		log.logDivergence(ctx, rep, div)
		return rep, div
	}
	rep.Agreed = true
	log.logSummary(ctx, rep)

	return rep, nil
}
