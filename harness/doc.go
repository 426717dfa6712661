// Package harness runs the five prime enumeration algorithms of package sieve
// over one range, times them, and verifies that they agree.
//
// What it does:
//
//   - Normalizes the requested range once (sieve.Normalize) and records it.
//   - Runs each selected algorithm through sieve.Primes, recording the prime
//     count, the wall-clock time and a 64-bit murmur3 digest of the sequence.
//   - Compares every result with the first one. On a mismatch it rebuilds both
//     sequences as roaring64 bitmaps to report how many primes are missing or
//     extra and the first value where they differ, then returns a
//     *DivergenceError (errors.Is(err, ErrDivergence) holds).
//   - Renders a comparison table (Report.WriteTable) with the host CPU taken
//     from klauspost/cpuid.
//
// Usage:
//
//	rep, err := harness.Run(ctx, 0, 1_000_000,
//	    harness.WithLogger(slog.Default()),
//	    harness.WithSieveOptions(sieve.WithSegmentSize(1<<16)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = rep.WriteTable(os.Stdout)
//
// Concurrency:
//
//   - Runs are sequential by default so timings do not compete for cores.
//   - WithParallel fans the runs out with errgroup; each algorithm still runs
//     single-threaded on its own call-local buffers.
//   - The context is checked before each run. Algorithms themselves are not
//     interruptible.
//
// Logging:
//
//   - log/slog, discarded unless WithLogger is given. Each run is logged at
//     Debug, the summary at Info, a divergence at Warn.
package harness
