package harness

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/primerange/sieve"
)

// ErrDivergence indicates that two algorithms returned different sequences
// for the same range. The concrete error is a *DivergenceError.
var ErrDivergence = errors.New("harness: algorithms disagree")

// DivergenceError describes how Algorithm's sequence differs from the
// Reference sequence (the first algorithm run).
type DivergenceError struct {
	Reference sieve.Algorithm
	Algorithm sieve.Algorithm
	Missing   uint64 // primes in the reference but not in Algorithm's result
	Extra     uint64 // values in Algorithm's result but not in the reference
	First     int64  // smallest value in the symmetric difference, or the first misplaced value
	OrderOnly bool   // same set, different order
}

func (e *DivergenceError) Error() string {
	if e.OrderOnly {
		return fmt.Sprintf("harness: %s returned the primes of %s out of order (first at %d)",
			e.Algorithm, e.Reference, e.First)
	}

	return fmt.Sprintf("harness: %s disagrees with %s: %d missing, %d extra, first difference at %d",
		e.Algorithm, e.Reference, e.Missing, e.Extra, e.First)
}

// Unwrap lets errors.Is(err, ErrDivergence) match.
func (e *DivergenceError) Unwrap() error { return ErrDivergence }

// Result is one algorithm's run.
type Result struct {
	Algorithm sieve.Algorithm
	Count     int           // number of primes returned
	Elapsed   time.Duration // wall-clock time of the sieve.Primes call
	Digest    uint64        // murmur3 digest of the sequence
}

// Host identifies the machine a Report was produced on.
type Host struct {
	CPU           string
	PhysicalCores int
	LogicalCores  int
}

// Report is the outcome of Run.
type Report struct {
	A, B    int64       // bounds as requested
	Range   sieve.Range // normalized bounds; zero when Empty
	Empty   bool        // the requested range holds no primes by construction
	Results []Result    // in run order; the first is the reference
	Agreed  bool        // every result matches the reference
	Primes  []int64     // reference sequence, only with WithKeepPrimes
	Host    Host
}

// Count returns the reference prime count, or 0 when nothing ran.
func (r Report) Count() int {
	if len(r.Results) == 0 {
		return 0
	}

	return r.Results[0].Count
}

// Fastest returns the result with the smallest elapsed time.
// ok is false when the report holds no results.
func (r Report) Fastest() (res Result, ok bool) {
	for i, cur := range r.Results {
		if i == 0 || cur.Elapsed < res.Elapsed {
			res = cur
		}
	}

	return res, len(r.Results) > 0
}

// Options configures Run.
//
// Algorithms   – algorithms to run, in order; the first is the reference.
// Parallel     – run algorithms concurrently instead of one after another.
// KeepPrimes   – keep the reference sequence in Report.Primes.
// Logger       – structured logger; discards by default.
// SieveOptions – forwarded to every sieve.Primes call.
type Options struct {
	Algorithms   []sieve.Algorithm
	Parallel     bool
	KeepPrimes   bool
	Logger       *slog.Logger
	SieveOptions []sieve.Option

	primes primesFunc
}

// primesFunc matches sieve.Primes.
type primesFunc func(a, b int64, algo sieve.Algorithm, opts ...sieve.Option) ([]int64, error)

// Option represents a functional option for configuring Run.
type Option func(*Options)

// DefaultOptions runs all five algorithms sequentially without logging.
func DefaultOptions() Options {
	return Options{
		Algorithms: sieve.Algorithms(),
		Logger:     slog.New(slog.DiscardHandler),
		primes:     sieve.Primes,
	}
}

// WithAlgorithms selects which algorithms run and in what order.
// Panics on an empty list or an invalid algorithm.
func WithAlgorithms(algos ...sieve.Algorithm) Option {
	if len(algos) == 0 {
		panic("harness: WithAlgorithms()")
	}
	for _, a := range algos {
		if !a.Valid() {
			panic("harness: WithAlgorithms(" + a.String() + ")")
		}
	}
	picked := append([]sieve.Algorithm(nil), algos...)

	return func(o *Options) {
		o.Algorithms = picked
	}
}

// WithParallel runs the algorithms concurrently.
// Elapsed times then include contention for shared cores and caches.
func WithParallel() Option {
	return func(o *Options) {
		o.Parallel = true
	}
}

// WithKeepPrimes stores the reference sequence in Report.Primes.
func WithKeepPrimes() Option {
	return func(o *Options) {
		o.KeepPrimes = true
	}
}

// WithLogger installs a structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("harness: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithSieveOptions forwards options to every sieve.Primes call, e.g.
// sieve.WithSegmentSize or sieve.WithMaxBound.
func WithSieveOptions(opts ...sieve.Option) Option {
	forwarded := append([]sieve.Option(nil), opts...)

	return func(o *Options) {
		o.SieveOptions = append(o.SieveOptions, forwarded...)
	}
}
