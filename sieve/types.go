package sieve

import (
	"errors"
	"math"
	"strconv"
)

// Sentinel errors returned by the dispatcher.
var (
	// ErrUnsupportedAlgorithm indicates a selector outside the five known algorithms.
	ErrUnsupportedAlgorithm = errors.New("sieve: unsupported algorithm")

	// ErrBoundTooLarge indicates that an O(B)-memory algorithm was asked to sieve
	// past the configured Options.MaxBound.
	ErrBoundTooLarge = errors.New("sieve: upper bound exceeds MaxBound")
)

// Algorithm selects one of the five prime enumeration strategies.
type Algorithm int

const (
	// AlgoTrial tests each candidate by odd trial division.
	AlgoTrial Algorithm = iota

	// AlgoEratosthenes runs the classic sieve over [0, B].
	AlgoEratosthenes

	// AlgoSegmented runs the sieve of Eratosthenes segment by segment over [A, B].
	AlgoSegmented

	// AlgoAtkin runs the sieve of Atkin over [0, B].
	AlgoAtkin

	// AlgoSundaram runs the sieve of Sundaram over the odd numbers ≤ B.
	AlgoSundaram
)

// algorithmNames holds the canonical name of each Algorithm, indexed by value.
var algorithmNames = [...]string{
	AlgoTrial:        "trial",
	AlgoEratosthenes: "eratosthenes",
	AlgoSegmented:    "segmented",
	AlgoAtkin:        "atkin",
	AlgoSundaram:     "sundaram",
}

// String returns the canonical lowercase name, or "Algorithm(n)" for unknown values.
func (a Algorithm) String() string {
	if a.Valid() {
		return algorithmNames[a]
	}

	return "Algorithm(" + strconv.Itoa(int(a)) + ")"
}

// Valid reports whether a names one of the five algorithms.
func (a Algorithm) Valid() bool {
	return a >= AlgoTrial && a <= AlgoSundaram
}

// Algorithms returns all five algorithms in declaration order.
// The slice is freshly allocated; callers may modify it.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoTrial, AlgoEratosthenes, AlgoSegmented, AlgoAtkin, AlgoSundaram}
}

// Default tuning knobs for the segmented sieve.
const (
	// DefaultSegmentScale scales √(B−A) into the number of segments.
	DefaultSegmentScale = 0.2

	// BaseLimit is the exclusive upper bound of the frozen base table.
	BaseLimit = 1000
)

// Options configures the dispatcher and the segmented sieve.
//
// SegmentSize  – fixed segment width in integers; 0 derives it from SegmentScale.
// SegmentScale – scale factor applied to √(B−A); must be > 0. Default 0.2.
// MaxBound     – largest B the O(B)-memory algorithms may sieve; 0 means unlimited.
//
//	Trial division and the segmented sieve ignore it.
type Options struct {
	SegmentSize  int
	SegmentScale float64
	MaxBound     int64
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// DefaultOptions returns Options with derived segment sizing and no memory cap.
func DefaultOptions() Options {
	return Options{
		SegmentSize:  0,
		SegmentScale: DefaultSegmentScale,
		MaxBound:     0,
	}
}

// WithSegmentSize fixes the segmented sieve's segment width.
// Panics if n < 1: a zero-width segment can never make progress.
func WithSegmentSize(n int) Option {
	if n < 1 {
		panic("sieve: WithSegmentSize(n<1)")
	}
	return func(o *Options) {
		o.SegmentSize = n
	}
}

// WithSegmentScale sets the factor that turns √(B−A) into a segment count.
// Larger values mean more, narrower segments. Panics unless f is finite and > 0.
func WithSegmentScale(f float64) Option {
	if !(f > 0) || math.IsInf(f, 1) {
		panic("sieve: WithSegmentScale(f<=0 or non-finite)")
	}
	return func(o *Options) {
		o.SegmentScale = f
	}
}

// WithMaxBound caps the upper bound that Eratosthenes, Atkin and Sundaram
// may allocate for. Panics if b < 2.
func WithMaxBound(b int64) Option {
	if b < 2 {
		panic("sieve: WithMaxBound(b<2)")
	}
	return func(o *Options) {
		o.MaxBound = b
	}
}

// resolveOptions applies opts in order over DefaultOptions.
func resolveOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
