// Package sieve - unified dispatcher over the five algorithms.
//
// Primes is the single entry point a caller needs: it validates the selector,
// normalizes the range, applies the memory cap to the normalized upper bound
// and routes to the algorithm.
package sieve

import (
	"fmt"
	"strings"
)

// Primes returns the ascending primes in [a, b] computed by algo.
//
// Contracts:
//   - A degenerate range (a > b, or b ≤ 1) yields an empty slice and nil error.
//   - A negative a is treated as 0.
//   - Every valid algo returns the same sequence for the same (a, b).
//
// Errors:
//   - ErrUnsupportedAlgorithm if algo is not one of the five algorithms.
//   - ErrBoundTooLarge if Options.MaxBound is set, algo allocates O(B)
//     (Eratosthenes, Atkin, Sundaram) and b exceeds it. A degenerate range
//     is never capped.
func Primes(a, b int64, algo Algorithm, opts ...Option) ([]int64, error) {
	if !algo.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algo)
	}
	r, ok := Normalize(a, b)
	if !ok {
		return empty(), nil
	}
	cfg := resolveOptions(opts)

	if cfg.MaxBound > 0 && r.Hi > cfg.MaxBound && allocatesBound(algo) {
		return nil, fmt.Errorf("%w: %s over b=%d (max %d)", ErrBoundTooLarge, algo, r.Hi, cfg.MaxBound)
	}

	switch algo {
	case AlgoTrial:
		return TrialDivision(a, b), nil
	case AlgoEratosthenes:
		return Eratosthenes(a, b), nil
	case AlgoSegmented:
		return SegmentedEratosthenes(a, b, opts...), nil
	case AlgoAtkin:
		return Atkin(a, b), nil
	default: // AlgoSundaram
		return Sundaram(a, b), nil
	}
}

// Count returns the number of primes in [a, b] computed by algo.
// Errors are those of Primes.
func Count(a, b int64, algo Algorithm, opts ...Option) (int, error) {
	primes, err := Primes(a, b, algo, opts...)
	if err != nil {
		return 0, err
	}

	return len(primes), nil
}

// allocatesBound reports whether algo's working memory grows with b itself
// rather than with the range width.
func allocatesBound(algo Algorithm) bool {
	switch algo {
	case AlgoEratosthenes, AlgoAtkin, AlgoSundaram:
		return true
	default:
		return false
	}
}

// algorithmAliases maps accepted spellings to algorithms. The digits follow
// the numbering of the interactive menu the engine was first written for.
var algorithmAliases = map[string]Algorithm{
	"trial":                  AlgoTrial,
	"trial-division":         AlgoTrial,
	"naive":                  AlgoTrial,
	"1":                      AlgoTrial,
	"eratosthenes":           AlgoEratosthenes,
	"sieve":                  AlgoEratosthenes,
	"2":                      AlgoEratosthenes,
	"segmented":              AlgoSegmented,
	"segmented-eratosthenes": AlgoSegmented,
	"seg":                    AlgoSegmented,
	"3":                      AlgoSegmented,
	"atkin":                  AlgoAtkin,
	"4":                      AlgoAtkin,
	"sundaram":               AlgoSundaram,
	"5":                      AlgoSundaram,
}

// ParseAlgorithm maps a user-facing selector to an Algorithm.
// Matching ignores case and surrounding space. Unknown selectors, including
// "all" (which callers route to the benchmark harness), return
// ErrUnsupportedAlgorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	if algo, ok := algorithmAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return algo, nil
	}

	return Algorithm(-1), fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
}
