package harness

import "github.com/katalvlaran/primerange/sieve"

// Test bridge: exposes unexported helpers to the harness_test package only.

// Digest exposes digest.
func Digest(primes []int64) uint64 { return digest(primes) }

// Diagnose exposes diagnose.
func Diagnose(refAlgo, algo sieve.Algorithm, ref, got []int64) *DivergenceError {
	return diagnose(refAlgo, algo, ref, got)
}

// Verify exposes verify.
func Verify(results []Result, seqs [][]int64) *DivergenceError { return verify(results, seqs) }

// WithPrimesFunc replaces sieve.Primes for every run.
func WithPrimesFunc(f func(a, b int64, algo sieve.Algorithm, opts ...sieve.Option) ([]int64, error)) Option {
	return func(o *Options) {
		o.primes = f
	}
}
