package sieve

// Test bridge: exposes unexported helpers to the sieve_test package only.

// Isqrt exposes isqrt.
func Isqrt(n int64) int64 { return isqrt(n) }

// SegmentSize exposes the resolved segment width for [a, b] under opts.
// Both a and b must already be normalized.
func SegmentSize(a, b int64, opts ...Option) uint64 {
	return segmentSize(Range{Lo: a, Hi: b}, resolveOptions(opts))
}

// SievingPrimes exposes sievingPrimes.
func SievingPrimes(n int64) []int64 { return sievingPrimes(n) }
