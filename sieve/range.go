package sieve

// Range is a normalized inclusive interval [Lo, Hi] that may contain primes.
// Invariant: 0 ≤ Lo ≤ Hi and Hi ≥ 2.
type Range struct {
	Lo, Hi int64
}

// Normalize validates and normalizes a requested range [a, b].
//
// Rules (in order):
//  1. a > b  → no range (ok == false).
//  2. a < 0  → a is clamped to 0.
//  3. b ≤ 1  → no range: there are no primes ≤ 1.
//
// Normalize is pure and total; it never fails.
func Normalize(a, b int64) (r Range, ok bool) {
	if a > b {
		return Range{}, false
	}
	if a < 0 {
		a = 0
	}
	if b <= 1 {
		return Range{}, false
	}

	return Range{Lo: a, Hi: b}, true
}

// Width returns the number of integers in r. It is unsigned because
// [0, MaxInt64] holds one more integer than int64 can count.
func (r Range) Width() uint64 {
	return uint64(r.Hi-r.Lo) + 1
}

// Contains reports whether n lies in r.
func (r Range) Contains(n int64) bool {
	return n >= r.Lo && n <= r.Hi
}

// empty is the result of every degenerate range: non-nil so callers can
// rely on len(primes) and JSON-encode it as [].
func empty() []int64 {
	return []int64{}
}
