package sieve

import "github.com/bits-and-blooms/bitset"

// Eratosthenes returns the primes in [a, b] with the classic sieve of
// Eratosthenes over [0, b].
//
// Algorithm:
//  1. Allocate a bit per integer in [0, b]; bits 0 and 1 start marked.
//  2. For each unmarked p with p² ≤ b, mark p², p²+p, p²+2p, … ≤ b.
//     Multiples below p² already carry a smaller prime factor.
//  3. Collect the unmarked integers in [a, b].
//
// Complexity:
//
//   - Time:  O(B log log B)
//   - Space: O(B) bits, independent of a. Use SegmentedEratosthenes when B is
//     large and the range is narrow.
func Eratosthenes(a, b int64) []int64 {
	r, ok := Normalize(a, b)
	if !ok {
		return empty()
	}
	composite := markComposites(r.Hi)

	return appendClear(make([]int64, 0, estimateCount(r)), composite, 0, r.Lo, r.Hi)
}

// markComposites returns a bitset over [0, n] in which exactly 0, 1 and the
// composites ≤ n are set.
func markComposites(n int64) *bitset.BitSet {
	composite := bitset.New(uint(n) + 1)
	composite.Set(0).Set(1)
	for p := int64(2); p <= n/p; p++ {
		if composite.Test(uint(p)) {
			continue
		}
		for m := p * p; m <= n; m += p {
			composite.Set(uint(m))
		}
	}

	return composite
}

// appendClear appends to dst every value v in [lo, hi] whose bit v−offset is
// clear in set, ascending. lo must be ≥ offset.
func appendClear(dst []int64, set *bitset.BitSet, offset, lo, hi int64) []int64 {
	for i, ok := set.NextClear(uint(lo - offset)); ok; i, ok = set.NextClear(i + 1) {
		v := int64(i) + offset
		if v > hi {
			break
		}
		dst = append(dst, v)
	}

	return dst
}

// appendSet is appendClear for set bits.
func appendSet(dst []int64, set *bitset.BitSet, offset, lo, hi int64) []int64 {
	for i, ok := set.NextSet(uint(lo - offset)); ok; i, ok = set.NextSet(i + 1) {
		v := int64(i) + offset
		if v > hi {
			break
		}
		dst = append(dst, v)
	}

	return dst
}
