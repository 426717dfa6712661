package sieve

import (
	"math"

	"github.com/bits-and-blooms/bitset"
)

// maxDerivedSegment caps a segment width derived from SegmentScale, keeping
// each segment's bitset at 2 MiB for very wide ranges. An explicit
// WithSegmentSize is honored as given.
const maxDerivedSegment = 1 << 24

// SegmentedEratosthenes returns the primes in [a, b] by sieving the range in
// fixed-width segments. Its output is identical to Eratosthenes(a, b) for
// every segment width.
//
// Algorithm:
//  1. b < BaseLimit: answer from the frozen base table.
//  2. Bootstrap the sieving factors, the primes ≤ ⌊√b⌋, once: from the base
//     table when ⌊√b⌋ < BaseLimit, otherwise by one plain Eratosthenes pass.
//  3. Walk [a, b] segment by segment (the last one shrunk to end at b). In
//     each segment mark, for every factor c with c² ≤ segment end, the
//     multiples of c from max(c², first multiple ≥ segment start), then
//     collect the unmarked positions.
//
// The walk is iterative; nothing recurses.
//
// Options: WithSegmentSize fixes the width; otherwise it is derived from
// WithSegmentScale (see segmentSize).
//
// Complexity:
//
//   - Time:  O(B log log B) in total marking work
//   - Space: O(√B) for the factors plus one segment of bits
func SegmentedEratosthenes(a, b int64, opts ...Option) []int64 {
	r, ok := Normalize(a, b)
	if !ok {
		return empty()
	}
	if r.Hi < BaseLimit {
		return fromBase(r.Lo, r.Hi)
	}
	cfg := resolveOptions(opts)

	return segmented(r, sievingPrimes(isqrt(r.Hi)), segmentSize(r, cfg))
}

// segmented sieves r in segments of size integers using factors, which must
// hold every prime ≤ ⌊√r.Hi⌋ in ascending order.
func segmented(r Range, factors []int64, size uint64) []int64 {
	primes := make([]int64, 0, estimateCount(r))
	lo := r.Lo
	for {
		hi := r.Hi
		if uint64(hi-lo) >= size {
			hi = lo + int64(size) - 1
		}
		primes = sieveSegment(primes, lo, hi, factors)
		if hi == r.Hi {
			break
		}
		lo = hi + 1
	}

	return primes
}

// sieveSegment marks [lo, hi] with factors and appends the survivors to dst.
// Offsets are unsigned so that a segment ending at MaxInt64 cannot overflow.
func sieveSegment(dst []int64, lo, hi int64, factors []int64) []int64 {
	span := uint(hi - lo)
	composite := bitset.New(span + 1)
	for v := lo; v <= 1 && v <= hi; v++ {
		composite.Set(uint(v - lo))
	}

	for _, c := range factors {
		if c > hi/c {
			break
		}
		start := lo
		if rem := lo % c; rem != 0 {
			if c-rem > hi-lo {
				continue // no multiple of c in this segment
			}
			start = lo + (c - rem)
		}
		if sq := c * c; start < sq {
			start = sq
		}
		for off := uint(start - lo); off <= span; off += uint(c) {
			composite.Set(off)
		}
	}

	return appendClear(dst, composite, lo, lo, hi)
}

// sievingPrimes returns every prime ≤ n.
func sievingPrimes(n int64) []int64 {
	if n < BaseLimit {
		return fromBase(2, n)
	}
	r := Range{Lo: 2, Hi: n}

	return appendClear(make([]int64, 0, estimateCount(r)), markComposites(n), 0, 2, n)
}

// segmentSize resolves the segment width for r.
//
// With an explicit SegmentSize that value is used. Otherwise the range is
// split into delta = ⌈√width · SegmentScale⌉ segments of width/delta + 1
// integers, capped at maxDerivedSegment. The result is always in [1, width].
func segmentSize(r Range, cfg Options) uint64 {
	width := r.Width()

	var size uint64
	if cfg.SegmentSize > 0 {
		size = uint64(cfg.SegmentSize)
	} else {
		delta := math.Ceil(math.Sqrt(float64(width)) * cfg.SegmentScale)
		if !(delta >= 1) {
			delta = 1
		}
		// More segments than integers all give size 1; keep delta below 2⁶⁴.
		delta = min(delta, float64(width)+1)
		size = width/uint64(delta) + 1
		if size > maxDerivedSegment {
			size = maxDerivedSegment
		}
	}

	if size < 1 {
		size = 1
	}
	if size > width {
		size = width
	}

	return size
}
