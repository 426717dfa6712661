package sieve

import "github.com/bits-and-blooms/bitset"

// Atkin returns the primes in [a, b] with the sieve of Atkin over [0, b].
//
// Algorithm:
//  1. Seed 2 and 3. For every x, y ≥ 1 with x² < b and y² < b, toggle:
//     p = 4x²+y² when p ≤ b and p mod 12 ∈ {1, 5};
//     p = 3x²+y² when p ≤ b and p mod 12 = 7;
//     p = 3x²−y² when x > y, p ≤ b and p mod 12 = 11.
//     A number survives only with an odd count of representations, so the
//     bit is flipped, never set.
//  2. For r ≥ 5 with r² ≤ b still set, clear every multiple of r². This
//     removes the non-square-free survivors.
//  3. Collect the set integers in [a, b].
//
// Complexity:
//
//   - Time:  O(B)
//   - Space: O(B) bits
func Atkin(a, b int64) []int64 {
	r, ok := Normalize(a, b)
	if !ok {
		return empty()
	}
	if r.Hi < 3 {
		return []int64{2}
	}

	n := r.Hi
	prime := bitset.New(uint(n) + 1)
	prime.Set(2).Set(3)

	var p int64
	for x := int64(1); x*x < n; x++ {
		xx := x * x
		for y := int64(1); y*y < n; y++ {
			yy := y * y

			p = 4*xx + yy
			if p <= n && (p%12 == 1 || p%12 == 5) {
				prime.Flip(uint(p))
			}

			p = 3*xx + yy
			if p <= n && p%12 == 7 {
				prime.Flip(uint(p))
			}

			p = 3*xx - yy
			if x > y && p <= n && p%12 == 11 {
				prime.Flip(uint(p))
			}
		}
	}

	for f := int64(5); f <= n/f; f++ {
		if !prime.Test(uint(f)) {
			continue
		}
		sq := f * f
		for m := sq; m <= n; m += sq {
			prime.Clear(uint(m))
		}
	}

	return appendSet(make([]int64, 0, estimateCount(r)), prime, 0, r.Lo, r.Hi)
}
