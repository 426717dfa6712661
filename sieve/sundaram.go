package sieve

import "github.com/bits-and-blooms/bitset"

// Sundaram returns the primes in [a, b] with the sieve of Sundaram.
//
// Index k stands for the odd number 2k+1. With N = ⌊(b−1)/2⌋, so that 2N+1
// is the largest odd number ≤ b, every k = i + j + 2ij ≤ N with 1 ≤ i ≤ j is
// marked; the unmarked k in [1, N] are exactly the odd primes ≤ b.
//
// The marking never produces 2. It is prepended explicitly when a ≤ 2.
//
// Complexity:
//
//   - Time:  O(B log B)
//   - Space: O(B/2) bits
func Sundaram(a, b int64) []int64 {
	r, ok := Normalize(a, b)
	if !ok {
		return empty()
	}

	n := (r.Hi - 1) / 2
	marked := bitset.New(uint(n) + 1)
	for i := int64(1); ; i++ {
		// j = i gives the smallest index for this i; it grows with i.
		k := 2 * i * (i + 1)
		if k > n {
			break
		}
		for step := 2*i + 1; k <= n; k += step {
			marked.Set(uint(k))
		}
	}

	primes := make([]int64, 0, estimateCount(r))
	if r.Lo <= 2 {
		primes = append(primes, 2)
	}

	// 2k+1 ≥ Lo  ⇔  k ≥ ⌊Lo/2⌋; index 0 (the number 1) is never a prime.
	first := max(r.Lo/2, 1)
	for k, ok := marked.NextClear(uint(first)); ok && int64(k) <= n; k, ok = marked.NextClear(k + 1) {
		primes = append(primes, 2*int64(k)+1)
	}

	return primes
}
