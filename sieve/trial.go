package sieve

import "math"

// TrialDivision returns the primes in [a, b] by testing each candidate
// against every odd divisor up to its integer square root.
//
// It allocates nothing but the result, so it is the only algorithm here whose
// memory does not grow with b; it is also the slowest, and serves as the
// correctness baseline for the sieves.
//
// Complexity:
//
//   - Time:  O((B−A)·√B)
//   - Space: O(π(B) − π(A)) for the result
func TrialDivision(a, b int64) []int64 {
	r, ok := Normalize(a, b)
	if !ok {
		return empty()
	}
	if r.Hi == 2 {
		return []int64{2}
	}

	primes := make([]int64, 0, estimateCount(r))
	for p := r.Lo; ; p++ {
		if IsPrime(p) {
			primes = append(primes, p)
		}
		// Compare before incrementing so Hi == MaxInt64 cannot wrap.
		if p == r.Hi {
			break
		}
	}

	return primes
}

// IsPrime reports whether n is prime by odd trial division.
// Negative numbers, 0 and 1 are not prime.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n&1 == 0 {
		return n == 2
	}
	limit := isqrt(n)
	for d := int64(3); d <= limit; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// isqrt returns ⌊√n⌋ for n ≥ 0, exact for the whole int64 domain.
// The float estimate is corrected in both directions; the comparisons are
// phrased as divisions so that (r+1)² never overflows.
func isqrt(n int64) int64 {
	if n < 2 {
		return n
	}
	r := int64(math.Sqrt(float64(n)))
	for r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}

	return r
}

// maxPrealloc caps the capacity reserved up front for a result slice.
const maxPrealloc = 1 << 20

// estimateCount guesses π(Hi) − π(Lo) from the prime number theorem so the
// result slice rarely regrows. The guess is clamped to the range width and
// to maxPrealloc.
func estimateCount(r Range) int {
	est := piEstimate(r.Hi) - piEstimate(r.Lo)
	if w := r.Width(); uint64(est) > w {
		est = int64(w)
	}
	if est > maxPrealloc {
		est = maxPrealloc
	}
	if est < 1 {
		est = 1
	}

	return int(est)
}

// piEstimate approximates π(n) as n / (ln n − 1) with a little headroom.
func piEstimate(n int64) int64 {
	if n < 17 {
		return 7
	}
	f := float64(n)

	return int64(1.1*f/(math.Log(f)-1)) + 1
}
