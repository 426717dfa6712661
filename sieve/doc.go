// Package sieve enumerates the primes of an inclusive integer range [A, B]
// with five interchangeable algorithms.
//
// Overview:
//
//   - Every algorithm answers the same question: which integers in [A, B] are prime?
//   - The answer is a strictly ascending []int64. All five algorithms return the
//     identical sequence for identical input; that agreement is the package's
//     primary correctness contract.
//   - Inputs are normalized first (see Normalize): a negative lower bound is
//     clamped to 0, an inverted range or an upper bound ≤ 1 yields no primes.
//     No algorithm returns an error or panics on any pair of int64 bounds.
//
// Algorithms:
//
//   - TrialDivision:          odd-divisor test up to ⌊√p⌋ for each candidate.
//     Time O((B−A)·√B), space O(B−A). The correctness baseline.
//   - Eratosthenes:           classic sieve over [0, B], marking from p².
//     Time O(B log log B), space O(B) bits regardless of A.
//   - SegmentedEratosthenes:  sieves [A, B] in fixed-width segments using the
//     primes ≤ √B as factors. Time O(B log log B), space O(√B + segment).
//     Prefer it when B is large and B−A is narrow.
//   - Atkin:                  quadratic-form toggling followed by square-free
//     filtering. Time O(B), space O(B) bits.
//   - Sundaram:               index-transform sieve over odd numbers only.
//     Time O(B log B), space O(B/2) bits.
//
// Buffers:
//
//   - Working tables are github.com/bits-and-blooms/bitset values allocated per
//     call and dropped on return. Nothing is cached between calls, so every
//     function is safe for concurrent use by independent callers.
//   - The primes below 1000 are a frozen table (see BasePrimes); the segmented
//     sieve answers from it directly when B < 1000 and draws its sieving
//     factors from it whenever √B < 1000.
//
// Dispatch:
//
//	primes, err := sieve.Primes(10, 30, sieve.AlgoSegmented)
//	// primes == []int64{11, 13, 17, 19, 23, 29}
//
//   - Primes routes to one algorithm selected by Algorithm.
//   - ParseAlgorithm maps user-facing names ("atkin", "seg", "3", …) to an Algorithm.
//   - Options tune the segmented sieve (WithSegmentSize, WithSegmentScale) and
//     cap the memory of the O(B) sieves (WithMaxBound).
//
// Error handling (sentinel errors):
//
//   - ErrUnsupportedAlgorithm: the selector is not one of the five algorithms.
//   - ErrBoundTooLarge:        an O(B)-memory algorithm was asked to sieve past
//     Options.MaxBound.
//
// Option constructors panic on meaningless arguments; the algorithms themselves
// never panic.
package sieve
