package sieve_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/primerange/sieve"
)

// benchmarkPrimes runs algo over [a, b] b.N times through the dispatcher.
func benchmarkPrimes(b *testing.B, lo, hi int64, algo sieve.Algorithm, opts ...sieve.Option) {
	b.ReportAllocs()
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := sieve.Primes(lo, hi, algo, opts...); err != nil {
			b.Fatalf("%s failed: %v", algo, err)
		}
	}
}

// BenchmarkPrimes_FromZero compares all five algorithms on [0, B].
func BenchmarkPrimes_FromZero(b *testing.B) {
	for _, hi := range []int64{10_000, 1_000_000} {
		for _, algo := range sieve.Algorithms() {
			if algo == sieve.AlgoTrial && hi > 100_000 {
				continue // minutes per op
			}
			b.Run(algo.String()+"/B="+strconv.FormatInt(hi, 10), func(b *testing.B) {
				benchmarkPrimes(b, 0, hi, algo)
			})
		}
	}
}

// BenchmarkPrimes_HighNarrow is the case segmentation exists for: a narrow
// window far from zero.
func BenchmarkPrimes_HighNarrow(b *testing.B) {
	const lo, hi = 100_000_000, 100_100_000
	b.Run("segmented", func(b *testing.B) { benchmarkPrimes(b, lo, hi, sieve.AlgoSegmented) })
	b.Run("eratosthenes", func(b *testing.B) { benchmarkPrimes(b, lo, hi, sieve.AlgoEratosthenes) })
}

// BenchmarkSegmented_Widths shows the effect of the segment width.
func BenchmarkSegmented_Widths(b *testing.B) {
	for _, size := range []int{256, 4096, 65536} {
		b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
			benchmarkPrimes(b, 0, 2_000_000, sieve.AlgoSegmented, sieve.WithSegmentSize(size))
		})
	}
}
