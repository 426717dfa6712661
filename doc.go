// Package primerange enumerates the prime numbers inside a closed integer
// range [A, B] with five interchangeable algorithms, and checks them against
// each other.
//
// 🚀 What is primerange?
//
//	A small algorithms library that brings together:
//		• Trial division by odd divisors up to √p
//		• Sieve of Eratosthenes over [0, B]
//		• Segmented Sieve of Eratosthenes with O(√B + segment) working memory
//		• Sieve of Atkin
//		• Sieve of Sundaram
//		• A benchmark harness that times all five and proves they agree
//
// ✨ Why choose primerange?
//
//   - Total functions – inverted ranges and bounds ≤ 1 give an empty result, never an error
//   - One contract – every algorithm returns the same strictly increasing sequence
//   - Bounded memory – the segmented sieve handles narrow windows far from zero
//   - Verified – the harness digests every result and pinpoints the first divergence
//
// Under the hood, everything is organized under two subpackages:
//
//	sieve/    — range normalization, the five algorithms, Primes/Count dispatcher
//	harness/  — timed comparison runs, divergence diagnosis, report tables
//	examples/ — a runnable walkthrough of both packages
//
// Quick example:
//
//	primes, _ := sieve.Primes(10, 30, sieve.AlgoSegmented)
//	// [11 13 17 19 23 29]
//
//	go get github.com/katalvlaran/primerange
package primerange
