package harness

import (
	"encoding/binary"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/spaolacci/murmur3"

	"github.com/katalvlaran/primerange/sieve"
)

// digest hashes a prime sequence with murmur3, eight little-endian bytes per
// value. Order matters: a permutation yields a different digest.
func digest(primes []int64) uint64 {
	h := murmur3.New64()
	var buf [8]byte
	for _, p := range primes {
		binary.LittleEndian.PutUint64(buf[:], uint64(p))
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}

// verify compares every result with results[0]. Counts and digests decide
// agreement; the sequences are only inspected to describe a mismatch.
func verify(results []Result, seqs [][]int64) *DivergenceError {
	for i := 1; i < len(results); i++ {
		if results[i].Count == results[0].Count && results[i].Digest == results[0].Digest {
			continue
		}
		return diagnose(results[0].Algorithm, results[i].Algorithm, seqs[0], seqs[i])
	}

	return nil
}

// diagnose describes how got differs from ref.
func diagnose(refAlgo, algo sieve.Algorithm, ref, got []int64) *DivergenceError {
	refSet, gotSet := toBitmap(ref), toBitmap(got)

	missing := refSet.Clone()
	missing.AndNot(gotSet)
	extra := gotSet.Clone()
	extra.AndNot(refSet)

	div := &DivergenceError{
		Reference: refAlgo,
		Algorithm: algo,
		Missing:   missing.GetCardinality(),
		Extra:     extra.GetCardinality(),
	}

	switch {
	case div.Missing == 0 && div.Extra == 0:
		// Same set, so the digests differ by order or by repeated values.
		div.OrderOnly = len(ref) == len(got)
		div.First = firstMismatch(ref, got)
	case div.Missing == 0:
		div.First = int64(extra.Minimum())
	case div.Extra == 0:
		div.First = int64(missing.Minimum())
	default:
		div.First = int64(min(missing.Minimum(), extra.Minimum()))
	}

	return div
}

// toBitmap collects a sequence of non-negative values into a roaring64 set.
func toBitmap(seq []int64) *roaring64.Bitmap {
	bm := roaring64.New()
	for _, v := range seq {
		bm.Add(uint64(v))
	}

	return bm
}

// firstMismatch returns the value in got at the first position where the two
// sequences differ, or the first value past the shorter one.
func firstMismatch(ref, got []int64) int64 {
	n := min(len(ref), len(got))
	for i := 0; i < n; i++ {
		if ref[i] != got[i] {
			return got[i]
		}
	}
	switch {
	case len(got) > n:
		return got[n]
	case len(ref) > n:
		return ref[n]
	}

	return 0
}
