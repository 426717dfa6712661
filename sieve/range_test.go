package sieve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/primerange/sieve"
)

// TestNormalize covers every rule of the range guard in order.
func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int64
		want   sieve.Range
		wantOK bool
	}{
		{"inverted", 10, 5, sieve.Range{}, false},
		{"inverted negative", -1, -5, sieve.Range{}, false},
		{"upper one", 0, 1, sieve.Range{}, false},
		{"upper zero", 0, 0, sieve.Range{}, false},
		{"negative upper", -10, -2, sieve.Range{}, false},
		{"clamp negative lower", -5, 10, sieve.Range{Lo: 0, Hi: 10}, true},
		{"upper two", 0, 2, sieve.Range{Lo: 0, Hi: 2}, true},
		{"single point", 2, 2, sieve.Range{Lo: 2, Hi: 2}, true},
		{"ordinary", 10, 30, sieve.Range{Lo: 10, Hi: 30}, true},
		{"full domain", math.MinInt64, math.MaxInt64, sieve.Range{Lo: 0, Hi: math.MaxInt64}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := sieve.Normalize(tc.a, tc.b)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestRange_WidthAndContains checks the helpers, including the width of the
// full non-negative int64 domain, which does not fit in int64.
func TestRange_WidthAndContains(t *testing.T) {
	r := sieve.Range{Lo: 10, Hi: 30}
	assert.Equal(t, uint64(21), r.Width())
	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(30))
	assert.False(t, r.Contains(9))
	assert.False(t, r.Contains(31))

	full := sieve.Range{Lo: 0, Hi: math.MaxInt64}
	assert.Equal(t, uint64(math.MaxInt64)+1, full.Width())
}
