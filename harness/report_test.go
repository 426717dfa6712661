package harness_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primerange/harness"
	"github.com/katalvlaran/primerange/sieve"
)

// TestWriteTable renders one row per algorithm with grouped counts.
func TestWriteTable(t *testing.T) {
	rep := harness.Report{
		A: 0, B: 100_000,
		Range: sieve.Range{Lo: 2, Hi: 100_000},
		Results: []harness.Result{
			{Algorithm: sieve.AlgoEratosthenes, Count: 9592, Elapsed: 1500 * time.Microsecond},
			{Algorithm: sieve.AlgoSegmented, Count: 9592, Elapsed: 2 * time.Millisecond},
		},
		Agreed: true,
		Host:   harness.Host{CPU: "Test CPU", PhysicalCores: 4, LogicalCores: 8},
	}

	var buf bytes.Buffer
	require.NoError(t, rep.WriteTable(&buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)

	assert.Equal(t, "Range [2, 100,000] on Test CPU (4 cores, 8 threads)", lines[0])
	assert.Equal(t, []string{"SL", "METHOD", "PRIMES", "TIME", "(S)"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"1", "eratosthenes", "9,592", "0.001500"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"2", "segmented", "9,592", "0.002000"}, strings.Fields(lines[3]))
	assert.Equal(t, "agreed: yes", lines[4])
}

// TestWriteTable_FromRun renders a live report, including an empty one.
func TestWriteTable_FromRun(t *testing.T) {
	rep, err := harness.Run(context.Background(), 1000, 500)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteTable(&buf))
	assert.Contains(t, buf.String(), "Range [1,000, 500] holds no primes")
	for _, algo := range sieve.Algorithms() {
		assert.Contains(t, buf.String(), algo.String())
	}
}
