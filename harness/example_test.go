// Package harness_test provides runnable examples for Run.
package harness_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/primerange/harness"
	"github.com/katalvlaran/primerange/sieve"
)

// ExampleRun compares all five algorithms on [0, 1000].
func ExampleRun() {
	rep, err := harness.Run(context.Background(), 0, 1000)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, res := range rep.Results {
		fmt.Printf("%-12s %d\n", res.Algorithm, res.Count)
	}
	fmt.Println("agreed:", rep.Agreed)
	// Output:
	// trial        168
	// eratosthenes 168
	// segmented    168
	// atkin        168
	// sundaram     168
	// agreed: true
}

// ExampleRun_parallel fans a subset out concurrently and keeps the sequence.
func ExampleRun_parallel() {
	rep, err := harness.Run(context.Background(), 90, 110,
		harness.WithAlgorithms(sieve.AlgoSegmented, sieve.AlgoAtkin),
		harness.WithParallel(),
		harness.WithKeepPrimes(),
	)
	var div *harness.DivergenceError
	if errors.As(err, &div) {
		fmt.Println("divergence:", div)
		return
	}
	fmt.Println(rep.Primes, rep.Agreed)
	// Output: [97 101 103 107 109] true
}
