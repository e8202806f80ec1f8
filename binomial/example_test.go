package binomial_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/clusterkit/binomial"
)

// ExampleFit separates batches produced by a fair coin from batches
// produced by a heavily loaded one.
func ExampleFit() {
	data := []binomial.Observation{
		{Heads: 5, Flips: 10}, {Heads: 4, Flips: 10}, {Heads: 6, Flips: 10},
		{Heads: 9, Flips: 10}, {Heads: 10, Flips: 10}, {Heads: 9, Flips: 10},
	}

	m, err := binomial.Fit(data, 2, binomial.DefaultOptions(binomial.WithSeed(1)))
	if err != nil {
		fmt.Println("fit failed:", err)

		return
	}

	biases := append([]float64(nil), m.Biases...)
	sort.Float64s(biases)
	fmt.Printf("converged=%v\n", m.Converged)
	fmt.Printf("biases ≈ %.1f and %.1f\n", biases[0], biases[1])
	// Output:
	// converged=true
	// biases ≈ 0.5 and 0.9
}
