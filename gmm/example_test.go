package gmm_test

import (
	"fmt"

	"github.com/katalvlaran/clusterkit/gmm"
)

// ExampleFit demonstrates the degenerate-but-exact K=1 case: a single
// component lands on the sample mean of the dataset in one update.
//
// Scenario:
//
//	Six points on a line segment; the fitted mean is their average and
//	the single mixing weight is exactly 1.
//
// Complexity: O(N·D²) per iteration.
func ExampleFit() {
	data := [][]float64{
		{1, 2}, {2, 3}, {3, 4},
		{4, 5}, {5, 6}, {6, 7},
	}

	model, diag, err := gmm.Fit(data, 1, gmm.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("reason=%s\n", diag.Reason)
	fmt.Printf("weight=%.2f mean=(%.2f, %.2f)\n",
		model.Weights[0], model.Means[0][0], model.Means[0][1])
	// Output:
	// reason=converged
	// weight=1.00 mean=(3.50, 4.50)
}

// ExampleMixtureModel_Predict shows soft and hard assignment of a fresh
// point once a mixture has been fitted.
func ExampleMixtureModel_Predict() {
	// Two obvious groups on the x axis.
	data := [][]float64{
		{0.0, 0.1}, {0.2, -0.1}, {-0.1, 0.0}, {0.1, 0.2},
		{9.9, 0.0}, {10.1, 0.1}, {10.0, -0.2}, {9.8, 0.1},
	}

	model, _, err := gmm.Fit(data, 2, gmm.DefaultOptions(gmm.WithSeed(1)))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	comp, posterior, err := model.Predict([]float64{9.7, 0.05})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("component mean x ≈ %.0f\n", model.Means[comp][0])
	fmt.Printf("posterior sums to %.2f\n", posterior[0]+posterior[1])
	// Output:
	// component mean x ≈ 10
	// posterior sums to 1.00
}
