package eval

import "errors"

// Sentinel errors returned by the metric functions.
var (
	// ErrEmptyLabels indicates an empty labeling.
	ErrEmptyLabels = errors.New("eval: labels are empty")

	// ErrLengthMismatch indicates predicted and truth labelings of
	// different lengths.
	ErrLengthMismatch = errors.New("eval: labels and truth differ in length")
)

// Purity scores a predicted partition against ground truth: the share
// of points that belong to their cluster's majority truth class.
//
// Contracts: len(labels) == len(truth) > 0. Label values are opaque.
func Purity(labels, truth []int) (float64, error) {
	counts, n, err := contingency(labels, truth)
	if err != nil {
		return 0, err
	}

	var correct int
	for _, classes := range counts {
		best := 0
		for _, c := range classes {
			if c > best {
				best = c
			}
		}
		correct += best
	}

	return float64(correct) / float64(n), nil
}

// Gini scores a predicted partition against ground truth: the
// size-weighted mean Gini impurity 1 − Σ (class share)² per cluster.
// Lower is better; 0 means every cluster holds a single truth class.
//
// Contracts: len(labels) == len(truth) > 0. Label values are opaque.
func Gini(labels, truth []int) (float64, error) {
	counts, n, err := contingency(labels, truth)
	if err != nil {
		return 0, err
	}

	var impurity float64
	for _, classes := range counts {
		size := 0
		for _, c := range classes {
			size += c
		}

		var sq float64
		for _, c := range classes {
			share := float64(c) / float64(size)
			sq += share * share
		}
		impurity += float64(size) / float64(n) * (1 - sq)
	}

	return impurity, nil
}

// contingency builds the cluster → class → count table shared by both
// metrics.
func contingency(labels, truth []int) (map[int]map[int]int, int, error) {
	n := len(labels)
	if n == 0 {
		return nil, 0, ErrEmptyLabels
	}
	if n != len(truth) {
		return nil, 0, ErrLengthMismatch
	}

	counts := make(map[int]map[int]int)
	for i := 0; i < n; i++ {
		classes, ok := counts[labels[i]]
		if !ok {
			classes = make(map[int]int)
			counts[labels[i]] = classes
		}
		classes[truth[i]]++
	}

	return counts, n, nil
}
