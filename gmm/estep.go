package gmm

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/clusterkit/linalg"
)

// rowRange is a half-open [lo,hi) slice of dataset rows handled by one
// E-step worker.
type rowRange struct {
	lo, hi int
}

// splitRows partitions n rows into at most `parts` contiguous ranges of
// near-equal size. Never returns an empty range.
func splitRows(n, parts int) []rowRange {
	if parts > n {
		parts = n
	}
	out := make([]rowRange, 0, parts)
	size := n / parts
	rem := n % parts

	lo := 0
	for p := 0; p < parts; p++ {
		hi := lo + size
		if p < rem {
			hi++
		}
		out = append(out, rowRange{lo: lo, hi: hi})
		lo = hi
	}

	return out
}

// factorizeAll factorizes every component covariance of m.
// On failure it reports the offending component index together with an
// ErrNumericalDegeneracy-tagged error.
//
// Complexity: O(K·D³).
func factorizeAll(m *MixtureModel) ([]*linalg.Factor, int, error) {
	factors := make([]*linalg.Factor, m.K)
	for k := 0; k < m.K; k++ {
		f, err := linalg.Factorize(m.Covariances[k])
		if err != nil {
			return nil, k, fmt.Errorf("component %d: %w", k, mapKernelErr(err))
		}
		factors[k] = f
	}

	return factors, -1, nil
}

// estep fills resp with posterior responsibilities — resp[n][k] is the
// probability that point n was generated by component k, each row summing
// to 1 — and returns the total log-likelihood of the data under m.
//
// All arithmetic happens in log space: per row the K joint terms
// log w_k + log N(x | μ_k, Σ_k) are normalized via log-sum-exp, so a point
// far from every component still yields a well-defined row instead of a
// 0/0 division.
//
// The model and factors are read-only; rows of resp are written by exactly
// one goroutine each, making the fan-out race-free by construction.
//
// Complexity: O(N·K·D²) time.
func estep(data [][]float64, m *MixtureModel, factors []*linalg.Factor, resp [][]float64, workers int) (float64, error) {
	n := len(data)

	// Mixing proportions enter once per component, not once per point.
	logW := make([]float64, m.K)
	for k := 0; k < m.K; k++ {
		logW[k] = math.Log(m.Weights[k])
	}

	if workers <= 1 || n < 2 {
		return estepRows(data, m, factors, logW, resp, 0, n)
	}

	// Fan out disjoint row ranges; join before anything reads resp.
	chunks := splitRows(n, workers)
	sums := make([]float64, len(chunks))
	errs := make([]error, len(chunks))

	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for ci := range chunks {
		go func(ci int, c rowRange) {
			defer wg.Done()
			sums[ci], errs[ci] = estepRows(data, m, factors, logW, resp, c.lo, c.hi)
		}(ci, chunks[ci])
	}
	wg.Wait()

	var ll float64
	for ci := range chunks {
		if errs[ci] != nil {
			return 0, errs[ci]
		}
		ll += sums[ci]
	}

	return ll, nil
}

// estepRows is the serial kernel over rows [lo,hi). One scratch vector of
// length K per call; no other allocations in the loop.
func estepRows(data [][]float64, m *MixtureModel, factors []*linalg.Factor, logW []float64, resp [][]float64, lo, hi int) (float64, error) {
	var (
		ll   float64
		logs = make([]float64, m.K)
		lse  float64
		ld   float64
		err  error
	)
	for i := lo; i < hi; i++ {
		for k := 0; k < m.K; k++ {
			ld, err = logDensityFactor(data[i], m.Means[k], factors[k])
			if err != nil {
				return 0, err
			}
			logs[k] = logW[k] + ld
		}

		lse = floats.LogSumExp(logs)
		ll += lse
		for k := 0; k < m.K; k++ {
			resp[i][k] = math.Exp(logs[k] - lse)
		}
	}

	return ll, nil
}

// Responsibilities computes the N×K posterior matrix for data under m —
// the soft assignment consumed by downstream evaluation or reporting.
//
// Errors: the InvalidInput set for malformed data, ErrDimensionMismatch
// when data width differs from m.Dim, ErrNumericalDegeneracy when a
// component covariance cannot be factorized.
//
// Complexity: O(K·D³ + N·K·D²).
func Responsibilities(data [][]float64, m *MixtureModel) ([][]float64, error) {
	if err := validateEvalData(data, m.Dim); err != nil {
		return nil, err
	}

	factors, _, err := factorizeAll(m)
	if err != nil {
		return nil, err
	}

	resp := make([][]float64, len(data))
	for i := range resp {
		resp[i] = make([]float64, m.K)
	}
	if _, err = estep(data, m, factors, resp, 1); err != nil {
		return nil, err
	}

	return resp, nil
}

// validateEvalData checks a dataset used for evaluation (not fitting):
// non-empty, rectangular with width dim, finite. K plays no role here.
func validateEvalData(data [][]float64, dim int) error {
	if len(data) == 0 {
		return ErrEmptyDataset
	}
	for i := range data {
		if len(data[i]) != dim {
			return ErrDimensionMismatch
		}
		for j := range data[i] {
			if math.IsNaN(data[i][j]) || math.IsInf(data[i][j], 0) {
				return ErrNonFiniteData
			}
		}
	}

	return nil
}
