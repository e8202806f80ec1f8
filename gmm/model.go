package gmm

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// LogLikelihood returns Σ_n log p(x_n) of data under the model — the same
// objective the EM driver tracks for convergence.
//
// Errors: ErrEmptyDataset, ErrDimensionMismatch, ErrNonFiniteData,
// ErrNumericalDegeneracy.
//
// Complexity: O(K·D³ + N·K·D²).
func (m *MixtureModel) LogLikelihood(data [][]float64) (float64, error) {
	if err := validateEvalData(data, m.Dim); err != nil {
		return 0, err
	}

	factors, _, err := factorizeAll(m)
	if err != nil {
		return 0, err
	}

	var (
		ll   float64
		logs = make([]float64, m.K)
		logW = make([]float64, m.K)
		ld   float64
	)
	for k := 0; k < m.K; k++ {
		logW[k] = math.Log(m.Weights[k])
	}
	for i := range data {
		for k := 0; k < m.K; k++ {
			ld, err = logDensityFactor(data[i], m.Means[k], factors[k])
			if err != nil {
				return 0, err
			}
			logs[k] = logW[k] + ld
		}
		ll += floats.LogSumExp(logs)
	}

	return ll, nil
}

// Predict returns the most probable component for x together with the full
// posterior vector (which sums to 1). This is the hard-assignment bridge to
// downstream consumers such as evaluation metrics.
//
// Errors: ErrDimensionMismatch, ErrNonFiniteData, ErrNumericalDegeneracy.
//
// Complexity: O(K·D³ + K·D²).
func (m *MixtureModel) Predict(x []float64) (int, []float64, error) {
	if len(x) != m.Dim {
		return 0, nil, ErrDimensionMismatch
	}
	for j := range x {
		if math.IsNaN(x[j]) || math.IsInf(x[j], 0) {
			return 0, nil, ErrNonFiniteData
		}
	}

	factors, _, err := factorizeAll(m)
	if err != nil {
		return 0, nil, err
	}

	var (
		logs = make([]float64, m.K)
		ld   float64
	)
	for k := 0; k < m.K; k++ {
		ld, err = logDensityFactor(x, m.Means[k], factors[k])
		if err != nil {
			return 0, nil, err
		}
		logs[k] = math.Log(m.Weights[k]) + ld
	}

	lse := floats.LogSumExp(logs)
	posterior := make([]float64, m.K)
	best := 0
	for k := 0; k < m.K; k++ {
		posterior[k] = math.Exp(logs[k] - lse)
		if posterior[k] > posterior[best] {
			best = k
		}
	}

	return best, posterior, nil
}
