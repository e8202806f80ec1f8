package gmm

import "math"

// validateDataset performs the fail-fast InvalidInput checks shared by Fit
// and model methods. Returns (N, D) on success.
//
// Order matters and is part of the contract: emptiness, dimensionality,
// finiteness, then the K/N relation — the first violation wins.
//
// Complexity: O(N·D).
func validateDataset(data [][]float64, k int) (int, int, error) {
	n := len(data)
	if n == 0 {
		return 0, 0, ErrEmptyDataset
	}

	d := len(data[0])
	if d == 0 {
		return 0, 0, ErrRaggedData
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		if len(data[i]) != d {
			return 0, 0, ErrRaggedData
		}
		for j = 0; j < d; j++ {
			v = data[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, 0, ErrNonFiniteData
			}
		}
	}

	if k <= 0 {
		return 0, 0, ErrBadComponents
	}
	if k > n {
		return 0, 0, ErrFewerPointsThanComponents
	}

	return n, d, nil
}

// validateOptions checks internal consistency of Options against the
// requested fit shape. Pure; mutates nothing.
func validateOptions(opts Options, k, dim int) error {
	if opts.MaxIterations < 1 {
		return ErrBadIterations
	}
	if opts.Tolerance < 0 || math.IsNaN(opts.Tolerance) {
		return ErrBadTolerance
	}
	if opts.Workers < 0 {
		return ErrBadWorkers
	}
	if opts.CollapseRetries < 0 {
		return ErrBadRetries
	}
	if m := opts.Initial; m != nil {
		if m.K != k || m.Dim != dim ||
			len(m.Weights) != k || len(m.Means) != k || len(m.Covariances) != k {
			return ErrBadInitialModel
		}
		if err := validateInitialValues(m, k, dim); err != nil {
			return err
		}
	}

	return nil
}

// validateInitialValues rejects caller-supplied starting parameters that
// would otherwise flow through the E-step unflagged and surface as a
// non-finite returned model: NaN/Inf anywhere, negative weights, or a
// weight vector off the simplex.
func validateInitialValues(m *MixtureModel, k, dim int) error {
	var sum float64
	for c := 0; c < k; c++ {
		w := m.Weights[c]
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return ErrBadInitialModel
		}
		sum += w

		if len(m.Means[c]) != dim {
			return ErrBadInitialModel
		}
		for j := 0; j < dim; j++ {
			if v := m.Means[c][j]; math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrBadInitialModel
			}
		}

		cov := m.Covariances[c]
		if cov == nil || cov.SymmetricDim() != dim {
			return ErrBadInitialModel
		}
		for i := 0; i < dim; i++ {
			for j := i; j < dim; j++ {
				if v := cov.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
					return ErrBadInitialModel
				}
			}
		}
	}
	if math.Abs(sum-1) > 1e-9 {
		return ErrBadInitialModel
	}

	return nil
}
