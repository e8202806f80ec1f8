package gmm

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/clusterkit/linalg"
)

// Fit estimates a K-component Gaussian mixture over data by EM.
//
// Stages:
//  1. Fail-fast validation (the InvalidInput taxonomy): empty/ragged/
//     non-finite data, K ≤ 0, K > N, malformed options.
//  2. Initialization: K distinct data points as means, the dataset's
//     global covariance for every component, uniform weights — or the
//     caller's Options.Initial verbatim.
//  3. Iterate E-step → convergence check → M-step until the
//     log-likelihood delta drops below Tolerance, the iteration cap
//     fires, or an unrecovered fault aborts the fit.
//
// On success the returned model satisfies every invariant (weights on the
// simplex, symmetric PD covariances, all values finite). On failure the
// error is non-nil and the returned model is the last one that did —
// never a torn or NaN-containing estimate. Diagnostics are returned in
// all cases.
//
// Determinism: equal (data, k, Options) including Seed produce identical
// results; Workers only changes scheduling, not output.
func Fit(data [][]float64, k int, opts Options) (*MixtureModel, FitDiagnostics, error) {
	// Stage 1 — validation, before any computation.
	n, dim, err := validateDataset(data, k)
	if err != nil {
		return nil, FitDiagnostics{Reason: Failed}, err
	}
	if err = validateOptions(opts, k, dim); err != nil {
		return nil, FitDiagnostics{Reason: Failed}, err
	}

	// Stage 2 — initialization.
	rng := rngFromSeed(opts.Seed)
	globalCov := globalCovariance(data, n, dim)
	seedCov := reseedCovariance(globalCov, dim)

	var model *MixtureModel
	if opts.Initial != nil {
		model = opts.Initial.Clone()
	} else {
		model = initialModel(data, k, dim, globalCov, rng)
	}

	// last always holds the most recent model that passed every check;
	// it is what a Failed fit hands back.
	last := model.Clone()

	resp := make([][]float64, n)
	for i := range resp {
		resp[i] = make([]float64, k)
	}

	var (
		history []float64
		prevLL  = math.Inf(-1)
		retries = opts.CollapseRetries
		workers = opts.Workers
	)
	if workers < 1 {
		workers = 1
	}

	diag := func(reason TerminationReason) FitDiagnostics {
		d := FitDiagnostics{Iterations: len(history), History: history, Reason: reason}
		if len(history) > 0 {
			d.LogLikelihood = history[len(history)-1]
		}

		return d
	}

	// Stage 3 — the EM loop.
	for iter := 0; iter < opts.MaxIterations; {
		factors, bad, ferr := factorizeAll(model)
		if ferr != nil {
			if opts.OnCollapse == FailOnCollapse || retries == 0 {
				return last, diag(Failed), ferr
			}
			// Recovery does not consume an iteration; it is bounded by
			// the retry budget instead.
			retries--
			reseedComponent(model, bad, data, seedCov, rng)
			renormalizeWeights(model.Weights)

			continue
		}

		ll, eerr := estep(data, model, factors, resp, workers)
		if eerr != nil {
			return last, diag(Failed), eerr
		}
		history = append(history, ll)

		// Convergence is judged on the parameters the E-step just scored,
		// so the returned model is exactly the one whose log-likelihood
		// closes the history.
		if math.Abs(ll-prevLL) < opts.Tolerance {
			return model, diag(Converged), nil
		}
		prevLL = ll

		cand, collapsed := mstep(data, resp, k, dim)
		if len(collapsed) > 0 {
			if opts.OnCollapse == FailOnCollapse || retries == 0 {
				return last, diag(Failed),
					fmt.Errorf("component %d: %w", collapsed[0], ErrComponentCollapse)
			}
			retries--
			for _, c := range collapsed {
				reseedComponent(cand, c, data, seedCov, rng)
			}
			renormalizeWeights(cand.Weights)
		}

		model = cand
		last = model.Clone()
		iter++
	}

	return model, diag(MaxIterationsReached), nil
}

// initialModel builds the random starting point: K distinct points drawn
// without replacement as means, the global covariance everywhere, uniform
// weights. Means are copied so the model never aliases caller data.
func initialModel(data [][]float64, k, dim int, globalCov *mat.SymDense, rng *rand.Rand) *MixtureModel {
	idx := sampleDistinct(len(data), k, rng)

	m := &MixtureModel{
		K:           k,
		Dim:         dim,
		Weights:     make([]float64, k),
		Means:       make([][]float64, k),
		Covariances: make([]*mat.SymDense, k),
	}
	w := 1 / float64(k)
	for c := 0; c < k; c++ {
		m.Weights[c] = w
		m.Means[c] = append([]float64(nil), data[idx[c]]...)
		m.Covariances[c] = cloneSym(globalCov, dim)
	}

	return m
}

// reseedComponent re-draws component c in place: mean ← a random data
// point, covariance ← the reseed covariance, weight ← 1/K. The caller
// renormalizes the weight vector afterwards.
func reseedComponent(m *MixtureModel, c int, data [][]float64, seedCov *mat.SymDense, rng *rand.Rand) {
	m.Means[c] = append([]float64(nil), data[rng.Intn(len(data))]...)
	m.Covariances[c] = cloneSym(seedCov, m.Dim)
	m.Weights[c] = 1 / float64(m.K)
}

// reseedCovariance picks the covariance used when re-drawing a component.
// The dataset's global covariance is preferred; when it is itself not
// positive definite (a constant column, N < 2) a scaled identity stands
// in, so recovery never re-injects the degeneracy it is healing.
func reseedCovariance(globalCov *mat.SymDense, dim int) *mat.SymDense {
	if _, err := linalg.Factorize(globalCov); err == nil {
		return globalCov
	}

	// Scale from the mean diagonal variance; 1 when that carries no
	// information either.
	var tr float64
	for i := 0; i < dim; i++ {
		tr += globalCov.At(i, i)
	}
	scale := tr / float64(dim)
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}

	eye := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		eye.SetSym(i, i, scale)
	}

	return eye
}

// globalCovariance computes the (unbiased) sample covariance of the whole
// dataset, the shared starting covariance of every component. For a
// single-point dataset the zero matrix is returned; factorization rejects
// it downstream as degenerate rather than propagating NaNs here.
//
// Complexity: O(N·D²).
func globalCovariance(data [][]float64, n, dim int) *mat.SymDense {
	cov := mat.NewSymDense(dim, nil)
	if n < 2 {
		return cov
	}

	flat := make([]float64, 0, n*dim)
	for i := 0; i < n; i++ {
		flat = append(flat, data[i]...)
	}
	stat.CovarianceMatrix(cov, mat.NewDense(n, dim, flat), nil)

	return cov
}

// cloneSym returns a fresh copy of sym.
func cloneSym(sym *mat.SymDense, dim int) *mat.SymDense {
	cp := mat.NewSymDense(dim, nil)
	cp.CopySym(sym)

	return cp
}
