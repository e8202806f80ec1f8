package binomial

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// biasFloor keeps fitted biases strictly inside (0,1) so every batch
// retains a finite log-probability under every coin.
const biasFloor = 1e-9

// collapseFloor is the effective-mass threshold below which a coin counts
// as collapsed: dividing by such a responsibility sum would turn the bias
// estimate into 0/0.
const collapseFloor = 1e-12

// Fit estimates a K-coin binomial mixture from trial batches.
//
// Contracts:
//   - data must be non-empty with 1 ≤ Flips and 0 ≤ Heads ≤ Flips per
//     batch; 0 < k ≤ N.
//   - data is read-only.
//
// Errors: the input sentinel set from types.go, all detected before
// iteration; ErrComponentCollapse when a coin's responsibility mass
// rounds to zero under FailOnCollapse or after CollapseRetries reseeds.
// A failed fit still returns the last model that passed every check —
// never a NaN-containing estimate.
//
// Complexity: O(MaxIterations·N·K).
func Fit(data []Observation, k int, opts Options) (Model, error) {
	n, err := validate(data, k, opts)
	if err != nil {
		return Model{}, err
	}

	rng := rand.New(rand.NewSource(seedOrDefault(opts.Seed)))

	m := Model{
		Weights: make([]float64, k),
		Biases:  make([]float64, k),
	}
	for c := 0; c < k; c++ {
		m.Weights[c] = 1 / float64(k)
		// Spread the starting biases away from the extremes; identical
		// starts would leave EM stuck on the symmetry axis.
		m.Biases[c] = 0.1 + 0.8*rng.Float64()
	}

	// last always holds the most recent parameters that passed every
	// check; it is what a failed fit hands back.
	last := m.snapshot()

	var (
		resp    = make([][]float64, n)
		logs    = make([]float64, k)
		prevLL  = math.Inf(-1)
		retries = opts.CollapseRetries
	)
	for i := range resp {
		resp[i] = make([]float64, k)
	}

	for iter := 1; iter <= opts.MaxIterations; iter++ {
		// E-step: posterior responsibilities in log space.
		var ll float64
		for i, obs := range data {
			for c := 0; c < k; c++ {
				b := distuv.Binomial{N: float64(obs.Flips), P: m.Biases[c]}
				logs[c] = math.Log(m.Weights[c]) + b.LogProb(float64(obs.Heads))
			}
			lse := floats.LogSumExp(logs)
			ll += lse
			for c := 0; c < k; c++ {
				resp[i][c] = math.Exp(logs[c] - lse)
			}
		}

		m.Iterations = iter
		m.LogLikelihood = ll

		// Convergence is judged on the parameters the E-step just scored,
		// so the returned model is exactly the one LogLikelihood describes.
		// The delta is taken in absolute value: a reseed may step downhill.
		if math.Abs(ll-prevLL) < opts.Tolerance {
			m.Converged = true

			break
		}
		prevLL = ll

		// M-step: weighted coin statistics. A coin whose responsibility
		// mass rounded to zero is never divided by — it is reported and
		// handled by policy instead.
		var collapsed []int
		for c := 0; c < k; c++ {
			var rsum, heads, flips float64
			for i, obs := range data {
				r := resp[i][c]
				rsum += r
				heads += r * float64(obs.Heads)
				flips += r * float64(obs.Flips)
			}
			if rsum < collapseFloor {
				collapsed = append(collapsed, c)

				continue
			}
			m.Weights[c] = rsum / float64(n)
			m.Biases[c] = clampBias(heads / flips)
		}

		if len(collapsed) > 0 {
			if opts.OnCollapse == FailOnCollapse || retries == 0 {
				last.Iterations = iter
				last.LogLikelihood = ll

				return last, fmt.Errorf("coin %d: %w", collapsed[0], ErrComponentCollapse)
			}
			retries--
			for _, c := range collapsed {
				m.Biases[c] = 0.1 + 0.8*rng.Float64()
				m.Weights[c] = 1 / float64(k)
			}
			renormalizeWeights(m.Weights)
		}

		last = m.snapshot()
	}

	return m, nil
}

// snapshot deep-copies the mutable parameter slices.
func (m Model) snapshot() Model {
	cp := m
	cp.Weights = append([]float64(nil), m.Weights...)
	cp.Biases = append([]float64(nil), m.Biases...)

	return cp
}

// renormalizeWeights rescales w to sum to exactly 1. Only needed after a
// reseed injected an out-of-simplex weight.
func renormalizeWeights(w []float64) {
	if s := floats.Sum(w); s > 0 {
		floats.Scale(1/s, w)
	}
}

// Responsibilities returns the N×K posterior matrix of data under a
// fitted model; each row sums to 1.
func Responsibilities(data []Observation, m Model) ([][]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}
	for _, obs := range data {
		if obs.Flips < 1 || obs.Heads < 0 || obs.Heads > obs.Flips {
			return nil, ErrBadObservation
		}
	}

	k := len(m.Weights)
	resp := make([][]float64, len(data))
	logs := make([]float64, k)
	for i, obs := range data {
		for c := 0; c < k; c++ {
			b := distuv.Binomial{N: float64(obs.Flips), P: m.Biases[c]}
			logs[c] = math.Log(m.Weights[c]) + b.LogProb(float64(obs.Heads))
		}
		lse := floats.LogSumExp(logs)
		resp[i] = make([]float64, k)
		for c := 0; c < k; c++ {
			resp[i][c] = math.Exp(logs[c] - lse)
		}
	}

	return resp, nil
}

// validate performs the fail-fast input checks.
func validate(data []Observation, k int, opts Options) (int, error) {
	n := len(data)
	if n == 0 {
		return 0, ErrEmptyDataset
	}
	for _, obs := range data {
		if obs.Flips < 1 || obs.Heads < 0 || obs.Heads > obs.Flips {
			return 0, ErrBadObservation
		}
	}
	if k <= 0 {
		return 0, ErrBadComponents
	}
	if k > n {
		return 0, ErrFewerPointsThanComponents
	}
	if opts.MaxIterations < 1 {
		return 0, ErrBadIterations
	}
	if opts.Tolerance < 0 || math.IsNaN(opts.Tolerance) {
		return 0, ErrBadTolerance
	}
	if opts.CollapseRetries < 0 {
		return 0, ErrBadRetries
	}

	return n, nil
}

// clampBias pins a bias estimate strictly inside (0,1).
func clampBias(p float64) float64 {
	switch {
	case p < biasFloor:
		return biasFloor
	case p > 1-biasFloor:
		return 1 - biasFloor
	default:
		return p
	}
}

// seedOrDefault applies the seed==0 ⇒ fixed-default policy.
func seedOrDefault(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}
