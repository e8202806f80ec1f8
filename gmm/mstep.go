package gmm

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// collapseFloor is the effective-mass threshold below which a component
// counts as collapsed: dividing by such an n_k would amplify noise into
// meaningless (or non-finite) parameters.
const collapseFloor = 1e-12

// mstep re-estimates weights, means and covariances from the current
// responsibilities into a fresh model, leaving the previous parameters
// untouched — the driver only commits a candidate that passed every check.
//
// Update rules (per component k, N points):
//
//	n_k = Σ_n r_nk
//	w_k = n_k / N
//	μ_k = Σ_n r_nk·x_n / n_k
//	Σ_k = Σ_n r_nk·(x_n−μ_k)(x_n−μ_k)ᵀ / n_k
//
// The scatter accumulates the upper triangle only and mirrors it at the
// end, so Σ_k is symmetric by construction.
//
// Components whose n_k falls below collapseFloor are reported in the
// returned slice and left zeroed in the candidate; the driver either
// reseeds them or aborts, per policy. Within one component the mean is
// finalized before the scatter pass begins (the scatter needs it).
//
// Complexity: O(N·K·D²) time, O(K·D²) space.
func mstep(data [][]float64, resp [][]float64, k, dim int) (*MixtureModel, []int) {
	n := len(data)

	// Effective counts: one pass over the responsibility matrix.
	nk := make([]float64, k)
	for i := 0; i < n; i++ {
		floats.Add(nk, resp[i])
	}

	cand := &MixtureModel{
		K:           k,
		Dim:         dim,
		Weights:     make([]float64, k),
		Means:       make([][]float64, k),
		Covariances: make([]*mat.SymDense, k),
	}

	var collapsed []int
	for c := 0; c < k; c++ {
		cand.Means[c] = make([]float64, dim)
		if nk[c] < collapseFloor {
			collapsed = append(collapsed, c)
			cand.Covariances[c] = mat.NewSymDense(dim, nil)
			continue
		}

		// Weight and mean.
		cand.Weights[c] = nk[c] / float64(n)
		for i := 0; i < n; i++ {
			floats.AddScaled(cand.Means[c], resp[i][c], data[i])
		}
		floats.Scale(1/nk[c], cand.Means[c])

		// Weighted scatter around the finalized mean, upper triangle.
		var (
			scratch = make([]float64, dim*dim)
			diff    = make([]float64, dim)
			ra      float64
			a, b    int
		)
		for i := 0; i < n; i++ {
			floats.SubTo(diff, data[i], cand.Means[c])
			for a = 0; a < dim; a++ {
				ra = resp[i][c] * diff[a]
				if ra == 0 {
					continue
				}
				for b = a; b < dim; b++ {
					scratch[a*dim+b] += ra * diff[b]
				}
			}
		}

		// Normalize and mirror into the lower triangle.
		inv := 1 / nk[c]
		for a = 0; a < dim; a++ {
			for b = a; b < dim; b++ {
				v := scratch[a*dim+b] * inv
				scratch[a*dim+b] = v
				scratch[b*dim+a] = v
			}
		}
		cand.Covariances[c] = mat.NewSymDense(dim, scratch)
	}

	return cand, collapsed
}

// renormalizeWeights rescales w to sum to exactly 1. Only needed after a
// reseed injected an out-of-simplex weight; regular M-step weights already
// sum to 1 because responsibility rows do.
func renormalizeWeights(w []float64) {
	if s := floats.Sum(w); s > 0 {
		floats.Scale(1/s, w)
	}
}
