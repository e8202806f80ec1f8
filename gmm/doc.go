// Package gmm fits Gaussian mixture models to multivariate data with the
// Expectation-Maximization (EM) algorithm.
//
// What is a Gaussian mixture?
//
//	A probability density built from K weighted Gaussian components:
//
//	    p(x) = Σ_k w_k · N(x | μ_k, Σ_k),   Σ_k w_k = 1, w_k ≥ 0,
//
//	where each component has a full D×D covariance matrix. Fitting
//	estimates all w_k, μ_k, Σ_k from unlabeled points given only K.
//
// Algorithm outline (one iteration):
//  1. E-step: for every point n and component k compute the
//     responsibility r_nk ∝ w_k · N(x_n | μ_k, Σ_k), each row
//     normalized to sum to 1. Computed in log space and normalized
//     with the log-sum-exp trick, so far-away points cannot underflow
//     a whole row to zero.
//  2. M-step: recompute parameters from responsibilities:
//     n_k = Σ_n r_nk, w_k = n_k/N, μ_k = Σ_n r_nk·x_n / n_k,
//     Σ_k = Σ_n r_nk·(x_n−μ_k)(x_n−μ_k)ᵀ / n_k.
//  3. Track the total log-likelihood; stop when its change drops
//     below Tolerance (Converged) or the iteration cap is reached
//     (MaxIterationsReached).
//
// Failure policy:
//   - A covariance that loses positive definiteness (ErrNumericalDegeneracy)
//     or a component whose responsibility mass vanishes
//     (ErrComponentCollapse) is reseeded from a random data point, at most
//     Options.CollapseRetries times per fit. When retries run out — or
//     under the strict FailOnCollapse policy — Fit returns the last model
//     that satisfied every invariant, together with the fault. A returned
//     model never contains NaN or ±Inf.
//   - Hitting MaxIterations without meeting Tolerance is NOT an error:
//     the last estimate is returned with Reason=MaxIterationsReached.
//
// Determinism:
//   - Initialization draws K distinct points as means from a seeded RNG
//     (seed==0 selects a fixed default seed); covariances start at the
//     dataset's global covariance and weights at 1/K. Equal seeds yield
//     identical fits. A caller-supplied starting model is also accepted.
//
// Concurrency:
//   - Iterations are inherently sequential, but the per-point E-step work
//     is embarrassingly parallel; Options.Workers > 1 fans rows out across
//     goroutines and joins before the M-step. Parameters are read-only
//     during the fan-out, so results are identical to the serial path.
//
// Complexity per iteration: O(K·D³) for factorizations + O(N·K·D²) for
// responsibilities and scatter updates; memory O(N·K + K·D²).
package gmm
