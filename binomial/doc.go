// Package binomial fits a finite mixture of binomial components with
// expectation-maximization — the classic "which of K biased coins
// produced each batch of flips" problem.
//
// Model:
//
//	Each observation is a trial batch (Heads out of Flips). The mixture
//	assumes every batch was generated by one of K coins with unknown
//	biases p_1..p_K, chosen with unknown weights w_1..w_K.
//
// Algorithm outline:
//  1. Start from random biases in (0,1) and uniform weights.
//  2. E-step: responsibility of coin k for batch n is the posterior
//     w_k·Binom(h_n | m_n, p_k), normalized per batch in log space.
//  3. M-step: w_k is the mean responsibility; p_k is the responsibility-
//     weighted heads divided by responsibility-weighted flips.
//  4. Repeat until the log-likelihood improvement drops below Tolerance
//     or MaxIterations fires.
//
// Failure policy: a coin whose responsibility mass rounds to zero is a
// collapse. The default policy re-draws its bias (bounded by
// CollapseRetries); FailOnCollapse aborts instead. Either way Fit never
// returns NaN parameters — a failed fit hands back the last valid model
// together with ErrComponentCollapse.
//
// Determinism: all randomness flows from Options.Seed (0 ⇒ fixed default
// seed); equal inputs and seeds produce identical models.
//
// Complexity: O(iterations·N·K) time, O(N·K) space.
package binomial
