// Package linalg is the shared linear-algebra kernel for covariance
// matrices: one place where symmetric positive-definite (SPD) factorization,
// determinants, solves and Mahalanobis forms live.
//
// Why a dedicated kernel?
//
//	Every density evaluation in a Gaussian mixture needs det(Σ) and
//	Σ⁻¹·(x−μ). Recomputing those ad hoc scatters the numerical policy
//	(what counts as singular? what error is returned?) across callers.
//	The kernel centralizes it: factorize once per component per
//	iteration, then reuse the factor for every point.
//
// Mechanics:
//
//	Factorization is the Cholesky decomposition Σ = L·Lᵀ (gonum/mat).
//	It exists exactly when Σ is symmetric positive definite, so a
//	failed factorization doubles as the singularity/indefiniteness
//	detector — no determinant sign checks needed downstream.
//
// Errors:
//   - ErrNilMatrix            — nil input matrix.
//   - ErrNotPositiveDefinite  — Σ is numerically singular or indefinite.
//   - ErrDimensionMismatch    — vector length does not match the factor.
//
// Complexity: Factorize O(D³); LogDet O(D); SolveVec / MahalanobisSq O(D²).
package linalg
