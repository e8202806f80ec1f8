package linalg

import "errors"

// Sentinel errors returned by the kernel.
var (
	// ErrNilMatrix indicates a nil *mat.SymDense was passed to Factorize.
	ErrNilMatrix = errors.New("linalg: matrix is nil")

	// ErrNotPositiveDefinite indicates the matrix is numerically singular
	// or indefinite, so no Cholesky factorization exists. Callers treat
	// this as the canonical "degenerate covariance" signal.
	ErrNotPositiveDefinite = errors.New("linalg: matrix is not positive definite")

	// ErrDimensionMismatch indicates a vector whose length does not match
	// the factorized dimension. This is a caller error, not a data error.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")
)
