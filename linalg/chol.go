package linalg

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Factor is an immutable Cholesky factorization of an SPD matrix.
// A Factor is safe for concurrent read-only use once constructed;
// all solve-style methods allocate their own scratch space.
type Factor struct {
	chol mat.Cholesky
	dim  int
}

// Factorize computes the Cholesky factorization of sym.
//
// Contracts:
//   - sym must be non-nil (ErrNilMatrix otherwise).
//   - sym must be numerically positive definite; a failed factorization
//     returns ErrNotPositiveDefinite. The input is never mutated.
//
// Complexity: O(D³) time, O(D²) space.
func Factorize(sym *mat.SymDense) (*Factor, error) {
	if sym == nil {
		return nil, ErrNilMatrix
	}

	f := &Factor{dim: sym.SymmetricDim()}
	if ok := f.chol.Factorize(sym); !ok {
		return nil, ErrNotPositiveDefinite
	}

	return f, nil
}

// Dim returns the order D of the factorized matrix.
func (f *Factor) Dim() int { return f.dim }

// LogDet returns log(det(Σ)). Always finite for a successfully
// factorized matrix, which is why callers should prefer it over Det
// when the value feeds a log-density.
//
// Complexity: O(D).
func (f *Factor) LogDet() float64 { return f.chol.LogDet() }

// Det returns det(Σ). May underflow to 0 for high-dimensional,
// small-variance matrices; log-space callers must use LogDet instead.
//
// Complexity: O(D).
func (f *Factor) Det() float64 { return f.chol.Det() }

// SolveVec solves Σ·x = b and returns a freshly allocated x.
//
// Contracts:
//   - len(b) must equal Dim (ErrDimensionMismatch otherwise).
//   - b is read-only; the result aliases nothing.
//
// Complexity: O(D²) time, O(D) space.
func (f *Factor) SolveVec(b []float64) ([]float64, error) {
	if len(b) != f.dim {
		return nil, ErrDimensionMismatch
	}

	dst := mat.NewVecDense(f.dim, nil)
	if err := f.chol.SolveVecTo(dst, mat.NewVecDense(f.dim, b)); err != nil {
		// Cholesky solves only fail on a badly conditioned factor;
		// surface it under the same degeneracy sentinel.
		return nil, ErrNotPositiveDefinite
	}

	return dst.RawVector().Data, nil
}

// MahalanobisSq computes (x−mean)ᵀ·Σ⁻¹·(x−mean), the squared
// Mahalanobis distance of x from mean under the factorized covariance.
// This is the single quadratic-form entry point used by density code.
//
// Contracts:
//   - len(x) == len(mean) == Dim (ErrDimensionMismatch otherwise).
//   - The result is ≥ 0 up to floating-point error.
//
// Complexity: O(D²) time, O(D) space.
func (f *Factor) MahalanobisSq(x, mean []float64) (float64, error) {
	if len(x) != f.dim || len(mean) != f.dim {
		return 0, ErrDimensionMismatch
	}

	// diff = x − mean, in a fresh slice (inputs stay untouched).
	diff := make([]float64, f.dim)
	floats.SubTo(diff, x, mean)

	solved, err := f.SolveVec(diff)
	if err != nil {
		return 0, err
	}

	return floats.Dot(diff, solved), nil
}

// InverseTo materializes Σ⁻¹ as a fresh SymDense.
// Prefer SolveVec/MahalanobisSq when only Σ⁻¹·b is needed; forming the
// explicit inverse is a last resort for callers that export the matrix.
//
// Complexity: O(D³) time, O(D²) space.
func (f *Factor) InverseTo() (*mat.SymDense, error) {
	inv := mat.NewSymDense(f.dim, nil)
	if err := f.chol.InverseTo(inv); err != nil {
		return nil, ErrNotPositiveDefinite
	}

	return inv, nil
}
