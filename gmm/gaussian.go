package gmm

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/clusterkit/linalg"
)

// log2Pi = log(2π), the normalization constant of the Gaussian density.
const log2Pi = 1.8378770664093454

// logDensityFactor evaluates log N(x | mean, Σ) against a pre-computed
// Cholesky factor of Σ:
//
//	log N = −½ · (D·log 2π + log det Σ + (x−mean)ᵀ Σ⁻¹ (x−mean))
//
// The Mahalanobis term goes through the linalg kernel; no covariance
// algebra is re-derived here. Hot path of the E-step.
//
// Complexity: O(D²).
func logDensityFactor(x, mean []float64, f *linalg.Factor) (float64, error) {
	d2, err := f.MahalanobisSq(x, mean)
	if err != nil {
		return 0, mapKernelErr(err)
	}

	return -0.5 * (float64(f.Dim())*log2Pi + f.LogDet() + d2), nil
}

// LogDensity evaluates log N(x | mean, cov), factorizing cov on the spot.
// Prefer this over Density whenever the value feeds further log-space
// arithmetic; it cannot underflow for any finite Mahalanobis distance.
//
// Errors: ErrNumericalDegeneracy when cov is singular or indefinite,
// ErrDimensionMismatch on shape violations.
//
// Complexity: O(D³) for the factorization + O(D²) for the evaluation.
func LogDensity(x, mean []float64, cov *mat.SymDense) (float64, error) {
	f, err := linalg.Factorize(cov)
	if err != nil {
		return 0, mapKernelErr(err)
	}

	return logDensityFactor(x, mean, f)
}

// Density evaluates the multivariate normal density N(x | mean, cov).
// The result is non-negative; it underflows to 0 far from the mean,
// which is exactly why the fitting loop never calls it.
func Density(x, mean []float64, cov *mat.SymDense) (float64, error) {
	ld, err := LogDensity(x, mean, cov)
	if err != nil {
		return 0, err
	}

	return math.Exp(ld), nil
}

// mapKernelErr translates linalg sentinels into this package's taxonomy,
// keeping the kernel error attached for inspection.
func mapKernelErr(err error) error {
	switch {
	case errors.Is(err, linalg.ErrNotPositiveDefinite):
		return fmt.Errorf("%w: %v", ErrNumericalDegeneracy, err)
	case errors.Is(err, linalg.ErrDimensionMismatch):
		return ErrDimensionMismatch
	default:
		return err
	}
}
