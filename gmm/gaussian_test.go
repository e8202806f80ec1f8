package gmm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/clusterkit/gmm"
)

// TestDensity_StandardNormal checks the closed-form peak values:
// 1-D N(0|0,1) = 1/√(2π); 2-D N(0|0,I) = 1/(2π).
func TestDensity_StandardNormal(t *testing.T) {
	d1, err := gmm.Density([]float64{0}, []float64{0}, mat.NewSymDense(1, []float64{1}))
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), d1, 1e-12)

	eye := mat.NewSymDense(2, []float64{1, 0, 0, 1})
	d2, err := gmm.Density([]float64{0, 0}, []float64{0, 0}, eye)
	require.NoError(t, err)
	assert.InDelta(t, 1/(2*math.Pi), d2, 1e-12)
}

// TestDensity_DecaysFromMean: density at one standard deviation is the
// peak scaled by exp(−1/2).
func TestDensity_DecaysFromMean(t *testing.T) {
	cov := mat.NewSymDense(1, []float64{1})

	peak, err := gmm.Density([]float64{0}, []float64{0}, cov)
	require.NoError(t, err)
	atOne, err := gmm.Density([]float64{1}, []float64{0}, cov)
	require.NoError(t, err)

	assert.InDelta(t, peak*math.Exp(-0.5), atOne, 1e-12)
}

// TestLogDensity_MatchesDensity ties the two entry points together and
// shows why the log form matters: far from the mean Density underflows to
// zero while LogDensity stays finite.
func TestLogDensity_MatchesDensity(t *testing.T) {
	cov := mat.NewSymDense(1, []float64{0.01})

	ld, err := gmm.LogDensity([]float64{0.1}, []float64{0}, cov)
	require.NoError(t, err)
	d, err := gmm.Density([]float64{0.1}, []float64{0}, cov)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(d), ld, 1e-9)

	// 100 standard deviations out: linear space is exactly 0, log space is not.
	far, err := gmm.Density([]float64{10}, []float64{0}, cov)
	require.NoError(t, err)
	assert.Zero(t, far)

	ldFar, err := gmm.LogDensity([]float64{10}, []float64{0}, cov)
	require.NoError(t, err)
	assert.False(t, math.IsInf(ldFar, -1), "log-density must stay finite where density underflows")
}

// TestDensity_DegenerateCovariance verifies the NumericalDegeneracy
// contract: singular and indefinite covariances error, never NaN.
func TestDensity_DegenerateCovariance(t *testing.T) {
	singular := mat.NewSymDense(2, []float64{1, 1, 1, 1})
	_, err := gmm.Density([]float64{0, 0}, []float64{0, 0}, singular)
	assert.ErrorIs(t, err, gmm.ErrNumericalDegeneracy)

	indefinite := mat.NewSymDense(2, []float64{1, 0, 0, -2})
	_, err = gmm.LogDensity([]float64{0, 0}, []float64{0, 0}, indefinite)
	assert.ErrorIs(t, err, gmm.ErrNumericalDegeneracy)
}

// TestDensity_DimensionMismatch checks the caller-error path.
func TestDensity_DimensionMismatch(t *testing.T) {
	cov := mat.NewSymDense(2, []float64{1, 0, 0, 1})
	_, err := gmm.Density([]float64{0}, []float64{0, 0}, cov)
	assert.ErrorIs(t, err, gmm.ErrDimensionMismatch)
}
