package kmeans_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clusterkit/kmeans"
)

// blobs2D samples `per` points around each center, deterministically.
func blobs2D(centers [][2]float64, per int, sigma float64, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	data := make([][]float64, 0, len(centers)*per)
	for _, c := range centers {
		for i := 0; i < per; i++ {
			data = append(data, []float64{
				c[0] + sigma*rng.NormFloat64(),
				c[1] + sigma*rng.NormFloat64(),
			})
		}
	}

	return data
}

// TestFit_InvalidInput covers the fail-fast rejection set.
func TestFit_InvalidInput(t *testing.T) {
	opts := kmeans.DefaultOptions()
	ok := [][]float64{{1, 2}, {3, 4}, {5, 6}}

	_, err := kmeans.Fit(nil, 2, opts)
	assert.ErrorIs(t, err, kmeans.ErrEmptyDataset)

	_, err = kmeans.Fit([][]float64{{1, 2}, {3}}, 2, opts)
	assert.ErrorIs(t, err, kmeans.ErrRaggedData)

	_, err = kmeans.Fit([][]float64{{1, math.Inf(1)}}, 1, opts)
	assert.ErrorIs(t, err, kmeans.ErrNonFiniteData)

	_, err = kmeans.Fit(ok, 0, opts)
	assert.ErrorIs(t, err, kmeans.ErrBadClusters)

	_, err = kmeans.Fit(ok, 4, opts)
	assert.ErrorIs(t, err, kmeans.ErrFewerPointsThanClusters)

	_, err = kmeans.Fit(ok, 2, kmeans.DefaultOptions(kmeans.WithMaxIterations(0)))
	assert.ErrorIs(t, err, kmeans.ErrBadIterations)

	_, err = kmeans.Fit(ok, 2, kmeans.DefaultOptions(kmeans.WithTolerance(-0.5)))
	assert.ErrorIs(t, err, kmeans.ErrBadTolerance)
}

// TestFit_TwoSeparatedBlobs recovers two tight clusters: centroids near the
// true centers and a balanced partition.
func TestFit_TwoSeparatedBlobs(t *testing.T) {
	centers := [][2]float64{{3, 3}, {7, 4}}
	data := blobs2D(centers, 100, 0.3, 42)

	res, err := kmeans.Fit(data, 2, kmeans.DefaultOptions(kmeans.WithSeed(7)))
	require.NoError(t, err)
	assert.True(t, res.Converged, "well-separated blobs must converge")
	require.Len(t, res.Centroids, 2)
	require.Len(t, res.Labels, len(data))

	for _, c := range centers {
		best, bestDist := 0, math.Inf(1)
		for k := range res.Centroids {
			dx := res.Centroids[k][0] - c[0]
			dy := res.Centroids[k][1] - c[1]
			if d := dx*dx + dy*dy; d < bestDist {
				best, bestDist = k, d
			}
		}
		assert.InDelta(t, c[0], res.Centroids[best][0], 0.5)
		assert.InDelta(t, c[1], res.Centroids[best][1], 0.5)
	}

	// Balanced sizes: 100 points per blob.
	counts := make([]int, 2)
	for _, l := range res.Labels {
		counts[l]++
	}
	assert.InDelta(t, 100, counts[0], 5)
	assert.InDelta(t, 100, counts[1], 5)
}

// TestFit_SingleCluster: K=1 converges to the sample mean.
func TestFit_SingleCluster(t *testing.T) {
	data := blobs2D([][2]float64{{-2, 5}}, 40, 1.0, 9)
	n := float64(len(data))

	mean := make([]float64, 2)
	for _, x := range data {
		mean[0] += x[0] / n
		mean[1] += x[1] / n
	}

	res, err := kmeans.Fit(data, 1, kmeans.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, mean[0], res.Centroids[0][0], 1e-9)
	assert.InDelta(t, mean[1], res.Centroids[0][1], 1e-9)
}

// TestFit_Deterministic checks the equal-seed reproducibility contract.
func TestFit_Deterministic(t *testing.T) {
	data := blobs2D([][2]float64{{0, 0}, {5, 1}, {2, 6}}, 50, 0.7, 12)

	a, err := kmeans.Fit(data, 3, kmeans.DefaultOptions(kmeans.WithSeed(99)))
	require.NoError(t, err)
	b, err := kmeans.Fit(data, 3, kmeans.DefaultOptions(kmeans.WithSeed(99)))
	require.NoError(t, err)

	assert.Equal(t, a.Labels, b.Labels)
	assert.Equal(t, a.Centroids, b.Centroids)
	assert.Equal(t, a.Inertia, b.Inertia)
}

// TestFit_InertiaIsObjective: inertia equals the recomputed sum of squared
// distances to assigned centroids.
func TestFit_InertiaIsObjective(t *testing.T) {
	data := blobs2D([][2]float64{{1, 1}, {8, 8}}, 30, 0.5, 5)

	res, err := kmeans.Fit(data, 2, kmeans.DefaultOptions())
	require.NoError(t, err)

	var want float64
	for i, x := range data {
		c := res.Centroids[res.Labels[i]]
		dx, dy := x[0]-c[0], x[1]-c[1]
		want += dx*dx + dy*dy
	}
	assert.InDelta(t, want, res.Inertia, 1e-9)
}
