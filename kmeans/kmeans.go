package kmeans

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// Fit partitions data into k clusters.
//
// Contracts:
//   - data must be non-empty, rectangular, finite; 0 < k ≤ N.
//   - data is read-only; returned centroids alias nothing.
//
// Errors: the sentinel set from types.go, all detected before iteration.
//
// Complexity: O(MaxIterations·N·K·D).
func Fit(data [][]float64, k int, opts Options) (Result, error) {
	n, dim, err := validate(data, k, opts)
	if err != nil {
		return Result{}, err
	}

	rng := rand.New(rand.NewSource(seedOrDefault(opts.Seed)))
	centroids := seedPlusPlus(data, k, rng)

	var (
		labels = make([]int, n)
		sizes  = make([]int, k)
		next   = make([][]float64, k)
		res    Result
	)
	for c := 0; c < k; c++ {
		next[c] = make([]float64, dim)
	}

	for iter := 1; iter <= opts.MaxIterations; iter++ {
		// Assignment step: nearest centroid per point.
		for i := 0; i < n; i++ {
			labels[i] = nearest(data[i], centroids)
		}

		// Update step: means of the assigned points.
		for c := 0; c < k; c++ {
			zero(next[c])
			sizes[c] = 0
		}
		for i := 0; i < n; i++ {
			floats.Add(next[labels[i]], data[i])
			sizes[labels[i]]++
		}

		var shift float64
		for c := 0; c < k; c++ {
			if sizes[c] == 0 {
				// Reseed an emptied cluster to the globally worst-fitted
				// point; keeps K stable without a random restart.
				copy(next[c], data[farthestPoint(data, centroids, labels)])
			} else {
				floats.Scale(1/float64(sizes[c]), next[c])
			}
			if d := floats.Distance(next[c], centroids[c], 2); d > shift {
				shift = d
			}
			copy(centroids[c], next[c])
		}

		res.Iterations = iter
		if shift < opts.Tolerance {
			res.Converged = true

			break
		}
	}

	// Final assignment and objective under the last centroids.
	res.Inertia = 0
	for i := 0; i < n; i++ {
		labels[i] = nearest(data[i], centroids)
		d := floats.Distance(data[i], centroids[labels[i]], 2)
		res.Inertia += d * d
	}

	res.Centroids = centroids
	res.Labels = labels

	return res, nil
}

// validate performs the fail-fast input checks.
func validate(data [][]float64, k int, opts Options) (int, int, error) {
	n := len(data)
	if n == 0 {
		return 0, 0, ErrEmptyDataset
	}
	dim := len(data[0])
	if dim == 0 {
		return 0, 0, ErrRaggedData
	}
	for i := 0; i < n; i++ {
		if len(data[i]) != dim {
			return 0, 0, ErrRaggedData
		}
		for j := 0; j < dim; j++ {
			if math.IsNaN(data[i][j]) || math.IsInf(data[i][j], 0) {
				return 0, 0, ErrNonFiniteData
			}
		}
	}
	if k <= 0 {
		return 0, 0, ErrBadClusters
	}
	if k > n {
		return 0, 0, ErrFewerPointsThanClusters
	}
	if opts.MaxIterations < 1 {
		return 0, 0, ErrBadIterations
	}
	if opts.Tolerance < 0 || math.IsNaN(opts.Tolerance) {
		return 0, 0, ErrBadTolerance
	}

	return n, dim, nil
}

// seedPlusPlus chooses k starting centroids with the k-means++ rule:
// each new centroid is drawn with probability proportional to the squared
// distance from the nearest one already chosen.
func seedPlusPlus(data [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(data)
	centroids := make([][]float64, k)
	centroids[0] = append([]float64(nil), data[rng.Intn(n)]...)

	d2 := make([]float64, n)
	for c := 1; c < k; c++ {
		var sum float64
		for j := 0; j < n; j++ {
			best := floats.Distance(data[j], centroids[0], 2)
			for g := 1; g < c; g++ {
				if d := floats.Distance(data[j], centroids[g], 2); d < best {
					best = d
				}
			}
			d2[j] = best * best
			sum += d2[j]
		}

		// Walk the cumulative distribution to the sampled mass point.
		target := rng.Float64() * sum
		idx := 0
		for acc := d2[0]; acc < target && idx < n-1; acc += d2[idx] {
			idx++
		}
		centroids[c] = append([]float64(nil), data[idx]...)
	}

	return centroids
}

// nearest returns the index of the centroid closest to x.
func nearest(x []float64, centroids [][]float64) int {
	best, bestDist := 0, math.Inf(1)
	for c := range centroids {
		if d := floats.Distance(x, centroids[c], 2); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best
}

// farthestPoint returns the index of the point with the largest distance
// to its assigned centroid — the natural reseed target for empty clusters.
func farthestPoint(data [][]float64, centroids [][]float64, labels []int) int {
	worst, worstDist := 0, -1.0
	for i := range data {
		if d := floats.Distance(data[i], centroids[labels[i]], 2); d > worstDist {
			worst, worstDist = i, d
		}
	}

	return worst
}

// seedOrDefault applies the seed==0 ⇒ fixed-default policy.
func seedOrDefault(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}

// zero clears a slice in place.
func zero(s []float64) {
	for i := range s {
		s[i] = 0
	}
}
