package kmeans

import "errors"

// Sentinel errors returned by Fit.
var (
	// ErrEmptyDataset indicates a dataset with no points.
	ErrEmptyDataset = errors.New("kmeans: dataset is empty")

	// ErrRaggedData indicates points of unequal (or zero) dimensionality.
	ErrRaggedData = errors.New("kmeans: points must share one non-zero dimensionality")

	// ErrNonFiniteData indicates a NaN or ±Inf feature value.
	ErrNonFiniteData = errors.New("kmeans: dataset contains non-finite values")

	// ErrBadClusters indicates a requested cluster count K ≤ 0.
	ErrBadClusters = errors.New("kmeans: cluster count must be positive")

	// ErrFewerPointsThanClusters indicates K > N.
	ErrFewerPointsThanClusters = errors.New("kmeans: more clusters than data points")

	// ErrBadIterations indicates MaxIterations < 1.
	ErrBadIterations = errors.New("kmeans: MaxIterations must be at least 1")

	// ErrBadTolerance indicates a negative or NaN tolerance.
	ErrBadTolerance = errors.New("kmeans: Tolerance must be non-negative")
)

// Defaults — single source of truth for DefaultOptions.
const (
	// DefaultMaxIterations caps Lloyd iterations.
	DefaultMaxIterations = 100

	// DefaultTolerance is the centroid-shift threshold below which the
	// partition counts as converged.
	DefaultTolerance = 1e-6
)

// Options configures a single call to Fit.
//
// MaxIterations – iteration cap (≥ 1).
// Tolerance     – convergence threshold on the largest centroid shift (≥ 0).
// Seed          – RNG seed for k-means++; 0 selects a fixed default.
type Options struct {
	MaxIterations int
	Tolerance     float64
	Seed          int64
}

// Option is a functional setter for Options.
type Option func(*Options)

// WithMaxIterations sets the iteration cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithTolerance sets the centroid-shift convergence threshold.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithSeed pins the seeding RNG for reproducible partitions.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// DefaultOptions returns Options with documented defaults applied.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		Seed:          0,
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Result holds the outcome of one k-means fit.
type Result struct {
	// Centroids are the K cluster centers, each of length D.
	Centroids [][]float64

	// Labels maps every data point to its cluster index in [0,K).
	Labels []int

	// Inertia is the total squared distance of points to their centroid —
	// the objective Lloyd's algorithm descends.
	Inertia float64

	// Iterations is the number of assign/update rounds performed.
	Iterations int

	// Converged reports whether Tolerance was met before MaxIterations.
	Converged bool
}
