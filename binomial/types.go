package binomial

import "errors"

// Sentinel errors returned by Fit.
var (
	// ErrEmptyDataset indicates a dataset with no trial batches.
	ErrEmptyDataset = errors.New("binomial: dataset is empty")

	// ErrBadObservation indicates a batch with Flips < 1 or Heads
	// outside [0, Flips].
	ErrBadObservation = errors.New("binomial: observation heads/flips out of range")

	// ErrBadComponents indicates a requested component count K ≤ 0.
	ErrBadComponents = errors.New("binomial: component count must be positive")

	// ErrFewerPointsThanComponents indicates K > N.
	ErrFewerPointsThanComponents = errors.New("binomial: more components than observations")

	// ErrBadIterations indicates MaxIterations < 1.
	ErrBadIterations = errors.New("binomial: MaxIterations must be at least 1")

	// ErrBadTolerance indicates a negative or NaN tolerance.
	ErrBadTolerance = errors.New("binomial: Tolerance must be non-negative")

	// ErrBadRetries indicates a negative collapse-retry budget.
	ErrBadRetries = errors.New("binomial: CollapseRetries must be non-negative")

	// ErrComponentCollapse indicates a coin whose effective responsibility
	// mass rounded to zero during the M-step.
	ErrComponentCollapse = errors.New("binomial: component responsibility mass collapsed")
)

// CollapsePolicy selects how Fit reacts to a collapsed coin.
type CollapsePolicy int

const (
	// ReseedOnCollapse re-draws the offending coin (bias ← fresh random
	// value, weight ← 1/K, weights renormalized), at most CollapseRetries
	// times per fit.
	ReseedOnCollapse CollapsePolicy = iota

	// FailOnCollapse aborts the fit on the first collapse.
	FailOnCollapse
)

// Defaults — single source of truth for DefaultOptions.
const (
	// DefaultMaxIterations caps EM iterations.
	DefaultMaxIterations = 200

	// DefaultTolerance is the log-likelihood improvement below which the
	// fit counts as converged.
	DefaultTolerance = 1e-8

	// DefaultCollapseRetries bounds transparent coin re-seeding.
	DefaultCollapseRetries = 3
)

// Observation is one batch of Bernoulli trials: Heads successes out of
// Flips attempts.
type Observation struct {
	Heads int
	Flips int
}

// Options configures a single call to Fit.
//
// MaxIterations   – iteration cap (≥ 1).
// Tolerance       – convergence threshold on the log-likelihood delta (≥ 0).
// Seed            – RNG seed for bias initialization; 0 selects a fixed default.
// CollapseRetries – re-seed budget under ReseedOnCollapse (≥ 0).
// OnCollapse      – recovery policy for collapsed coins.
type Options struct {
	MaxIterations   int
	Tolerance       float64
	Seed            int64
	CollapseRetries int
	OnCollapse      CollapsePolicy
}

// Option is a functional setter for Options.
type Option func(*Options)

// WithMaxIterations sets the iteration cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithTolerance sets the log-likelihood convergence threshold.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithSeed pins the initialization RNG for reproducible fits.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithCollapsePolicy selects the collapse recovery policy.
func WithCollapsePolicy(p CollapsePolicy) Option {
	return func(o *Options) { o.OnCollapse = p }
}

// WithCollapseRetries bounds transparent coin re-seeding.
func WithCollapseRetries(n int) Option {
	return func(o *Options) { o.CollapseRetries = n }
}

// DefaultOptions returns Options with documented defaults applied.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		MaxIterations:   DefaultMaxIterations,
		Tolerance:       DefaultTolerance,
		Seed:            0,
		CollapseRetries: DefaultCollapseRetries,
		OnCollapse:      ReseedOnCollapse,
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Model is a fitted binomial mixture.
type Model struct {
	// Weights are the K mixing proportions; they sum to 1.
	Weights []float64

	// Biases are the K per-coin success probabilities in (0,1).
	Biases []float64

	// LogLikelihood is the total data log-likelihood under the model.
	LogLikelihood float64

	// Iterations is the number of EM rounds performed.
	Iterations int

	// Converged reports whether Tolerance was met before MaxIterations.
	Converged bool
}
