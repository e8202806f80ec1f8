package gmm

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by Fit and model methods.
var (
	// ErrEmptyDataset indicates a dataset with no points.
	ErrEmptyDataset = errors.New("gmm: dataset is empty")

	// ErrRaggedData indicates points of unequal (or zero) dimensionality.
	ErrRaggedData = errors.New("gmm: points must share one non-zero dimensionality")

	// ErrNonFiniteData indicates a NaN or ±Inf feature value in the dataset.
	ErrNonFiniteData = errors.New("gmm: dataset contains non-finite values")

	// ErrBadComponents indicates a requested component count K ≤ 0.
	ErrBadComponents = errors.New("gmm: component count must be positive")

	// ErrFewerPointsThanComponents indicates K > N; such a mixture is
	// under-determined and is rejected before any computation.
	ErrFewerPointsThanComponents = errors.New("gmm: more components than data points")

	// ErrBadIterations indicates MaxIterations < 1.
	ErrBadIterations = errors.New("gmm: MaxIterations must be at least 1")

	// ErrBadTolerance indicates a negative or NaN convergence tolerance.
	ErrBadTolerance = errors.New("gmm: Tolerance must be non-negative")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("gmm: Workers must be non-negative")

	// ErrBadRetries indicates a negative collapse-retry budget.
	ErrBadRetries = errors.New("gmm: CollapseRetries must be non-negative")

	// ErrBadInitialModel indicates a caller-supplied starting model whose
	// shape (K, Dim, weights) does not match the requested fit, or whose
	// parameters are non-finite or off the weight simplex.
	ErrBadInitialModel = errors.New("gmm: invalid initial model")

	// ErrDimensionMismatch indicates a query point whose length differs
	// from the model dimensionality.
	ErrDimensionMismatch = errors.New("gmm: point dimensionality mismatch")

	// ErrNumericalDegeneracy indicates a covariance matrix that became
	// numerically singular or indefinite during density evaluation.
	ErrNumericalDegeneracy = errors.New("gmm: covariance is numerically degenerate")

	// ErrComponentCollapse indicates a component whose effective
	// responsibility mass rounded to zero during the M-step.
	ErrComponentCollapse = errors.New("gmm: component responsibility mass collapsed")
)

// TerminationReason reports why a fit stopped.
type TerminationReason int

const (
	// Converged – successive log-likelihood values differed by less than
	// Tolerance. The usual, healthy outcome.
	Converged TerminationReason = iota

	// MaxIterationsReached – the iteration cap fired first. Not an error:
	// the last estimate is still returned and often usable.
	MaxIterationsReached

	// Failed – an unrecovered degeneracy or collapse; Fit also returns a
	// non-nil error and the last valid model.
	Failed
)

// String returns a short human-readable reason tag.
func (r TerminationReason) String() string {
	switch r {
	case Converged:
		return "converged"
	case MaxIterationsReached:
		return "max-iterations"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// CollapsePolicy selects how the driver reacts to a collapsed component
// or a degenerate covariance inside an iteration.
type CollapsePolicy int

const (
	// ReseedOnCollapse re-draws the offending component (mean ← random
	// data point, covariance ← dataset global covariance or a scaled
	// identity when that is itself degenerate, weight ← 1/K, weights
	// renormalized), at most CollapseRetries times per fit.
	ReseedOnCollapse CollapsePolicy = iota

	// FailOnCollapse aborts the fit on the first collapse or degeneracy.
	FailOnCollapse
)

// MixtureModel holds the parameters of a K-component Gaussian mixture
// over D-dimensional data. During fitting it is owned exclusively by the
// driver; the value returned by Fit is a private copy the caller may keep.
type MixtureModel struct {
	// K is the number of components; fixed for the lifetime of one fit.
	K int

	// Dim is the data dimensionality D.
	Dim int

	// Weights are the K mixing proportions; non-negative, summing to 1.
	Weights []float64

	// Means holds K mean vectors of length Dim.
	Means [][]float64

	// Covariances holds K symmetric positive-definite Dim×Dim matrices.
	Covariances []*mat.SymDense
}

// Clone returns a deep copy of the model.
func (m *MixtureModel) Clone() *MixtureModel {
	cp := &MixtureModel{
		K:           m.K,
		Dim:         m.Dim,
		Weights:     append([]float64(nil), m.Weights...),
		Means:       make([][]float64, m.K),
		Covariances: make([]*mat.SymDense, m.K),
	}
	for k := 0; k < m.K; k++ {
		cp.Means[k] = append([]float64(nil), m.Means[k]...)
		sym := mat.NewSymDense(m.Dim, nil)
		sym.CopySym(m.Covariances[k])
		cp.Covariances[k] = sym
	}

	return cp
}

// FitDiagnostics reports how a fit terminated.
type FitDiagnostics struct {
	// Iterations is the number of completed EM iterations.
	Iterations int

	// LogLikelihood is the total log-likelihood of the returned model.
	LogLikelihood float64

	// History holds the log-likelihood recorded at every iteration, in
	// order. Non-decreasing up to floating-point tolerance on healthy fits.
	History []float64

	// Reason tells why iteration stopped.
	Reason TerminationReason
}

// Defaults — single source of truth for DefaultOptions.
const (
	// DefaultMaxIterations caps EM iterations when the caller sets nothing.
	DefaultMaxIterations = 100

	// DefaultTolerance is the log-likelihood delta below which two
	// successive iterations count as converged. Zero disables the check
	// entirely, leaving MaxIterations as the only stop condition.
	DefaultTolerance = 1e-6

	// DefaultCollapseRetries bounds transparent component re-seeding.
	DefaultCollapseRetries = 3
)

// Options configures a single call to Fit.
//
// MaxIterations   – iteration cap (≥ 1).
// Tolerance       – convergence threshold on the log-likelihood delta (≥ 0).
// Seed            – RNG seed for initialization; 0 selects a fixed default.
// Workers         – goroutines for the E-step fan-out; 0 or 1 means serial.
// CollapseRetries – re-seed budget under ReseedOnCollapse (≥ 0).
// OnCollapse      – recovery policy for collapse/degeneracy faults.
// Initial         – optional caller-supplied starting model; when set, the
// random initialization is skipped and Seed only drives re-seeding.
type Options struct {
	MaxIterations   int
	Tolerance       float64
	Seed            int64
	Workers         int
	CollapseRetries int
	OnCollapse      CollapsePolicy
	Initial         *MixtureModel
}

// Option is a functional setter for Options.
type Option func(*Options)

// WithMaxIterations sets the iteration cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithTolerance sets the convergence threshold on the log-likelihood delta.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithSeed pins the initialization RNG for reproducible fits.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers sets the E-step fan-out width.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithCollapsePolicy selects the collapse/degeneracy recovery policy.
func WithCollapsePolicy(p CollapsePolicy) Option {
	return func(o *Options) { o.OnCollapse = p }
}

// WithCollapseRetries bounds transparent component re-seeding.
func WithCollapseRetries(n int) Option {
	return func(o *Options) { o.CollapseRetries = n }
}

// WithInitial supplies the starting parameters verbatim, e.g. to resume a
// previous fit or to verify a fixed point. The model is cloned on entry.
func WithInitial(m *MixtureModel) Option {
	return func(o *Options) { o.Initial = m }
}

// DefaultOptions returns Options with documented defaults applied.
// Use the With* setters (or plain field writes) to override.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		MaxIterations:   DefaultMaxIterations,
		Tolerance:       DefaultTolerance,
		Seed:            0,
		Workers:         1,
		CollapseRetries: DefaultCollapseRetries,
		OnCollapse:      ReseedOnCollapse,
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
