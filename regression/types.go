package regression

import "errors"

// Sentinel errors returned by the regression fits.
var (
	// ErrNotFitted indicates a prediction attempt before Fit completed.
	ErrNotFitted = errors.New("regression: model is not fitted")

	// ErrEmptyInput indicates an empty feature matrix.
	ErrEmptyInput = errors.New("regression: no training examples")

	// ErrRaggedMatrix indicates feature rows of differing lengths.
	ErrRaggedMatrix = errors.New("regression: feature rows have differing lengths")

	// ErrTargetMismatch indicates len(y) != len(X).
	ErrTargetMismatch = errors.New("regression: target count does not match row count")

	// ErrDimensionMismatch indicates an input vector of the wrong width.
	ErrDimensionMismatch = errors.New("regression: input dimension does not match training data")

	// ErrBadClassLabel indicates a softmax class label outside 0..Classes-1.
	ErrBadClassLabel = errors.New("regression: class label out of range")

	// ErrBadLearnRate indicates a non-positive learning rate.
	ErrBadLearnRate = errors.New("regression: learning rate must be positive")

	// ErrBadIters indicates a non-positive iteration count.
	ErrBadIters = errors.New("regression: iteration count must be positive")
)

// Options configures a gradient-descent fit.
//
// LearnRate – step size applied to every gradient update. Must be > 0.
// Iters – number of full-batch passes. Must be > 0; it is the only stopping
// rule (no convergence detection).
type Options struct {
	LearnRate float64
	Iters     int
}

// Option is a functional option for configuring a fit.
type Option func(*Options)

// WithLearnRate sets the gradient step size.
func WithLearnRate(lr float64) Option {
	return func(o *Options) {
		o.LearnRate = lr
	}
}

// WithIters sets the number of full-batch gradient passes.
func WithIters(n int) Option {
	return func(o *Options) {
		o.Iters = n
	}
}

// DefaultOptions returns the canonical fit configuration:
// LearnRate=0.01, Iters=1000.
func DefaultOptions() Options {
	return Options{
		LearnRate: 0.01,
		Iters:     1000,
	}
}

// buildOptions folds functional options over the defaults and validates.
func buildOptions(options []Option) (Options, error) {
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	if opts.LearnRate <= 0 {
		return Options{}, ErrBadLearnRate
	}
	if opts.Iters <= 0 {
		return Options{}, ErrBadIters
	}

	return opts, nil
}

// checkMatrix validates a raw feature matrix and returns (m, n).
func checkMatrix(X [][]float64) (int, int, error) {
	m := len(X)
	if m == 0 {
		return 0, 0, ErrEmptyInput
	}
	n := len(X[0])
	if n == 0 {
		return 0, 0, ErrEmptyInput
	}
	for _, row := range X {
		if len(row) != n {
			return 0, 0, ErrRaggedMatrix
		}
	}

	return m, n, nil
}
