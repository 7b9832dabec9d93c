package svm

import (
	"errors"

	"github.com/katalvlaran/lvlsvm/kernel"
)

// Sentinel errors returned by the SVM trainer.
var (
	// ErrNotTrained indicates that Predict/Score/Accuracy was called before
	// Train completed on this machine.
	ErrNotTrained = errors.New("svm: machine is not trained")

	// ErrNilDataset indicates that a nil *dataset.Dataset was passed to Train.
	ErrNilDataset = errors.New("svm: dataset is nil")

	// ErrDimensionMismatch indicates an input vector whose length differs
	// from the training feature dimension.
	ErrDimensionMismatch = errors.New("svm: input dimension does not match training data")

	// ErrBadC indicates a non-positive box constraint C.
	ErrBadC = errors.New("svm: C must be positive")

	// ErrBadTol indicates a non-positive KKT tolerance.
	ErrBadTol = errors.New("svm: tol must be positive")

	// ErrBadEps indicates a non-positive numerical-change threshold.
	ErrBadEps = errors.New("svm: eps must be positive")
)

// Options configures a Machine.
//
// Kernel – tagged kernel configuration (see package kernel); validated once
// at construction, so an unknown kernel fails before any state is allocated.
// C – soft-margin box constraint; every alpha lives in [0, C]. Must be > 0.
// Tol – KKT-violation tolerance used by the pair selector. Must be > 0.
// Eps – relative threshold below which an alpha change is treated as
// numerical noise and rejected. Must be > 0.
// Seed – seed for the index-shuffling RNG; 0 selects a fixed default stream,
// so training is deterministic in every configuration.
type Options struct {
	Kernel kernel.Config
	C      float64
	Tol    float64
	Eps    float64
	Seed   int64
}

// Option is a functional option for configuring a Machine.
type Option func(*Options)

// WithKernel sets the kernel configuration.
func WithKernel(cfg kernel.Config) Option {
	return func(o *Options) {
		o.Kernel = cfg
	}
}

// WithC sets the soft-margin box constraint.
func WithC(c float64) Option {
	return func(o *Options) {
		o.C = c
	}
}

// WithTol sets the KKT-violation tolerance.
func WithTol(tol float64) Option {
	return func(o *Options) {
		o.Tol = tol
	}
}

// WithEps sets the minimal relative alpha change accepted as progress.
func WithEps(eps float64) Option {
	return func(o *Options) {
		o.Eps = eps
	}
}

// WithSeed sets the RNG seed for the pairing heuristics.
// Seed==0 keeps the fixed default stream (still deterministic).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// DefaultOptions returns the canonical configuration:
//
//   - Kernel: linear (Degree=2, Coef=1, Sigma=1 carried for easy switching)
//   - C:      100
//   - Tol:    0.1
//   - Eps:    1e-4
//   - Seed:   0 (fixed default stream)
func DefaultOptions() Options {
	return Options{
		Kernel: kernel.DefaultConfig(),
		C:      100,
		Tol:    0.1,
		Eps:    1e-4,
		Seed:   0,
	}
}

// validateOptions checks internal consistency of Options before any training
// state exists. Kernel validation is delegated to the kernel package so its
// sentinels (kernel.ErrUnknownKernel, …) surface unchanged.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if err := opts.Kernel.Validate(); err != nil {
		return err
	}
	if opts.C <= 0 {
		return ErrBadC
	}
	if opts.Tol <= 0 {
		return ErrBadTol
	}
	if opts.Eps <= 0 {
		return ErrBadEps
	}

	return nil
}
