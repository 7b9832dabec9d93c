package svm

import "github.com/katalvlaran/lvlsvm/dataset"

// Machine is a binary soft-margin SVM classifier trained with Sequential
// Minimal Optimization. Create one with New, train it once with Train, then
// query it with Predict/Score/Accuracy. A Machine is not safe for concurrent
// use during Train; after Train returns, the model state is read-only and
// concurrent Predict calls are safe.
type Machine struct {
	opts    Options
	ds      *dataset.Dataset // training data, retained for kernel expansion
	alpha   []float64
	bias    float64
	trained bool
}

// New validates the configuration and returns an untrained Machine.
// An invalid configuration (unknown kernel, non-positive C/Tol/Eps) fails
// fast here, before any training state is allocated.
func New(options ...Option) (*Machine, error) {
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	return &Machine{opts: opts}, nil
}

// Train fits the machine to ds by SMO, alternating full sweeps over all
// examples with sweeps restricted to the non-bound set until neither makes
// progress. The trained alpha vector and bias are persisted on the Machine
// and the training data is retained for kernel expansion at prediction time.
//
// Training runs on the calling goroutine with no suspension points, no
// cancellation, and no timeout: a pathological dataset (non-separable with
// an ill-conditioned kernel) can iterate for a very long time. This is an
// accepted limitation of the optimizer, not a recoverable error.
//
// Retraining on a new dataset replaces the previous model entirely.
//
// Complexity: per sweep O(m³·n) worst case; total sweep count is
// data-dependent and unbounded in theory.
func (sm *Machine) Train(ds *dataset.Dataset) error {
	if ds == nil {
		return ErrNilDataset
	}

	ctx := newTrainingContext(ds, sm.opts)

	// Alternate FULL and NON_BOUND sweeps. A full sweep always hands off to
	// a non-bound sweep; a quiet non-bound sweep re-enters full mode; the
	// loop stops once a full sweep over every index finds nothing left to
	// change.
	numChanged := 0
	examineAll := true
	for numChanged > 0 || examineAll {
		numChanged = 0
		if examineAll {
			for j := 0; j < ds.Len(); j++ {
				if examineIndex(ctx, j) {
					numChanged++
				}
			}
		} else {
			for _, j := range ctx.nonBoundIndices() {
				if examineIndex(ctx, j) {
					numChanged++
				}
			}
		}

		if examineAll {
			examineAll = false
		} else if numChanged == 0 {
			examineAll = true
		}
	}

	sm.ds = ds
	sm.alpha = ctx.alpha
	sm.bias = ctx.bias
	sm.trained = true

	return nil
}

// Trained reports whether Train has completed on this machine.
func (sm *Machine) Trained() bool { return sm.trained }

// Alphas returns a copy of the trained Lagrange multipliers.
// Returns ErrNotTrained before Train completes.
func (sm *Machine) Alphas() ([]float64, error) {
	if !sm.trained {
		return nil, ErrNotTrained
	}
	out := make([]float64, len(sm.alpha))
	copy(out, sm.alpha)

	return out, nil
}

// Bias returns the trained bias term.
// Returns ErrNotTrained before Train completes.
func (sm *Machine) Bias() (float64, error) {
	if !sm.trained {
		return 0, ErrNotTrained
	}

	return sm.bias, nil
}

// SupportVectorCount returns the number of training examples with
// alpha > 0. Returns ErrNotTrained before Train completes.
func (sm *Machine) SupportVectorCount() (int, error) {
	if !sm.trained {
		return 0, ErrNotTrained
	}
	count := 0
	for _, a := range sm.alpha {
		if a > 0 {
			count++
		}
	}

	return count, nil
}
