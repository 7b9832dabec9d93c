package svm

import (
	"math/rand"

	"github.com/katalvlaran/lvlsvm/dataset"
)

// trainingContext bundles the mutable optimizer state for one Train call:
// the shared alpha vector, the bias, the immutable training data, and the
// injected RNG. It is passed explicitly into the selector and optimizer so
// ownership is visible and the pieces are testable in isolation.
//
// Exclusively owned by the single training goroutine; no locking.
type trainingContext struct {
	ds    *dataset.Dataset
	alpha []float64 // one Lagrange multiplier per example, each in [0, C]
	bias  float64
	opts  Options
	rng   *rand.Rand
}

// newTrainingContext creates the zero-initialized optimizer state:
// alpha = 0 vector, bias = 0, RNG per the seed-0 policy.
//
// Complexity: O(m) time and space.
func newTrainingContext(ds *dataset.Dataset, opts Options) *trainingContext {
	return &trainingContext{
		ds:    ds,
		alpha: make([]float64, ds.Len()),
		bias:  0,
		opts:  opts,
		rng:   rngFromSeed(opts.Seed),
	}
}

// score evaluates the decision function for a feature vector x under the
// current alpha/bias:
//
//	f(x) = Σ_i alpha_i · y_i · k(x_i, x) + bias
//
// Zero alphas are skipped; after convergence only support vectors
// contribute.
//
// Complexity: O(m·n) time under the naive (uncached) kernel, O(1) space.
func (ctx *trainingContext) score(x []float64) float64 {
	sum := ctx.bias
	for i := 0; i < ctx.ds.Len(); i++ {
		if ctx.alpha[i] == 0 {
			continue
		}
		sum += ctx.alpha[i] * ctx.ds.Label(i) * ctx.opts.Kernel.Eval(ctx.ds.Row(i), x)
	}

	return sum
}

// errorAt returns E_i = f(x_i) − y_i, the decision-function error on
// training example i under the current state.
func (ctx *trainingContext) errorAt(i int) float64 {
	return ctx.score(ctx.ds.Row(i)) - ctx.ds.Label(i)
}

// nonBoundIndices collects the indices with alpha strictly inside (0, C) —
// the non-bound set, recomputed fresh on every call.
//
// Complexity: O(m) time, O(k) space for k non-bound examples.
func (ctx *trainingContext) nonBoundIndices() []int {
	var idx []int
	for i, a := range ctx.alpha {
		if a > 0 && a < ctx.opts.C {
			idx = append(idx, i)
		}
	}

	return idx
}
