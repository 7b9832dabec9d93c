package svm

import "math"

// snapTol is the relative rounding threshold for snapping an alpha onto a
// box end. It sits far below any meaningful Eps yet above float64 round-off.
const snapTol = 1e-12

// snapToBox pins a to 0 or c when it lies within snapTol·c of that bound.
func snapToBox(a, c float64) float64 {
	if a <= snapTol*c {
		return 0
	}
	if a >= c-snapTol*c {
		return c
	}

	return a
}

// optimizePair solves the analytic two-variable sub-problem for training
// indices i and j, updating ctx.alpha and ctx.bias in place. It returns true
// only when a non-negligible update was applied; every skip condition
// (identical indices, degenerate box, non-negative curvature, sub-epsilon
// move) is a silent "no improving move", never an error.
//
// The update is derived to preserve Σ alpha_i·y_i, and both new alphas are
// clipped into the box [0, C], so the training invariants hold after every
// successful call.
//
// Known incompleteness: textbook SMO handles eta ≥ 0 by evaluating the
// objective at both clipped bounds; this implementation skips the pair
// instead. Callers must treat that as "no progress on this pair".
//
// Complexity: O(m·n) time, dominated by the two error-term evaluations.
func optimizePair(ctx *trainingContext, i, j int) bool {
	if i == j {
		return false
	}

	var (
		c  = ctx.opts.C
		ai = ctx.alpha[i]
		aj = ctx.alpha[j]
		yi = ctx.ds.Label(i)
		yj = ctx.ds.Label(j)
	)

	// Box bounds for alpha[j] from the linear constraint.
	var lo, hi float64
	if yi == yj {
		lo = math.Max(0, ai+aj-c)
		hi = math.Min(c, ai+aj)
	} else {
		lo = math.Max(0, aj-ai)
		hi = math.Min(c, c+aj-ai)
	}
	if lo == hi {
		return false
	}

	// Errors under the pre-update state; the bias formulas below reuse them.
	ei := ctx.errorAt(i)
	ej := ctx.errorAt(j)

	kii := ctx.opts.Kernel.Eval(ctx.ds.Row(i), ctx.ds.Row(i))
	kij := ctx.opts.Kernel.Eval(ctx.ds.Row(i), ctx.ds.Row(j))
	kjj := ctx.opts.Kernel.Eval(ctx.ds.Row(j), ctx.ds.Row(j))

	// Second derivative of the objective along the constraint line.
	eta := 2*kij - kii - kjj
	if eta >= 0 {
		return false
	}

	// Unconstrained optimum, clipped into [lo, hi].
	ajNew := aj - yj*(ei-ej)/eta
	if ajNew < lo {
		ajNew = lo
	} else if ajNew > hi {
		ajNew = hi
	}

	// Reject numerically negligible moves to avoid oscillation.
	eps := ctx.opts.Eps
	if math.Abs(ajNew-aj) < eps*(ajNew+aj+eps) {
		return false
	}

	// To prevent precision problems: round-off from the clip and the
	// constraint-line recovery below must not leave an alpha outside
	// [0, C] or a phantom support vector a hair above zero.
	ajNew = snapToBox(ajNew, c)

	// Recover alpha[i] from the preserved sum alpha_i·y_i + alpha_j·y_j.
	aiNew := snapToBox(ai+yi*yj*(aj-ajNew), c)

	// Bias reconciliation: candidate biases consistent with example i (b1)
	// and example j (b2), from the pre-update errors and kernel values.
	b1 := ctx.bias - ei - yi*(aiNew-ai)*kii - yj*(ajNew-aj)*kij
	b2 := ctx.bias - ej - yi*(aiNew-ai)*kij - yj*(ajNew-aj)*kjj
	switch {
	case aiNew > 0 && aiNew < c:
		ctx.bias = b1
	case ajNew > 0 && ajNew < c:
		ctx.bias = b2
	default:
		ctx.bias = (b1 + b2) / 2
	}

	ctx.alpha[i] = aiNew
	ctx.alpha[j] = ajNew

	return true
}
