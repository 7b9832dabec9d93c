package svm

// examineIndex checks whether training example j violates the KKT
// optimality conditions within Tol and, if so, searches for a partner index
// via two ordered heuristics, returning on the first successful pairing:
//
//  1. the non-bound set {i : 0 < alpha_i < C}, visited in a randomized
//     order (skipped when it holds fewer than two candidates);
//  2. all m indices, visited in a fresh random permutation.
//
// Returns true when some pair update was applied, false when j is already
// optimal or both heuristics exhaust without progress.
//
// Complexity: O(m²·n) worst case (every candidate pairing pays the
// optimizer's O(m·n) error evaluation).
func examineIndex(ctx *trainingContext, j int) bool {
	var (
		yj = ctx.ds.Label(j)
		aj = ctx.alpha[j]
		ej = ctx.errorAt(j)
		r  = ej * yj
	)

	// KKT-violation test within tolerance.
	if !((r < -ctx.opts.Tol && aj < ctx.opts.C) || (r > ctx.opts.Tol && aj > 0)) {
		return false
	}

	// Heuristic 1: non-bound partners in shuffled order.
	if nb := ctx.nonBoundIndices(); len(nb) > 1 {
		shuffleIntsInPlace(nb, ctx.rng)
		for _, i := range nb {
			if optimizePair(ctx, i, j) {
				return true
			}
		}
	}

	// Heuristic 2: the whole training set in a random permutation.
	for _, i := range permRange(ctx.ds.Len(), ctx.rng) {
		if optimizePair(ctx, i, j) {
			return true
		}
	}

	return false
}
