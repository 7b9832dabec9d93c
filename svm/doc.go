// Package svm trains a binary soft-margin Support Vector Machine with the
// Sequential Minimal Optimization (SMO) algorithm.
//
// 🚀 What is SMO?
//
//	SMO decomposes the SVM quadratic program into the smallest sub-problem
//	with a closed-form solution: two Lagrange multipliers at a time. The
//	trainer repeatedly picks a KKT-violating example, pairs it with a
//	partner via randomized heuristics, solves the two-variable problem
//	analytically, and reconciles the bias — until no example violates
//	optimality within tolerance.
//
// ✨ Key features:
//   - three kernels via package kernel: linear, polynomial, RBF
//   - soft margin with box constraint 0 ≤ alpha_i ≤ C
//   - alternating full / non-bound sweeps (Platt's outer loop)
//   - deterministic training: the shuffling RNG is seedable via WithSeed
//   - sentinel-error API: configuration errors at New, ErrNotTrained at
//     Predict-before-Train; numerical dead ends inside the optimizer are
//     silent skips, never errors
//
// ⚙️ Usage:
//
//	ds, err := dataset.New(X, y) // labels in {-1, +1}
//	if err != nil { … }
//
//	m, err := svm.New(
//	    svm.WithKernel(kernel.Config{Kind: kernel.RBF, Sigma: 1}),
//	    svm.WithC(10),
//	    svm.WithSeed(42),
//	)
//	if err != nil { … }
//
//	if err := m.Train(ds); err != nil { … }
//	label, err := m.Predict(point) // +1 or -1
//
// Guarantees after a successful Train:
//   - every alpha_i lies in [0, C];
//   - Σ alpha_i·y_i is preserved by every pair update;
//   - every training example satisfies the KKT conditions within Tol.
//
// Limitations:
//   - binary classification only; no multi-class reduction;
//   - no kernel-matrix caching: the decision function is O(m·n) per call;
//   - the non-negative-curvature branch of the two-variable sub-problem is
//     not implemented (such pairs are skipped);
//   - no cancellation or timeout: a non-separable, ill-conditioned dataset
//     can keep the outer loop busy indefinitely.
package svm
