// Package kernel implements the similarity functions used by the SVM
// trainer: linear, polynomial, and radial-basis (Gaussian) kernels.
//
// 🚀 What is a kernel?
//
//	A kernel k(xi, xj) measures similarity between two feature vectors as
//	an inner product in an implicitly transformed space — the "kernel
//	trick". Swapping the kernel swaps the shape of the decision boundary
//	without touching the optimizer.
//
// ✨ Supported kernels:
//   - Linear:     k(xi, xj) = xi · xj
//   - Poly:       k(xi, xj) = (xi · xj + Coef)^Degree
//   - RBF:        k(xi, xj) = exp(−‖xi−xj‖² / (2·Sigma²))
//
// Design:
//   - Selection is by configuration value (a tagged Config), not runtime
//     type dispatch: a single Eval with a switch keeps the innermost
//     training loop free of interface calls.
//   - Config.Validate runs once at model construction; an unrecognized
//     kernel is a configuration error (ErrUnknownKernel), never a runtime
//     one.
//   - Eval is pure, deterministic, and symmetric in its arguments.
//
// ⚙️ Usage:
//
//	cfg := kernel.Config{Kind: kernel.RBF, Sigma: 0.5}
//	if err := cfg.Validate(); err != nil { … }
//	sim := cfg.Eval(a, b)
package kernel
