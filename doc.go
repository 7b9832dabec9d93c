// Package lvlsvm is your in-memory playground for training classical
// classifiers — from a kernelized SVM fitted by Sequential Minimal
// Optimization to gradient-descent regressors and Gaussian Discriminant
// Analysis.
//
// 🚀 What is lvlsvm?
//
//	A small, deterministic machine-learning library that brings together:
//		• SMO-trained SVM: soft margin, KKT-driven pair selection, three kernels
//		• Kernels: linear, polynomial, radial basis (Gaussian)
//		• Regressors: linear, logistic and softmax regression via gradient descent
//		• Generative: closed-form Gaussian Discriminant Analysis
//		• Datasets: validated dense feature matrices with ±1 labels
//
// ✨ Why choose lvlsvm?
//
//   - Deterministic – every randomized heuristic draws from a seedable RNG
//   - Strict sentinels – configuration and state errors are errors.Is-testable
//   - Pure Go – gonum for the linear algebra, no cgo
//   - Single-threaded training – no locks, no hidden goroutines
//
// Under the hood, everything is organized in five subpackages:
//
//	dataset/    — dense training sets: feature matrix + {−1,+1} labels
//	kernel/     — tagged kernel configurations and their evaluation
//	svm/        — the SMO optimizer: pair selection, analytic step, sweeps
//	regression/ — linear, logistic and softmax regression (batch GD)
//	gda/        — Gaussian Discriminant Analysis (closed form)
//
// Quick ASCII example:
//
//	    − − │ + +
//	    − − │ + +
//	        ↑
//	   separating hyperplane
//
//	two clusters split on the first coordinate; the SVM recovers the
//	boundary from the support vectors alone.
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/lvlsvm
package lvlsvm
