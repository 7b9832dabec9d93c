// Package gda implements binary Gaussian Discriminant Analysis: a
// closed-form generative classifier that models each class as a Gaussian
// with its own mean and a shared covariance matrix.
//
// Unlike the iterative trainers in this module, Fit is a single pass:
// class prior, per-class means, and the pooled covariance are computed
// directly from the data, and the covariance is factorized once (Cholesky)
// so prediction solves two triangular systems instead of inverting.
//
// Prediction compares class-conditional log densities weighted by the
// priors; with a shared covariance the resulting decision boundary is
// linear, matching logistic regression in the well-specified limit.
//
// ⚙️ Usage:
//
//	var g gda.Model
//	if err := g.Fit(ds); err != nil { … } // ds labels in {-1, +1}
//	label, err := g.Predict(x)            // +1 or -1
package gda
