// Package regression provides the plain gradient-descent fits that
// complement the SMO trainer: least-squares linear regression, logistic
// regression, and softmax (multinomial) regression.
//
// These models share one register:
//   - dense gonum-backed parameters (mat.VecDense / mat.Dense);
//   - batch gradient descent with a fixed learning rate and iteration
//     count, configured through Options;
//   - sentinel-error API: shape problems at Fit, ErrNotFitted on any read
//     path before Fit completes.
//
// They are deliberately simpler than package svm — no pair selection, no
// convergence detection; the iteration count is the only stopping rule.
//
// ⚙️ Usage:
//
//	var lin regression.Linear
//	if err := lin.Fit(X, y, regression.WithLearnRate(0.05)); err != nil { … }
//	yhat, err := lin.Predict(x)
package regression
