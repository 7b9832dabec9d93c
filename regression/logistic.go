package regression

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Logistic is a binary logistic-regression classifier fitted by batch
// gradient descent on the cross-entropy loss. Labels are {-1, +1} on the
// API surface and mapped to {0, 1} internally. The zero value is ready
// for Fit.
type Logistic struct {
	weights *mat.VecDense
	bias    float64
	dim     int
	fitted  bool
}

// Fit runs Iters full-batch gradient passes. y must hold labels in
// {-1, +1} (ErrTargetMismatch on length disagreement, ErrBadClassLabel on
// any other value).
//
// Update rule per pass, with p = sigmoid(A·w + b) and t the 0/1 targets:
//
//	w ← w − LearnRate/m · Aᵀ·(p − t)
//	b ← b − LearnRate/m · Σ (p − t)
//
// Complexity: O(Iters·m·n) time, O(m+n) space.
func (l *Logistic) Fit(X [][]float64, y []float64, options ...Option) error {
	opts, err := buildOptions(options)
	if err != nil {
		return err
	}
	m, n, err := checkMatrix(X)
	if err != nil {
		return err
	}
	if len(y) != m {
		return ErrTargetMismatch
	}

	// Map {-1,+1} onto {0,1} targets.
	target := make([]float64, m)
	for i, v := range y {
		switch v {
		case -1:
			target[i] = 0
		case 1:
			target[i] = 1
		default:
			return ErrBadClassLabel
		}
	}

	a := denseFromRows(X, m, n)

	var (
		w    = mat.NewVecDense(n, nil)
		b    float64
		z    = mat.NewVecDense(m, nil)
		grad = mat.NewVecDense(n, nil)
		step = opts.LearnRate / float64(m)
	)
	for it := 0; it < opts.Iters; it++ {
		// z = sigmoid(A·w + b) − t, reused as the residual vector.
		z.MulVec(a, w)
		sum := 0.0
		for i := 0; i < m; i++ {
			r := sigmoid(z.AtVec(i)+b) - target[i]
			z.SetVec(i, r)
			sum += r
		}

		grad.MulVec(a.T(), z)
		w.AddScaledVec(w, -step, grad)
		b -= step * sum
	}

	l.weights = w
	l.bias = b
	l.dim = n
	l.fitted = true

	return nil
}

// PredictProb returns P(y = +1 | x) = sigmoid(w·x + b).
// Returns ErrNotFitted before Fit and ErrDimensionMismatch on wrong width.
func (l *Logistic) PredictProb(x []float64) (float64, error) {
	if !l.fitted {
		return 0, ErrNotFitted
	}
	if len(x) != l.dim {
		return 0, ErrDimensionMismatch
	}

	return sigmoid(mat.Dot(l.weights, mat.NewVecDense(l.dim, x)) + l.bias), nil
}

// Predict classifies x as +1 when P(y=+1|x) ≥ 0.5 and -1 otherwise.
func (l *Logistic) Predict(x []float64) (float64, error) {
	p, err := l.PredictProb(x)
	if err != nil {
		return 0, err
	}
	if p >= 0.5 {
		return 1, nil
	}

	return -1, nil
}

// sigmoid is the standard logistic function 1/(1+e^−z).
func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
