package regression

import "gonum.org/v1/gonum/mat"

// Linear is a least-squares linear regressor fitted by batch gradient
// descent on the mean squared error. The zero value is ready for Fit.
type Linear struct {
	weights *mat.VecDense // n×1
	bias    float64
	dim     int
	fitted  bool
}

// Fit runs Iters full-batch gradient-descent passes over X with targets y,
// starting from zero weights. Refitting replaces the previous parameters.
//
// Update rule per pass, with A the m×n feature matrix and r = A·w + b − y:
//
//	w ← w − LearnRate/m · Aᵀ·r
//	b ← b − LearnRate/m · Σ r
//
// Complexity: O(Iters·m·n) time, O(m+n) space.
func (l *Linear) Fit(X [][]float64, y []float64, options ...Option) error {
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

	a := denseFromRows(X, m, n)
	target := mat.NewVecDense(m, append([]float64(nil), y...))

	var (
		w    = mat.NewVecDense(n, nil)
		b    float64
		res  = mat.NewVecDense(m, nil)
		grad = mat.NewVecDense(n, nil)
		step = opts.LearnRate / float64(m)
	)
	for it := 0; it < opts.Iters; it++ {
		// r = A·w + b − y
		res.MulVec(a, w)
		for i := 0; i < m; i++ {
			res.SetVec(i, res.AtVec(i)+b-target.AtVec(i))
		}

		// w ← w − step·Aᵀ·r ; b ← b − step·Σr
		grad.MulVec(a.T(), res)
		w.AddScaledVec(w, -step, grad)

		sum := 0.0
		for i := 0; i < m; i++ {
			sum += res.AtVec(i)
		}
		b -= step * sum
	}

	l.weights = w
	l.bias = b
	l.dim = n
	l.fitted = true

	return nil
}

// Predict returns the fitted regression value w·x + b.
// Returns ErrNotFitted before Fit and ErrDimensionMismatch on wrong width.
func (l *Linear) Predict(x []float64) (float64, error) {
	if !l.fitted {
		return 0, ErrNotFitted
	}
	if len(x) != l.dim {
		return 0, ErrDimensionMismatch
	}

	return mat.Dot(l.weights, mat.NewVecDense(l.dim, x)) + l.bias, nil
}

// Weights returns a copy of the fitted weight vector.
// Returns ErrNotFitted before Fit completes.
func (l *Linear) Weights() ([]float64, error) {
	if !l.fitted {
		return nil, ErrNotFitted
	}
	out := make([]float64, l.dim)
	copy(out, l.weights.RawVector().Data)

	return out, nil
}

// denseFromRows copies a validated rectangular [][]float64 into a mat.Dense.
func denseFromRows(X [][]float64, m, n int) *mat.Dense {
	flat := make([]float64, m*n)
	for i, row := range X {
		copy(flat[i*n:(i+1)*n], row)
	}

	return mat.NewDense(m, n, flat)
}
