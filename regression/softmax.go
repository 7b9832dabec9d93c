package regression

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Softmax is a multinomial (softmax) regression classifier over integer
// class labels 0..K-1, fitted by batch gradient descent on the
// cross-entropy loss. The zero value is ready for Fit.
type Softmax struct {
	weights *mat.Dense // n×K, one column of weights per class
	bias    []float64  // len K
	dim     int
	classes int
	fitted  bool
}

// Fit runs Iters full-batch gradient passes. classes fixes K; every label
// must lie in 0..K-1 (ErrBadClassLabel otherwise).
//
// Update rule per pass, with P the m×K row-softmax of A·W + b and Y the
// one-hot targets:
//
//	W ← W − LearnRate/m · Aᵀ·(P − Y)
//	b ← b − LearnRate/m · colsum(P − Y)
//
// Complexity: O(Iters·m·n·K) time, O(m·K + n·K) space.
func (s *Softmax) Fit(X [][]float64, labels []int, classes int, options ...Option) error {
	opts, err := buildOptions(options)
	if err != nil {
		return err
	}
	m, n, err := checkMatrix(X)
	if err != nil {
		return err
	}
	if len(labels) != m {
		return ErrTargetMismatch
	}
	if classes < 2 {
		return ErrBadClassLabel
	}
	for _, c := range labels {
		if c < 0 || c >= classes {
			return ErrBadClassLabel
		}
	}

	a := denseFromRows(X, m, n)

	var (
		w     = mat.NewDense(n, classes, nil)
		b     = make([]float64, classes)
		resid = mat.NewDense(m, classes, nil)
		grad  = mat.NewDense(n, classes, nil)
		step  = opts.LearnRate / float64(m)
		row   = make([]float64, classes)
	)
	for it := 0; it < opts.Iters; it++ {
		// resid = softmax(A·W + b) − onehot(labels), row by row.
		resid.Mul(a, w)
		for i := 0; i < m; i++ {
			copy(row, resid.RawRowView(i))
			floats.Add(row, b)
			softmaxInPlace(row)
			row[labels[i]]--
			resid.SetRow(i, row)
		}

		// W ← W − step·Aᵀ·resid ; b ← b − step·colsum(resid)
		grad.Mul(a.T(), resid)
		w.Add(w, scaled(grad, -step))
		for k := 0; k < classes; k++ {
			sum := 0.0
			for i := 0; i < m; i++ {
				sum += resid.At(i, k)
			}
			b[k] -= step * sum
		}
	}

	s.weights = w
	s.bias = b
	s.dim = n
	s.classes = classes
	s.fitted = true

	return nil
}

// PredictProb returns the class-probability vector softmax(Wᵀx + b).
// Returns ErrNotFitted before Fit and ErrDimensionMismatch on wrong width.
func (s *Softmax) PredictProb(x []float64) ([]float64, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}
	if len(x) != s.dim {
		return nil, ErrDimensionMismatch
	}

	probs := make([]float64, s.classes)
	xv := mat.NewVecDense(s.dim, x)
	for k := 0; k < s.classes; k++ {
		probs[k] = mat.Dot(s.weights.ColView(k), xv) + s.bias[k]
	}
	softmaxInPlace(probs)

	return probs, nil
}

// Predict returns the most probable class index for x.
func (s *Softmax) Predict(x []float64) (int, error) {
	probs, err := s.PredictProb(x)
	if err != nil {
		return 0, err
	}

	return floats.MaxIdx(probs), nil
}

// softmaxInPlace replaces z with softmax(z), shifted by max(z) for
// numerical stability.
func softmaxInPlace(z []float64) {
	shift := floats.Max(z)
	sum := 0.0
	for i, v := range z {
		e := math.Exp(v - shift)
		z[i] = e
		sum += e
	}
	floats.Scale(1/sum, z)
}

// scaled returns c·M as a fresh matrix.
func scaled(m *mat.Dense, c float64) *mat.Dense {
	var out mat.Dense
	out.Scale(c, m)

	return &out
}
