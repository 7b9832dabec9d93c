package gda

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlsvm/dataset"
)

// Sentinel errors returned by the GDA fit.
var (
	// ErrNotFitted indicates a prediction attempt before Fit completed.
	ErrNotFitted = errors.New("gda: model is not fitted")

	// ErrNilDataset indicates a nil *dataset.Dataset passed to Fit.
	ErrNilDataset = errors.New("gda: dataset is nil")

	// ErrSingleClass indicates training data containing only one label.
	ErrSingleClass = errors.New("gda: both classes must be present")

	// ErrSingularCovariance indicates that the pooled covariance is not
	// positive definite (degenerate or collinear features).
	ErrSingularCovariance = errors.New("gda: pooled covariance is singular")

	// ErrDimensionMismatch indicates an input vector of the wrong width.
	ErrDimensionMismatch = errors.New("gda: input dimension does not match training data")
)

// Model is a binary GDA classifier over labels {-1, +1}. The zero value is
// ready for Fit.
type Model struct {
	phi    float64       // P(y = +1)
	muNeg  *mat.VecDense // mean of the -1 class
	muPos  *mat.VecDense // mean of the +1 class
	chol   mat.Cholesky  // factorization of the pooled covariance
	dim    int
	fitted bool
}

// Fit estimates the class prior, the per-class means, and the pooled
// covariance from ds in one pass each, then factorizes the covariance.
// Both classes must be present; a covariance that is not positive definite
// (e.g. fewer independent examples than features) yields
// ErrSingularCovariance.
//
// Complexity: O(m·n²) time, O(n²) space.
func (g *Model) Fit(ds *dataset.Dataset) error {
	if ds == nil {
		return ErrNilDataset
	}

	var (
		m      = ds.Len()
		n      = ds.Dim()
		nPos   int
		sumNeg = make([]float64, n)
		sumPos = make([]float64, n)
	)
	for i := 0; i < m; i++ {
		row := ds.Row(i)
		if ds.Label(i) == 1 {
			nPos++
			for k, v := range row {
				sumPos[k] += v
			}
		} else {
			for k, v := range row {
				sumNeg[k] += v
			}
		}
	}
	nNeg := m - nPos
	if nPos == 0 || nNeg == 0 {
		return ErrSingleClass
	}

	for k := range sumPos {
		sumPos[k] /= float64(nPos)
		sumNeg[k] /= float64(nNeg)
	}
	muPos := mat.NewVecDense(n, sumPos)
	muNeg := mat.NewVecDense(n, sumNeg)

	// Pooled covariance: Σ = (1/m) Σ_i (x_i − μ_{y_i})(x_i − μ_{y_i})ᵀ.
	var (
		cov  = mat.NewSymDense(n, nil)
		diff = mat.NewVecDense(n, nil)
	)
	for i := 0; i < m; i++ {
		x := mat.NewVecDense(n, ds.Row(i))
		if ds.Label(i) == 1 {
			diff.SubVec(x, muPos)
		} else {
			diff.SubVec(x, muNeg)
		}
		cov.SymRankOne(cov, 1/float64(m), diff)
	}

	if ok := g.chol.Factorize(cov); !ok {
		return ErrSingularCovariance
	}

	g.phi = float64(nPos) / float64(m)
	g.muPos = muPos
	g.muNeg = muNeg
	g.dim = n
	g.fitted = true

	return nil
}

// Fitted reports whether Fit has completed on this model.
func (g *Model) Fitted() bool { return g.fitted }

// Score returns the log-posterior odds
//
//	log P(y=+1|x) − log P(y=−1|x)
//
// under the fitted Gaussians; positive means the +1 class is more likely.
// Returns ErrNotFitted before Fit and ErrDimensionMismatch on wrong width.
//
// Complexity: O(n²) time per call (two triangular solves).
func (g *Model) Score(x []float64) (float64, error) {
	if !g.fitted {
		return 0, ErrNotFitted
	}
	if len(x) != g.dim {
		return 0, ErrDimensionMismatch
	}

	xv := mat.NewVecDense(g.dim, x)

	var diff, sol mat.VecDense
	diff.SubVec(xv, g.muPos)
	if err := g.chol.SolveVecTo(&sol, &diff); err != nil {
		return 0, ErrSingularCovariance
	}
	dPos := mat.Dot(&diff, &sol)

	diff.SubVec(xv, g.muNeg)
	if err := g.chol.SolveVecTo(&sol, &diff); err != nil {
		return 0, ErrSingularCovariance
	}
	dNeg := mat.Dot(&diff, &sol)

	return math.Log(g.phi/(1-g.phi)) + (dNeg-dPos)/2, nil
}

// Predict classifies x as +1 or -1 by the sign of the log-posterior odds,
// with ties resolved to +1.
func (g *Model) Predict(x []float64) (float64, error) {
	score, err := g.Score(x)
	if err != nil {
		return 0, err
	}
	if score >= 0 {
		return 1, nil
	}

	return -1, nil
}
