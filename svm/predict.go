package svm

// Score returns the raw decision-function margin
//
//	f(x) = Σ_i alpha_i · y_i · k(x_i, x) + bias
//
// for a feature vector x. Returns ErrNotTrained before Train completes and
// ErrDimensionMismatch when len(x) differs from the training dimension.
//
// Complexity: O(m·n) time.
func (sm *Machine) Score(x []float64) (float64, error) {
	if !sm.trained {
		return 0, ErrNotTrained
	}
	if len(x) != sm.ds.Dim() {
		return 0, ErrDimensionMismatch
	}

	sum := sm.bias
	for i := 0; i < sm.ds.Len(); i++ {
		if sm.alpha[i] == 0 {
			continue
		}
		sum += sm.alpha[i] * sm.ds.Label(i) * sm.opts.Kernel.Eval(sm.ds.Row(i), x)
	}

	return sum, nil
}

// Predict classifies x as +1 or -1 by the sign of the decision function,
// with ties (score == 0) resolved to +1. Prediction never mutates the model;
// repeated calls on the same input return the same label.
//
// Returns ErrNotTrained before Train completes.
func (sm *Machine) Predict(x []float64) (float64, error) {
	score, err := sm.Score(x)
	if err != nil {
		return 0, err
	}
	if score >= 0 {
		return 1, nil
	}

	return -1, nil
}

// Accuracy applies Predict to every row of X and reports the fraction that
// agrees with the machine's *stored training labels*, position by position.
//
// Note: this contract is inherited as documented — the comparison uses the
// training label vector regardless of what X contains, so it only measures
// accuracy when X is the training matrix in original order. For held-out
// data use AccuracyAgainst with X's own labels.
//
// Returns ErrNotTrained before Train completes and ErrDimensionMismatch when
// len(X) differs from the training-set size or a row has the wrong width.
func (sm *Machine) Accuracy(X [][]float64) (float64, error) {
	if !sm.trained {
		return 0, ErrNotTrained
	}
	if len(X) != sm.ds.Len() {
		return 0, ErrDimensionMismatch
	}

	return sm.AccuracyAgainst(X, sm.ds.Labels())
}

// AccuracyAgainst applies Predict to every row of X and reports the fraction
// that agrees with the matching entry of y.
//
// Contracts:
//   - len(X) == len(y) and len(X) ≥ 1 (ErrDimensionMismatch otherwise).
//   - every row of X has the training feature dimension.
//
// Complexity: O(len(X)·m·n) time.
func (sm *Machine) AccuracyAgainst(X [][]float64, y []float64) (float64, error) {
	if !sm.trained {
		return 0, ErrNotTrained
	}
	if len(X) == 0 || len(X) != len(y) {
		return 0, ErrDimensionMismatch
	}

	correct := 0
	for i, row := range X {
		label, err := sm.Predict(row)
		if err != nil {
			return 0, err
		}
		if label == y[i] {
			correct++
		}
	}

	return float64(correct) / float64(len(X)), nil
}
