package dataset

import "gonum.org/v1/gonum/mat"

// Dataset is an ordered collection of m feature vectors of fixed dimension n,
// each paired with a label in {-1, +1}. It is created once by New and treated
// as read-only for the lifetime of any model trained on it.
type Dataset struct {
	features *mat.Dense // m×n backing matrix, row-major
	labels   []float64  // len m, values in {-1, +1}
	m        int        // number of examples
	n        int        // feature dimension
}

// New validates X and y and builds a Dataset backed by a single contiguous
// allocation. The input slices are copied; callers may reuse them afterwards.
//
// Contracts:
//   - len(X) ≥ 1 and every row has the same non-zero length (ErrEmptyDataset,
//     ErrRaggedMatrix otherwise).
//   - len(y) == len(X) (ErrLabelMismatch otherwise).
//   - every label is exactly -1 or +1 (ErrBadLabel otherwise).
//
// Complexity: O(m·n) time, O(m·n) space.
func New(X [][]float64, y []float64) (*Dataset, error) {
	m := len(X)
	if m == 0 {
		return nil, ErrEmptyDataset
	}
	n := len(X[0])
	if n == 0 {
		return nil, ErrEmptyDataset
	}
	if len(y) != m {
		return nil, ErrLabelMismatch
	}

	flat := make([]float64, m*n)
	for i, row := range X {
		if len(row) != n {
			return nil, ErrRaggedMatrix
		}
		copy(flat[i*n:(i+1)*n], row)
	}

	labels := make([]float64, m)
	for i, v := range y {
		if v != -1 && v != 1 {
			return nil, ErrBadLabel
		}
		labels[i] = v
	}

	return &Dataset{
		features: mat.NewDense(m, n, flat),
		labels:   labels,
		m:        m,
		n:        n,
	}, nil
}

// Len returns the number of training examples m.
func (d *Dataset) Len() int { return d.m }

// Dim returns the feature dimension n.
func (d *Dataset) Dim() int { return d.n }

// Row returns a view of the i-th feature vector. The returned slice aliases
// the backing store and must not be modified.
//
// Complexity: O(1), no allocation.
func (d *Dataset) Row(i int) []float64 { return d.features.RawRowView(i) }

// Label returns the label of the i-th example (-1 or +1).
func (d *Dataset) Label(i int) float64 { return d.labels[i] }

// Labels returns the full label vector. The returned slice aliases internal
// state and must not be modified.
func (d *Dataset) Labels() []float64 { return d.labels }

// Matrix exposes the feature matrix as a gonum mat.Matrix for consumers that
// operate on whole matrices (regression, GDA). Read-only by convention.
func (d *Dataset) Matrix() mat.Matrix { return d.features }
