package dataset

import "errors"

// Sentinel errors returned by Dataset construction.
var (
	// ErrEmptyDataset indicates that no training examples were provided.
	ErrEmptyDataset = errors.New("dataset: no training examples")

	// ErrRaggedMatrix indicates that feature rows have differing lengths.
	ErrRaggedMatrix = errors.New("dataset: feature rows have differing lengths")

	// ErrLabelMismatch indicates that the label count does not match the row count.
	ErrLabelMismatch = errors.New("dataset: label count does not match row count")

	// ErrBadLabel indicates a label outside {-1, +1}.
	ErrBadLabel = errors.New("dataset: labels must be -1 or +1")
)
