// Package dataset provides the dense in-memory training-set representation
// shared by every classifier in lvlsvm.
//
// A Dataset couples an m×n feature matrix with m labels in {−1, +1}.
// Construction validates shape and label domain once; after New returns,
// every consumer may assume a rectangular matrix and clean labels and skip
// re-validation on hot paths.
//
// The backing store is a single flat float64 slice wrapped by a
// gonum mat.Dense, so rows are contiguous and Row(i) is an O(1) view
// with no copying.
//
// Datasets are immutable by convention: no mutating methods are exported,
// and training code must never write through Row views.
package dataset
