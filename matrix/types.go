// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense kernels.
// Errors and options live in dedicated files (errors.go, options.go).

package matrix

// Matrix is a two-dimensional float32 array with bounds-checked access.
// All kernels accept Matrix; *Dense operands unlock flat-slice fast paths,
// any other implementation is served through At/Set.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float32, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float32) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// PivotedLU is a row-pivoted factorization P·A = L·U.
// Perm[i] is the row of A that landed in row i; Sign is det(P) (±1).
type PivotedLU struct {
	L    *Dense  // unit lower triangular
	U    *Dense  // upper triangular
	Perm []int   // row permutation, len n
	Sign float32 // +1 for an even number of swaps, -1 for odd
}
