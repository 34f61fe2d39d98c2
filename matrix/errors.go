// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every kernel returns one of these (possibly wrapped with an
// operation tag) and tests match them via errors.Is. No kernel panics on
// user-triggered error conditions; panics are reserved for programmer errors
// in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf("Op", err) so the
// final text reads "Inverse: Determinant: LU: matrix: zero pivot" while
// errors.Is still matches the sentinel.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape (dims/square/vector/mismatch) -> numeric (zero pivot/singular).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrAllocation is returned when a buffer of rows*cols elements cannot be
	// obtained: the product overflows int or exceeds MaxElements.
	ErrAllocation = errors.New("matrix: buffer allocation failed")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSizeMismatch indicates a flat value sequence whose length is not rows*cols.
	ErrSizeMismatch = errors.New("matrix: flat length does not match rows*cols")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or a solve
	// where A.Rows != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotVector signals that a column vector (cols == 1) was required.
	ErrNotVector = errors.New("matrix: not a column vector")

	// ErrSingular is returned when the matrix has no inverse (zero determinant
	// or a zero pivot after partial pivoting).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrZeroPivot is returned by the non-pivoting Doolittle LU when U[i,i] == 0
	// and rows below it still require division by that pivot.
	ErrZeroPivot = errors.New("matrix: zero pivot")

	// ErrUnsupportedShape marks an underdetermined system (rows < cols).
	ErrUnsupportedShape = errors.New("matrix: underdetermined system is not supported")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadTolerance signals a NaN, infinite or negative comparison tolerance.
	ErrBadTolerance = errors.New("matrix: invalid tolerance")
)
