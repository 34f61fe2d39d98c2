// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparisons.
//
// Purpose:
//   - ApproxEqual: absolute-tolerance equality used by tests, examples and the CLI.
//   - AllClose: numpy-style |a−b| ≤ atol + rtol·|b|.
//
// Determinism & Performance:
//   - Early exit on the first violating element; O(r*c) time, O(1) space.
//   - Differences are taken in float64 so float32 rounding of the difference
//     itself cannot flip a borderline comparison.
//   - A NaN element never compares close to anything.

package matrix

import (
	"fmt"
	"math"
)

// ApproxEqual reports whether a and b have the same shape and every
// |a[i,j] − b[i,j]| ≤ tol.
//
// A shape mismatch is a legitimate "not equal" and returns false, nil.
//
// Errors:
//   - ErrNilMatrix, ErrBadTolerance (NaN, ±Inf or negative tol).
func ApproxEqual(a, b Matrix, tol float64) (bool, error) {
	if err := ValidateTolerance(tol); err != nil {
		return false, matrixErrorf("ApproxEqual", err)
	}

	return closeWithin(a, b, 0, tol, "ApproxEqual")
}

// AllClose reports whether |a[i,j] − b[i,j]| ≤ atol + rtol·|b[i,j]| for all
// elements. Unlike ApproxEqual a shape mismatch is an error here.
//
// Errors:
//   - ErrBadTolerance, ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateTolerance(rtol); err != nil {
		return false, matrixErrorf("AllClose: rtol", err)
	}
	if err := ValidateTolerance(atol); err != nil {
		return false, matrixErrorf("AllClose: atol", err)
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	return closeWithin(a, b, rtol, atol, "AllClose")
}

// closeWithin is the shared loop. Shape mismatch → false, nil.
func closeWithin(a, b Matrix, rtol, atol float64, tag string) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(tag, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}

	// Dense fast path: flat slices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx, av := range da.data {
				if !close64(float64(av), float64(db.data[idx]), rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float32
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if !close64(float64(av), float64(bv), rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// close64 is false for NaN operands.
func close64(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
