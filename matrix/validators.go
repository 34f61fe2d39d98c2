// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/vector/tolerance checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on the success path.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape), which
//    defines the error priority documented in errors.go.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether m is a nil interface or a typed-nil *Dense.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Catches both a nil interface and a typed-nil *Dense.
// Returns ErrNilMatrix.
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Returns ErrDimensionMismatch.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquare – Composite: NotNil → Rows == Cols.
// Errors: ErrNilMatrix, ErrNonSquare.
// Use before determinant, factorization and inversion.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSystem checks a linear system A·x = b before dispatch:
// NotNil(A) → NotNil(b) → A.Rows == b.Rows → b.Cols == 1.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNotVector.
func ValidateSystem(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSystem: Rows", ErrDimensionMismatch)
	}
	if b.Cols() != 1 {
		return validatorErrorf("ValidateSystem: b", ErrNotVector)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is rejected with ErrNilMatrix.
func ValidateVecLen(x []float32, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateTolerance rejects NaN, ±Inf and negative tolerances.
func ValidateTolerance(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return validatorErrorf("ValidateTolerance", ErrBadTolerance)
	}

	return nil
}
