// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
)

// Determinant returns det(m) as the product of the diagonal of U from an LU
// factorization.
//
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2 (PivotNone, default): LU(m) → Π U[i,i].
//   - Stage 2 (PivotPartial): LUP(m) → Sign · Π U[i,i]; a zero column makes
//     the matrix singular and the determinant is exactly 0.
//
// Behavior highlights:
//   - Under PivotNone an invertible matrix with a zero pivot in natural order
//     (e.g. [[0,1],[1,0]]) cannot be factorized and yields ErrZeroPivot;
//     switch to PivotPartial to evaluate such inputs.
//   - The product is accumulated in float32, row 0 first.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrZeroPivot (PivotNone only).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Determinant(m Matrix, opts ...Option) (float32, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	o := gatherOptions(opts...)

	if o.pivot == PivotPartial {
		f, err := LUP(m)
		if errors.Is(err, ErrSingular) {
			o.logger.Debug().Str("op", opDeterminant).Msg("zero pivot column, determinant is 0")

			return 0, nil
		}
		if err != nil {
			return 0, matrixErrorf(opDeterminant, err)
		}

		return f.Sign * diagProduct(f.U), nil
	}

	_, U, err := LU(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return diagProduct(U), nil
}

// diagProduct returns Π d[i,i] for a square Dense.
func diagProduct(d *Dense) float32 {
	det := float32(1)
	for i := 0; i < d.r; i++ {
		det *= d.data[i*d.c+i]
	}

	return det
}
