// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate fresh Dense L, U.
//   - Stage 2: For i=0..n-1:
//     U[i,j] = A[i,j] − Σ_{k<i} L[i,k]·U[k,j]        for j ≥ i,
//     L[i,i] = 1,
//     L[j,i] = (A[j,i] − Σ_{k<i} L[j,k]·U[k,i]) / U[i,i]  for j > i.
//
// Behavior highlights:
//   - Returns a new {L, U} pair; the input is never written.
//   - No row exchanges: a matrix with a zero leading pivot is not factorized
//     even when it is invertible (see LUP).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrZeroPivot when U[i,i] == 0 and rows below i still need it as a divisor.
//     A zero U[n-1,n-1] needs no division and is returned as-is (singular A).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := a.r
	L, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	var i, j, k, baseI, baseJ int
	var sum, pivot float32
	for i = 0; i < n; i++ {
		baseI = i * n
		// Row i of U.
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[baseI+k] * U.data[k*n+j]
			}
			U.data[baseI+j] = a.data[baseI+j] - sum
		}

		L.data[baseI+i] = 1
		pivot = U.data[baseI+i]
		if pivot == ZeroPivot && i < n-1 {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("U[%d,%d]: %w", i, i, ErrZeroPivot))
		}

		// Column i of L.
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += L.data[baseJ+k] * U.data[k*n+i]
			}
			L.data[baseJ+i] = (a.data[baseJ+i] - sum) / pivot
		}
	}

	return L, U, nil
}

// LUP computes P·A = L·U with partial pivoting: at step k the row with the
// largest |a[i,k]|, i ≥ k, becomes the pivot row (first maximum wins).
//
// Implementation:
//   - Stage 1: Validate m; copy it into a private working buffer W.
//   - Stage 2: For k=0..n-1 pick the pivot, swap rows of W and Perm, then
//     store multipliers below the diagonal and update the trailing block.
//   - Stage 3: Split W into unit-lower L and upper U.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when a whole column below the diagonal is zero.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LUP(m Matrix) (*PivotedLU, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	w := a.clone()
	n := w.r

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := float32(1)

	var i, j, k, p, baseI, baseK int
	var maxAbs, v float64
	var pivot, f float32
	for k = 0; k < n; k++ {
		p, maxAbs = k, math.Abs(float64(w.data[k*n+k]))
		for i = k + 1; i < n; i++ {
			if v = math.Abs(float64(w.data[i*n+k])); v > maxAbs {
				p, maxAbs = i, v
			}
		}
		if maxAbs == 0 {
			return nil, matrixErrorf(opLUP, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			w.swapRows(k, p)
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}

		baseK = k * n
		pivot = w.data[baseK+k]
		for i = k + 1; i < n; i++ {
			baseI = i * n
			f = w.data[baseI+k] / pivot
			w.data[baseI+k] = f // multiplier lives in the strict lower part
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				w.data[baseI+j] -= f * w.data[baseK+j]
			}
		}
	}

	L, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	for i = 0; i < n; i++ {
		baseI = i * n
		for j = 0; j < n; j++ {
			switch {
			case j < i:
				L.data[baseI+j] = w.data[baseI+j]
			case j == i:
				L.data[baseI+j] = 1
				U.data[baseI+j] = w.data[baseI+j]
			default:
				U.data[baseI+j] = w.data[baseI+j]
			}
		}
	}

	return &PivotedLU{L: L, U: U, Perm: perm, Sign: sign}, nil
}

// Permute returns P·b: row i of the result is row Perm[i] of b.
// b must have len(Perm) rows.
func (f *PivotedLU) Permute(b Matrix) (*Dense, error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf("Permute", err)
	}
	if b.Rows() != len(f.Perm) {
		return nil, matrixErrorf("Permute", ErrDimensionMismatch)
	}
	src, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf("Permute", err)
	}
	out, err := NewDense(src.r, src.c)
	if err != nil {
		return nil, matrixErrorf("Permute", err)
	}
	for i, from := range f.Perm {
		copy(out.data[i*src.c:(i+1)*src.c], src.data[from*src.c:(from+1)*src.c])
	}

	return out, nil
}
