// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
)

// Solve returns x for the system A·x = b, choosing the method from the shape
// of A (n rows, m columns):
//
//   - n == m: LU factorization, then forward and backward substitution.
//   - n > m:  least squares through the normal equations x = (AᵀA)⁻¹·Aᵀ·b.
//   - n < m:  ErrUnsupportedShape.
//
// Validation order is fixed: nil operands, then A.Rows != b.Rows
// (ErrDimensionMismatch), then b.Cols != 1 (ErrNotVector).
//
// Under PivotNone (default) the square branch uses LU and surfaces
// ErrZeroPivot for matrices that need a row exchange. PivotPartial uses LUP
// and permutes b before substitution.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNotVector, ErrUnsupportedShape.
//   - ErrZeroPivot, ErrSingular from the factorization or inversion.
func Solve(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSystem(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)
	log := o.logger.With().Str("op", opSolve).Int("rows", a.Rows()).Int("cols", a.Cols()).Logger()

	switch n, m := a.Rows(), a.Cols(); {
	case n == m:
		log.Debug().Stringer("pivot", o.pivot).Msg("square system, using LU")

		return solveSquare(a, b, o)
	case n > m:
		log.Debug().Msg("overdetermined system, using normal equations")

		x, err := normalEquations(a, b, opts...)
		if err != nil {
			return nil, matrixErrorf(opSolve, err)
		}

		return x, nil
	default:
		log.Debug().Msg("underdetermined system rejected")

		return nil, matrixErrorf(opSolve, ErrUnsupportedShape)
	}
}

// SolveVec is Solve for plain slices: len(b) must equal a.Rows().
func SolveVec(a Matrix, b []float32, opts ...Option) ([]float32, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	col, err := NewColumn(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x, err := Solve(a, col, opts...)
	if err != nil {
		return nil, err
	}

	return x.data, nil
}

// LeastSquares solves min ‖A·x − b‖₂ through the normal equations for any
// A with at least as many rows as columns. A square A gets the same
// treatment (x = A⁻¹·b up to rounding).
func LeastSquares(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSystem(a, b); err != nil {
		return nil, matrixErrorf("LeastSquares", err)
	}
	if a.Rows() < a.Cols() {
		return nil, matrixErrorf("LeastSquares", ErrUnsupportedShape)
	}
	x, err := normalEquations(a, b, opts...)
	if err != nil {
		return nil, matrixErrorf("LeastSquares", err)
	}

	return x, nil
}

// normalEquations evaluates ((AᵀA)⁻¹·Aᵀ)·b.
func normalEquations(a, b Matrix, opts ...Option) (*Dense, error) {
	at, err := Transpose(a)
	if err != nil {
		return nil, err
	}
	ata, err := Mul(at, a)
	if err != nil {
		return nil, err
	}
	inv, err := Inverse(ata, opts...)
	if err != nil {
		return nil, err
	}
	pinv, err := Mul(inv, at)
	if err != nil {
		return nil, err
	}

	return Mul(pinv, b)
}

// solveSquare factorizes A and runs both substitutions.
// Implementation:
//   - Stage 1: L,U from LU (PivotNone) or LUP (PivotPartial, b ← P·b).
//   - Stage 2: y[i] = (b[i] − Σ_{j<i} L[i,j]·y[j]) / L[i,i], i = 0..n-1.
//   - Stage 3: x[i] = (y[i] − Σ_{j>i} U[i,j]·x[j]) / U[i,i], i = n-1..0.
func solveSquare(a, b Matrix, o Options) (*Dense, error) {
	var (
		L, U *Dense
		rhs  *Dense
		err  error
	)
	if o.pivot == PivotPartial {
		var f *PivotedLU
		if f, err = LUP(a); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
		if rhs, err = f.Permute(b); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
		L, U = f.L, f.U
	} else {
		if L, U, err = LU(a); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
		if rhs, err = asDense(b); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
	}

	n := L.r
	y := make([]float32, n)
	var i, j, base int
	var sum float32
	for i = 0; i < n; i++ {
		base = i * n
		sum = ZeroSum
		for j = 0; j < i; j++ {
			sum += L.data[base+j] * y[j]
		}
		y[i] = (rhs.data[i] - sum) / L.data[base+i]
	}

	x, err := NewDense(n, 1)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	var pivot float32
	for i = n - 1; i >= 0; i-- {
		base = i * n
		pivot = U.data[base+i]
		if pivot == ZeroPivot {
			return nil, matrixErrorf(opSolve, fmt.Errorf("U[%d,%d]: %w", i, i, ErrSingular))
		}
		sum = ZeroSum
		for j = i + 1; j < n; j++ {
			sum += U.data[base+j] * x.data[j]
		}
		x.data[i] = (y[i] - sum) / pivot
	}

	return x, nil
}
