// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Thin, intention-revealing entry points over the canonical kernels.
//   - No logic duplication: every facade delegates.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of the kernels.
//   - Validation happens in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors ----------

// NewZeros returns a zero-initialized rows×cols Dense.
// Alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n: ones on the diagonal, zeros elsewhere.
//
// Errors:
//   - ErrInvalidDimensions (n ≤ 0), ErrAllocation.
//
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// ZerosLike returns a zero Dense with m's shape.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I_n for a square m.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Arithmetic aliases ----------

// Sum is Add.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is Sub.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is Mul.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T is Transpose.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// ScaleBy is Scale.
func ScaleBy(m Matrix, alpha float32) (*Dense, error) { return Scale(m, alpha) }

// MatVecMul is MatVec.
func MatVecMul(m Matrix, x []float32) ([]float32, error) { return MatVec(m, x) }

// ---------- Factorizations & solvers ----------

// InverseOf is Inverse with default options.
func InverseOf(m Matrix) (*Dense, error) { return Inverse(m) }

// LUDecompose is LU.
func LUDecompose(m Matrix) (*Dense, *Dense, error) { return LU(m) }

// Det is Determinant with default options.
func Det(m Matrix) (float32, error) { return Determinant(m) }

// ---------- Reductions ----------

// Trace returns Σ m[i,i] for a square m.
// Errors: ErrNilMatrix, ErrNonSquare.
func Trace(m Matrix) (float32, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf("Trace", err)
	}
	var tr float32
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return 0, matrixErrorf("Trace", err)
		}
		tr += v
	}

	return tr, nil
}

// Residual returns A·x − b, the vector whose norm measures a solve's quality.
// Errors: those of Mul and Sub.
func Residual(a, x, b Matrix) (*Dense, error) {
	ax, err := Mul(a, x)
	if err != nil {
		return nil, matrixErrorf("Residual", err)
	}
	r, err := Sub(ax, b)
	if err != nil {
		return nil, matrixErrorf("Residual", err)
	}

	return r, nil
}
