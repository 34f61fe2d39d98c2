// Package matrix is a dense, single-precision linear-algebra kernel.
//
// The package provides:
//
//   - Dense, a row-major float32 buffer with bounds-checked At/Set and
//     copying constructors (NewDense, NewDenseFrom, NewDenseFromRows, NewColumn).
//   - Element-wise and structural operations: Add, Sub, Scale, Mul, Transpose,
//     NewIdentity, MatVec. Large Dense products go through gonum's blas32 Gemm.
//   - Factorizations: LU (Doolittle, no pivoting) and LUP (partial pivoting).
//   - Determinant, Inverse (Gauss-Jordan with partial pivoting) and Solve,
//     which dispatches on shape: square systems via LU, overdetermined ones
//     via the normal equations, underdetermined ones are rejected.
//   - ApproxEqual and AllClose for tolerance-based comparison.
//   - ToMat/FromMat for interop with gonum.org/v1/gonum/mat.
//
// Every operation returns a freshly allocated result and never writes its
// operands. Failures are reported as wrapped sentinel errors (ErrSingular,
// ErrNonSquare, ...) matchable with errors.Is; no kernel returns NaN as an
// error signal.
//
// Determinant, Inverse and Solve accept functional options. WithPivoting
// selects the row-exchange policy and WithLogger injects a zerolog.Logger
// for debug diagnostics; by default nothing is logged.
package matrix
