// Package linalg is a small dense linear-algebra toolkit in pure Go.
//
// What is inside:
//
//	matrix/          - float32 Dense matrices, arithmetic, LU/LUP, determinant,
//	                   Gauss-Jordan inverse, shape-dispatching linear solver
//	cmd/linalg/      - command-line front end (det, inv, lu, mul, solve)
//	examples/        - runnable programs: least-squares line fit, circuit nodal analysis
//
// Quick start:
//
//	a, _ := matrix.NewDenseFromRows([][]float32{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}})
//	b, _ := matrix.NewColumn([]float32{8, -11, -3})
//	x, err := matrix.Solve(a, b)
//	if err != nil {
//		// errors.Is(err, matrix.ErrSingular), matrix.ErrZeroPivot, ...
//	}
//	fmt.Print(x) // [2]\n[3]\n[-1]\n
//
// All kernels are deterministic, single-threaded and allocation-explicit:
// each call returns a new matrix owned by the caller.
package linalg
