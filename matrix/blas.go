// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// general views a Dense as a row-major blas32.General sharing its buffer.
func general(d *Dense) blas32.General {
	return blas32.General{Rows: d.r, Cols: d.c, Stride: d.c, Data: d.data}
}

// gemm computes out = a·b with the registered blas32 implementation
// (gonum's pure-Go kernel unless the process calls blas32.Use).
// Shapes are trusted: a.c == b.r, out is a.r × b.c and zeroed.
func gemm(a, b, out *Dense) {
	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1, general(a), general(b), 0, general(out))
}
