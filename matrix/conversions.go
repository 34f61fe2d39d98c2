// SPDX-License-Identifier: MIT
// Package matrix: converters between Dense (float32, row-major) and gonum's
// float64 mat types, for callers that already live in the gonum ecosystem.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ToMat returns a float64 copy of d as a *mat.Dense.
// Complexity: O(r*c).
func ToMat(d *Dense) (*mat.Dense, error) {
	if d == nil {
		return nil, matrixErrorf("ToMat", ErrNilMatrix)
	}
	data := make([]float64, len(d.data))
	for i, v := range d.data {
		data[i] = float64(v)
	}

	return mat.NewDense(d.r, d.c, data), nil
}

// FromMat narrows any gonum matrix to a fresh float32 Dense.
// Values outside the float32 range become ±Inf; NaN is carried through.
//
// Errors:
//   - ErrNilMatrix (nil m), ErrInvalidDimensions (empty m).
func FromMat(m mat.Matrix) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf("FromMat", ErrNilMatrix)
	}
	r, c := m.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("FromMat", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = float32(m.At(i, j))
		}
	}

	return out, nil
}

// FromVecDense converts a gonum vector to an n×1 column.
func FromVecDense(v *mat.VecDense) (*Dense, error) {
	if v == nil {
		return nil, matrixErrorf("FromVecDense", ErrNilMatrix)
	}

	return FromMat(v)
}

// ToFloat64 widens xs to float64.
func ToFloat64(xs []float32) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = float64(v)
	}

	return out
}

// ToFloat32 narrows xs to float32. A finite value beyond ±MaxFloat32 is an
// ErrOutOfRange error.
func ToFloat32(xs []float64) ([]float32, error) {
	out := make([]float32, len(xs))
	for i, v := range xs {
		if !math.IsInf(v, 0) && !math.IsNaN(v) && math.Abs(v) > math.MaxFloat32 {
			return nil, matrixErrorf("ToFloat32", fmt.Errorf("index %d: %w", i, ErrOutOfRange))
		}
		out[i] = float32(v)
	}

	return out, nil
}
