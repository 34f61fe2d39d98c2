// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestApproxEqual(t *testing.T) {
	t.Parallel()

	a := FromRows(t, []float32{1, 2}, []float32{3, 4})
	near := FromRows(t, []float32{1, 2.0000005}, []float32{3, 4})
	far := FromRows(t, []float32{1, 2.01}, []float32{3, 4})
	nan := FromRows(t, []float32{1, float32(math.NaN())}, []float32{3, 4})

	tests := []struct {
		name string
		a, b matrix.Matrix
		tol  float64
		want bool
	}{
		{"identical zero tol", a, a.Clone(), 0, true},
		{"within tol", a, near, 1e-5, true},
		{"beyond tol", a, far, 1e-5, false},
		{"generic path", hide{a}, hide{near}, 1e-5, true},
		{"generic beyond", hide{a}, far, 1e-5, false},
		{"shape mismatch", a, MustDense(t, 2, 3), 1, false},
		{"NaN never equal", nan, nan, 1, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := matrix.ApproxEqual(tc.a, tc.b, tc.tol)
			require.NoError(t, err)
			require.Equal(t, tc.want, ok)
		})
	}
}

func TestApproxEqual_Errors(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 2)
	_, err := matrix.ApproxEqual(a, nil, 1e-6)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.ApproxEqual(a, a, -1)
	require.ErrorIs(t, err, matrix.ErrBadTolerance)

	_, err = matrix.ApproxEqual(a, a, math.NaN())
	require.ErrorIs(t, err, matrix.ErrBadTolerance)
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := FromRows(t, []float32{100, 0})
	b := FromRows(t, []float32{100.05, 0})

	ok, err := matrix.AllClose(a, b, 1e-3, 0) // 0.05 ≤ 1e-3·100.05
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 1e-4, 1e-3)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, MustDense(t, 2, 1), 1e-3, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.AllClose(a, b, math.Inf(1), 0)
	require.ErrorIs(t, err, matrix.ErrBadTolerance)
}
