package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

func TestToMatFromMat_RoundTrip(t *testing.T) {
	t.Parallel()

	a := FromRows(t, []float32{1, 2.5, -3}, []float32{4, 0, 6.25})

	m, err := matrix.ToMat(a)
	require.NoError(t, err)
	r, c := m.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 2.5, m.At(0, 1))
	require.Equal(t, 6.25, m.At(1, 2))

	back, err := matrix.FromMat(m)
	require.NoError(t, err)
	CompareExact(t, a, back)

	// The gonum copy is independent.
	m.Set(0, 0, 99)
	require.Equal(t, float32(1), MustAt(t, a, 0, 0))
}

func TestFromMat_Views(t *testing.T) {
	t.Parallel()

	src := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	d, err := matrix.FromMat(src.T())
	require.NoError(t, err)
	require.Equal(t, []float32{1, 3, 2, 4}, d.Data())

	v, err := matrix.FromVecDense(mat.NewVecDense(3, []float64{7, 8, 9}))
	require.NoError(t, err)
	require.Equal(t, 3, v.Rows())
	require.Equal(t, 1, v.Cols())
	require.Equal(t, []float32{7, 8, 9}, v.Data())
}

func TestConversions_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.ToMat(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.FromMat(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.FromVecDense(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFloatSlices(t *testing.T) {
	t.Parallel()

	require.Equal(t, []float64{1, -0.5}, matrix.ToFloat64([]float32{1, -0.5}))

	got, err := matrix.ToFloat32([]float64{1, math.Inf(-1)})
	require.NoError(t, err)
	require.Equal(t, float32(1), got[0])
	require.True(t, math.IsInf(float64(got[1]), -1))

	_, err = matrix.ToFloat32([]float64{0, 1e300})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
