// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(-1, 3)                      // negative rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestNewDenseAllocationGuard ensures oversized buffers fail before allocation.
func TestNewDenseAllocationGuard(t *testing.T) {
	_, err := matrix.NewDense(matrix.MaxElements, 2) // twice the cap
	require.ErrorIs(t, err, matrix.ErrAllocation)

	_, err = matrix.NewDense(matrix.MaxElements+1, 1) // single column over the cap
	require.ErrorIs(t, err, matrix.ErrAllocation)

	m, err := matrix.NewDense(1, 1) // smallest legal shape still works
	require.NoError(t, err)
	require.Equal(t, 1, m.Rows())
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m := MustDense(t, rows, cols)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{rows, cols}, [2]int{r, c})
	require.Equal(t, make([]float32, rows*cols), m.Data()) // zero-initialized
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)                         // negative row
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column past the end
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.25)                       // row past the end
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(0, -1, 4.5)                       // negative column
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	require.Equal(t, make([]float32, 4), m.Data()) // failed writes left nothing behind
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)

	require.NoError(t, m.Set(1, 2, 7.5))
	require.Equal(t, float32(7.5), MustAt(t, m, 1, 2))
	require.Equal(t, []float32{0, 0, 0, 0, 0, 7.5}, m.Data()) // row-major offset 1*3+2
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := FromRows(t, []float32{1, 0}, []float32{0, 2})

	clone := m.Clone()
	MustSet(t, clone, 0, 0, 3)

	require.Equal(t, float32(1), MustAt(t, m, 0, 0))     // original unchanged
	require.Equal(t, float32(3), MustAt(t, clone, 0, 0)) // clone changed
	require.IsType(t, &matrix.Dense{}, clone)
}

// TestLoad covers the all-or-nothing contract of Load.
func TestLoad(t *testing.T) {
	m := FromRows(t, []float32{1, 2}, []float32{3, 4})

	err := m.Load([]float32{9, 9, 9})               // too short
	require.ErrorIs(t, err, matrix.ErrSizeMismatch) // expect ErrSizeMismatch
	require.Equal(t, []float32{1, 2, 3, 4}, m.Data())

	src := []float32{5, 6, 7, 8}
	require.NoError(t, m.Load(src))
	src[0] = 100 // caller slice must not alias the buffer
	require.Equal(t, []float32{5, 6, 7, 8}, m.Data())
}

// TestConstructors covers the copying constructors.
func TestConstructors(t *testing.T) {
	t.Run("NewDenseFrom", func(t *testing.T) {
		vals := []float32{1, 2, 3, 4, 5, 6}
		m, err := matrix.NewDenseFrom(2, 3, vals)
		require.NoError(t, err)
		vals[0] = -1
		require.Equal(t, float32(1), MustAt(t, m, 0, 0))
		require.Equal(t, float32(6), MustAt(t, m, 1, 2))

		_, err = matrix.NewDenseFrom(2, 3, vals[:5])
		require.ErrorIs(t, err, matrix.ErrSizeMismatch)
	})

	t.Run("NewDenseFromRows", func(t *testing.T) {
		m := FromRows(t, []float32{1, 2, 3}, []float32{4, 5, 6})
		require.Equal(t, 2, m.Rows())
		require.Equal(t, 3, m.Cols())
		require.Equal(t, []float32{1, 2, 3, 4, 5, 6}, m.Data())

		_, err := matrix.NewDenseFromRows([][]float32{{1, 2}, {3}})
		require.ErrorIs(t, err, matrix.ErrSizeMismatch)

		_, err = matrix.NewDenseFromRows(nil)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

		_, err = matrix.NewDenseFromRows([][]float32{{}})
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	})

	t.Run("NewColumn", func(t *testing.T) {
		v := Column(t, 8, -11, -3)
		require.Equal(t, 3, v.Rows())
		require.Equal(t, 1, v.Cols())

		_, err := matrix.NewColumn(nil)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	})
}

// TestRowColData verifies the copying accessors.
func TestRowColData(t *testing.T) {
	m := FromRows(t, []float32{1, 2, 3}, []float32{4, 5, 6})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float32{4, 5, 6}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float32{3, 6}, col)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	data := m.Data()
	data[0] = 42
	row[0] = 42
	require.Equal(t, float32(1), MustAt(t, m, 0, 0)) // neither copy aliases the buffer
}

// TestString checks the debug rendering.
func TestString(t *testing.T) {
	m := FromRows(t, []float32{1, 2}, []float32{3, 4.5})
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}
