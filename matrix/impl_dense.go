// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Load return errors instead of panicking.
//   - Keep ownership simple: constructors copy caller slices, Data returns a copy,
//     so a Dense never aliases another Dense or a caller buffer.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Load/Clone/Data: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// MaxElements caps rows*cols for a single buffer (4 GiB of float32).
// Larger requests fail with ErrAllocation before anything is allocated.
const MaxElements = 1 << 30

// ---------- error context tags ----------

const (
	ctxAt   = "At"   // method tag used in error wrappers
	ctxSet  = "Set"  // method tag used in error wrappers
	ctxRow  = "Row"  // method tag used in error wrappers
	ctxCol  = "Col"  // method tag used in error wrappers
	ctxLoad = "Load" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The result formats as "Dense.<method>(row,col): <sentinel>" and preserves
// the sentinel for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major float32 matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float32 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// checkShape validates a requested shape against the dimension and
// allocation contracts without allocating anything.
func checkShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	// rows*cols > MaxElements, written so the product can never overflow.
	if rows > MaxElements/cols {
		return ErrAllocation
	}

	return nil
}

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: reject rows*cols > MaxElements with ErrAllocation.
//   - Stage 3: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrAllocation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, err)
	}
	// make() zero-fills the buffer deterministically.
	buf := make([]float32, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseFrom creates an r×c matrix and loads a row-major copy of values.
// Errors: ErrInvalidDimensions, ErrAllocation, ErrSizeMismatch.
func NewDenseFrom(rows, cols int, values []float32) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if err = m.Load(values); err != nil {
		return nil, err
	}

	return m, nil
}

// NewDenseFromRows builds a matrix from a slice of equally long rows.
// A ragged row yields ErrSizeMismatch naming the offending row.
func NewDenseFromRows(rows [][]float32) (*Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: %w", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d values, want %d: %w",
				i, len(row), cols, ErrSizeMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// NewColumn returns an n×1 column vector holding a copy of values.
func NewColumn(values []float32) (*Dense, error) {
	return NewDenseFrom(len(values), 1, values)
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap it with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; the caller's state is untouched.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float32, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float32) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Load copies a flat row-major sequence into the buffer.
//
// Behavior highlights:
//   - All-or-nothing: on ErrSizeMismatch the buffer is left exactly as it was.
//   - values is copied; later changes to the caller slice do not leak in.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Load(values []float32) error {
	if len(values) != len(m.data) {
		return fmt.Errorf("Dense.%s: got %d values, want %d: %w",
			ctxLoad, len(values), len(m.data), ErrSizeMismatch)
	}
	copy(m.data, values)

	return nil
}

// Data returns a row-major copy of the buffer.
func (m *Dense) Data() []float32 {
	out := make([]float32, len(m.data))
	copy(out, m.data)

	return out
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float32, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float32, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) ([]float32, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float32, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy (new buffer).
// Returned dynamic type is *Dense.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed variant of Clone used inside kernels.
func (m *Dense) clone() *Dense {
	cp := make([]float32, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// swapRows exchanges rows a and b in place. Indices are trusted (kernel-private).
func (m *Dense) swapRows(a, b int) {
	if a == b {
		return
	}
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// String renders one bracketed, comma-separated line per row.
// Intended for logs and debugging; not for hot paths.
//
// Example: a 2×2 matrix prints as "[1, 2]\n[3, 4]\n".
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// asDense returns m as *Dense, materializing a copy through At when m is
// another Matrix implementation. Kernels that need a private working copy
// use it to run a single flat-slice code path.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float32
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
