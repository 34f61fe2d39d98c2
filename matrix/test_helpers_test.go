// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// Tolerances shared by numeric tests.
const (
	tolInverse = 1e-5 // inverse scenarios and inv·A ≈ I
	tolSolve   = 1e-6 // residual of exactly representable systems
	tolDet     = 1e-4 // float32 determinant of small integer matrices
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the generic At/Set fallback in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// IdentityDense returns I_n or fails the test.
func IdentityDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// FromRows builds a *Dense from row literals or fails the test.
func FromRows(t testing.TB, rows ...[]float32) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// Column builds an n×1 *Dense or fails the test.
func Column(t testing.TB, vals ...float32) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewColumn(vals)
	if err != nil {
		t.Fatalf("NewColumn: %v", err)
	}

	return m
}

// NewFilledDense builds r×c *Dense from a row-major flat slice.
func NewFilledDense(t testing.TB, r, c int, vals []float32) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return m
}

// RandomFill fills m with deterministic U(-1,1) values by seed.
func RandomFill(t testing.TB, m matrix.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			MustSet(t, m, i, j, rng.Float32()*2-1)
		}
	}
}

// RandFilledDense allocates and fills an r×c Dense.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	RandomFill(t, m, seed)

	return m
}

// DiagDominant returns a random n×n matrix with |a[i,i]| > Σ_{j≠i} |a[i,j]|.
// Such matrices are invertible and need no pivoting, so every kernel and
// every pivot policy can factorize them.
func DiagDominant(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := RandFilledDense(t, n, n, seed)
	for i := 0; i < n; i++ {
		MustSet(t, m, i, i, float32(n)+1)
	}

	return m
}

// MustSet sets m[i,j] = v or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float32) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// MustAt returns m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float32 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact fails unless a and b have equal shape and bit-equal values.
func CompareExact(t testing.TB, a, b matrix.Matrix) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows(), "rows")
	require.Equal(t, a.Cols(), b.Cols(), "cols")
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, bv := MustAt(t, a, i, j), MustAt(t, b, i, j); av != bv {
				t.Fatalf("(%d,%d): %v != %v", i, j, av, bv)
			}
		}
	}
}

// CompareClose fails unless a and b are ApproxEqual within tol.
func CompareClose(t testing.TB, a, b matrix.Matrix, tol float64) {
	t.Helper()
	ok, err := matrix.ApproxEqual(a, b, tol)
	require.NoError(t, err)
	if !ok {
		t.Fatalf("matrices differ beyond %g:\n%v\nvs\n%v", tol, a, b)
	}
}

// RequireValues compares a Dense against row-major float64 expectations
// with cmp.Diff and an absolute margin.
func RequireValues(t testing.TB, got *matrix.Dense, want []float64, margin float64) {
	t.Helper()
	diff := cmp.Diff(want, matrix.ToFloat64(got.Data()), cmpopts.EquateApprox(0, margin))
	if diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// InDelta reports whether |a-b| ≤ delta.
func InDelta(a, b, delta float64) bool {
	return math.Abs(a-b) <= delta
}
