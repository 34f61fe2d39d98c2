// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// Inverse computes A^{-1} by Gauss-Jordan elimination with partial pivoting,
// applied to A augmented with the identity.
//
// Implementation:
//   - Stage 1: ValidateSquare(m). Singularity pre-check via Determinant(m, opts...):
//     det == 0 → ErrSingular. An ErrZeroPivot from the non-pivoting determinant
//     says nothing about singularity and defers the decision to Stage 2.
//   - Stage 2: W = copy(A), I = identity. For each column j:
//     pick p = argmax_{i≥j} |W[i,j]| (first maximum wins), swap rows j,p in W and I,
//     divide row j of both by W[j,j], then zero W[i,j] for i > j.
//   - Stage 3: For j = n-1 down to 0 zero W[i,j] for i < j.
//     I now holds A^{-1}; W is discarded.
//
// Behavior highlights:
//   - The input is never written; the result is a fresh Dense.
//   - Elimination always pivots, independent of the policy used by the pre-check.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular (zero determinant, or a zero pivot after row exchange).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	log := o.logger.With().Str("op", opInverse).Logger()

	det, err := Determinant(m, opts...)
	switch {
	case errors.Is(err, ErrZeroPivot):
		log.Debug().Err(err).Msg("determinant pre-check inconclusive, deferring to elimination")
	case err != nil:
		return nil, matrixErrorf(opInverse, err)
	case det == 0:
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	w := a.clone()
	n := w.r
	inv, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	wd, id := w.data, inv.data
	var (
		i, j, k, p    int
		baseI, baseJ  int
		maxAbs, v     float64
		pivot, factor float32
	)
	for j = 0; j < n; j++ {
		p, maxAbs = j, 0
		for i = j; i < n; i++ {
			if v = math.Abs(float64(wd[i*n+j])); v > maxAbs {
				p, maxAbs = i, v
			}
		}
		if maxAbs == 0 {
			return nil, matrixErrorf(opInverse, fmt.Errorf("column %d: %w", j, ErrSingular))
		}
		if p != j {
			log.Debug().Int("col", j).Int("row", p).Msg("swap pivot row")
			w.swapRows(j, p)
			inv.swapRows(j, p)
		}

		// Normalize the pivot row.
		baseJ = j * n
		pivot = wd[baseJ+j]
		for k = 0; k < n; k++ {
			wd[baseJ+k] /= pivot
			id[baseJ+k] /= pivot
		}

		// Forward pass: zero the column below the pivot.
		for i = j + 1; i < n; i++ {
			baseI = i * n
			factor = wd[baseI+j]
			if factor == 0 {
				continue
			}
			for k = 0; k < n; k++ {
				wd[baseI+k] -= factor * wd[baseJ+k]
				id[baseI+k] -= factor * id[baseJ+k]
			}
		}
	}

	// Backward pass: zero the column above each pivot.
	for j = n - 1; j >= 0; j-- {
		baseJ = j * n
		for i = 0; i < j; i++ {
			baseI = i * n
			factor = wd[baseI+j]
			if factor == 0 {
				continue
			}
			for k = 0; k < n; k++ {
				wd[baseI+k] -= factor * wd[baseJ+k]
				id[baseI+k] -= factor * id[baseJ+k]
			}
		}
	}

	return inv, nil
}
