// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the factorization-based kernels
// (Determinant, Inverse, Solve). This file defines:
//   - PivotPolicy and its parser,
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Pivoting policy:
//   - PivotNone is the default and keeps Determinant/Solve on the plain
//     Doolittle LU (no row exchanges), the same factorization LU returns.
//   - PivotPartial switches Determinant/Solve to LUP (row exchanges on the
//     largest |pivot|), which handles matrices with a zero leading pivot.
//   - Inverse always eliminates with partial pivoting; the policy only
//     affects its determinant-based singularity pre-check.
//   - Logging:
//   - Kernels never write to a shared stream. Diagnostics go to the logger
//     injected with WithLogger; the default logger discards everything.

package matrix

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// PivotPolicy selects the row-exchange strategy of LU-based kernels.
type PivotPolicy int

const (
	// PivotNone factorizes without row exchanges (Doolittle).
	PivotNone PivotPolicy = iota
	// PivotPartial exchanges rows to put the largest |a[i,k]| on the diagonal.
	PivotPartial
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotPolicy keeps Determinant and Solve on the non-pivoting LU.
	DefaultPivotPolicy = PivotNone

	// DefaultBLASMinWork is the a.Rows*a.Cols*b.Cols threshold from which Mul
	// hands two *Dense operands to gonum's blas32 Gemm.
	DefaultBLASMinWork = 64 * 64 * 64
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotInvalid = "matrix: WithPivoting: unknown pivot policy"
)

// String returns the lower-case policy name ("none", "partial").
func (p PivotPolicy) String() string {
	switch p {
	case PivotNone:
		return "none"
	case PivotPartial:
		return "partial"
	default:
		return fmt.Sprintf("PivotPolicy(%d)", int(p))
	}
}

// ParsePivotPolicy maps "none"/"partial" (case-insensitive) to a policy.
func ParsePivotPolicy(s string) (PivotPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return PivotNone, nil
	case "partial":
		return PivotPartial, nil
	default:
		return PivotNone, fmt.Errorf("matrix: unknown pivot policy %q", s)
	}
}

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	pivot  PivotPolicy    // DefaultPivotPolicy
	logger zerolog.Logger // zerolog.Nop() unless WithLogger
}

// WithPivoting selects the pivoting policy for Determinant and Solve, and
// for the singularity pre-check inside Inverse.
// Panics on a value other than PivotNone or PivotPartial.
func WithPivoting(p PivotPolicy) Option {
	if p != PivotNone && p != PivotPartial {
		panic(panicPivotInvalid)
	}

	return func(o *Options) { o.pivot = p }
}

// WithLogger routes kernel diagnostics (solver dispatch, pivot swaps) to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// NewOptions resolves opts on top of the defaults.
// Useful to inspect the effective configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Pivot returns the effective pivot policy.
func (o Options) Pivot() PivotPolicy { return o.pivot }

// Logger returns the effective logger.
func (o Options) Logger() zerolog.Logger { return o.logger }

// gatherOptions applies user-provided Option setters on top of defaults.
// Nil setters are skipped; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		pivot:  DefaultPivotPolicy,
		logger: zerolog.Nop(),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
