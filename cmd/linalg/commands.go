// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/matrix"
)

func newDetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "det",
		Short: "Determinant of a square matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.operand()
			if err != nil {
				return err
			}
			det, err := matrix.Determinant(m, a.options()...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%g\n", det)

			return err
		},
	}
}

func newInvCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inv",
		Short: "Inverse of a square matrix (Gauss-Jordan)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.operand()
			if err != nil {
				return err
			}
			inv, err := matrix.Inverse(m, a.options()...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), inv)

			return err
		},
	}
}

func newLUCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lu",
		Short: "LU factors; with --pivot partial also the row permutation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.operand()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.policy == matrix.PivotPartial {
				f, err := matrix.LUP(m)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(out, "P: %v\nL:\n%vU:\n%v", f.Perm, f.L, f.U)

				return err
			}
			L, U, err := matrix.LU(m)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "L:\n%vU:\n%v", L, U)

			return err
		},
	}
}

func newMulCmd(a *app) *cobra.Command {
	var (
		bCols int
		bVals []float32
	)
	cmd := &cobra.Command{
		Use:   "mul",
		Short: "Product A·B; B has --cols rows and --b-cols columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.operand()
			if err != nil {
				return err
			}
			b, err := matrix.NewDenseFrom(a.cols, bCols, bVals)
			if err != nil {
				return fmt.Errorf("B: %w", err)
			}
			p, err := matrix.Mul(m, b)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), p)

			return err
		},
	}
	cmd.Flags().IntVar(&bCols, "b-cols", 1, "columns of B")
	cmd.Flags().Float32SliceVar(&bVals, "b", nil, "row-major values of B")

	return cmd
}

func newSolveCmd(a *app) *cobra.Command {
	var (
		bVals    []float32
		residual bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve A·x = b (square: LU, tall: least squares)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.operand()
			if err != nil {
				return err
			}
			x, err := matrix.SolveVec(m, bVals, a.options()...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, v := range x {
				if _, err = fmt.Fprintf(out, "%g\n", v); err != nil {
					return err
				}
			}
			if residual {
				return logResidual(a, m, x, bVals)
			}

			return nil
		},
	}
	cmd.Flags().Float32SliceVar(&bVals, "b", nil, "right-hand side b")
	cmd.Flags().BoolVar(&residual, "residual", false, "log max |A·x - b| after solving")

	return cmd
}

// logResidual reports the largest component of A·x − b at info level.
func logResidual(a *app, m *matrix.Dense, x, b []float32) error {
	xs, err := matrix.NewColumn(x)
	if err != nil {
		return err
	}
	bs, err := matrix.NewColumn(b)
	if err != nil {
		return err
	}
	r, err := matrix.Residual(m, xs, bs)
	if err != nil {
		return err
	}
	var worst float64
	for _, v := range r.Data() {
		worst = math.Max(worst, math.Abs(float64(v)))
	}
	a.log.Info().Float64("max_abs", worst).Msg("residual")

	return nil
}
