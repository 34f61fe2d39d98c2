// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/linalg/matrix"
)

// app holds the parsed flags shared by all subcommands.
type app struct {
	rows, cols int
	values     []float32
	pivot      string
	verbose    bool

	policy matrix.PivotPolicy
	log    zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "linalg",
		Short:        "Dense float32 linear algebra from the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	addMatrixFlags(root.PersistentFlags(), a)

	root.AddCommand(
		newDetCmd(a),
		newInvCmd(a),
		newLUCmd(a),
		newMulCmd(a),
		newSolveCmd(a),
	)

	return root
}

// addMatrixFlags registers the operand A and the numeric options.
func addMatrixFlags(fs *pflag.FlagSet, a *app) {
	fs.IntVarP(&a.rows, "rows", "r", 0, "rows of A")
	fs.IntVarP(&a.cols, "cols", "c", 0, "columns of A")
	fs.Float32SliceVarP(&a.values, "values", "v", nil, "row-major values of A")
	fs.StringVar(&a.pivot, "pivot", matrix.DefaultPivotPolicy.String(), "pivot policy: none or partial")
	fs.BoolVar(&a.verbose, "verbose", false, "log kernel diagnostics to stderr")
}

// setup resolves the pivot policy and builds the console logger.
func (a *app) setup(stderr io.Writer) error {
	p, err := matrix.ParsePivotPolicy(a.pivot)
	if err != nil {
		return err
	}
	a.policy = p

	level := zerolog.InfoLevel
	if a.verbose {
		level = zerolog.DebugLevel
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()

	return nil
}

// options maps the flags to kernel options.
func (a *app) options() []matrix.Option {
	return []matrix.Option{matrix.WithPivoting(a.policy), matrix.WithLogger(a.log)}
}

// operand builds A from --rows, --cols and --values.
func (a *app) operand() (*matrix.Dense, error) {
	m, err := matrix.NewDenseFrom(a.rows, a.cols, a.values)
	if err != nil {
		return nil, fmt.Errorf("A: %w", err)
	}
	a.log.Debug().Int("rows", a.rows).Int("cols", a.cols).Msg("loaded A")

	return m, nil
}
