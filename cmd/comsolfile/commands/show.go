package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/4nd3r5on/go-comsolfile/common"
	"github.com/4nd3r5on/go-comsolfile/selector"
)

const (
	showCmdUse   = "show <file>"
	showCmdShort = "Print the first section matching a description and shape"
	showArgCount = 1
)

// ErrNoMatch is returned when no section satisfies the show filters.
var ErrNoMatch = errors.New("no matching section")

// NewShowCommand creates the show subcommand.
func NewShowCommand(opts *GlobalOptions) *cobra.Command {
	var (
		contains   string
		ncol, nrow int
	)

	cmd := &cobra.Command{
		Use:   showCmdUse,
		Short: showCmdShort,
		Args:  cobra.ExactArgs(showArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newCmdEnv(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			sections, err := env.parseFile(args[0])
			if err != nil {
				return err
			}

			var selectOpts []selector.Option
			if cmd.Flags().Changed("ncol") {
				selectOpts = append(selectOpts, selector.WithNCol(ncol))
			}
			if cmd.Flags().Changed("nrow") {
				selectOpts = append(selectOpts, selector.WithNRow(nrow))
			}

			match, ok := selector.Select(sections, contains, selectOpts...)
			if !ok {
				return fmt.Errorf("%w in %s (contains %q)", ErrNoMatch, args[0], contains)
			}

			env.logger.Info("section selected", "rows", match.Matrix.Rows(), "ncol", match.Matrix.Cols())
			renderMatch(cmd.OutOrStdout(), match)

			return nil
		},
	}

	cmd.Flags().StringVarP(&contains, "contains", "c", "", "case-insensitive description substring")
	cmd.Flags().IntVar(&ncol, "ncol", 0, "required column count")
	cmd.Flags().IntVar(&nrow, "nrow", 0, "required row count")

	return cmd
}

func renderMatch(w io.Writer, match selector.Match) {
	if match.Description != "" {
		fmt.Fprintln(w, match.Description)
		fmt.Fprintln(w)
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)

	rows, cols := match.Matrix.Dims()
	for i := range rows {
		row := make(table.Row, cols)
		for j := range cols {
			row[j] = formatValue(match.Matrix, i, j)
		}
		tbl.AppendRow(row)
	}

	tbl.Render()
}

func formatValue(m common.Matrix, i, j int) string {
	if m.Kind == common.KindInt {
		return strconv.FormatInt(m.Ints[i][j], 10)
	}
	return strconv.FormatFloat(m.Floats[i][j], 'g', -1, 64)
}
