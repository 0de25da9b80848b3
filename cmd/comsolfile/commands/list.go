package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/4nd3r5on/go-comsolfile/common"
	"github.com/4nd3r5on/go-comsolfile/internal/config"
)

const (
	listCmdUse      = "list <file>"
	listCmdShort    = "Summarize every section of a COMSOL export"
	listArgCount    = 1
	listOutputFlag  = "output"
	listOutputShort = "o"
	listOutputUsage = "output format: table, json or yaml"
)

// SectionSummary describes one section without its values.
type SectionSummary struct {
	Index       int    `json:"index"       yaml:"index"`
	Rows        int    `json:"rows"        yaml:"rows"`
	Cols        int    `json:"cols"        yaml:"cols"`
	Kind        string `json:"kind"        yaml:"kind"`
	Description string `json:"description" yaml:"description"`
}

// NewListCommand creates the list subcommand.
func NewListCommand(opts *GlobalOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   listCmdUse,
		Short: listCmdShort,
		Args:  cobra.ExactArgs(listArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newCmdEnv(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			format := output
			if format == "" {
				format = env.cfg.Output.Format
			}

			sections, err := env.parseFile(args[0])
			if err != nil {
				return err
			}

			return writeSummaries(cmd.OutOrStdout(), Summarize(sections), format)
		},
	}

	cmd.Flags().StringVarP(&output, listOutputFlag, listOutputShort, "", listOutputUsage)

	return cmd
}

// Summarize builds one summary per section, indexed from 1.
func Summarize(sections []common.Section) []SectionSummary {
	summaries := make([]SectionSummary, 0, len(sections))
	for i, section := range sections {
		rows, cols := section.Matrix.Dims()
		summaries = append(summaries, SectionSummary{
			Index:       i + 1,
			Rows:        rows,
			Cols:        cols,
			Kind:        section.Matrix.Kind.String(),
			Description: section.Description,
		})
	}
	return summaries
}

func writeSummaries(w io.Writer, summaries []SectionSummary, format string) error {
	switch strings.ToLower(format) {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(summaries); err != nil {
			return err
		}
		return enc.Close()
	case config.OutputTable:
		renderSummaryTable(w, summaries)
		return nil
	default:
		return fmt.Errorf("%w: %q", config.ErrInvalidOutput, format)
	}
}

func renderSummaryTable(w io.Writer, summaries []SectionSummary) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Format.Footer = text.FormatDefault
	tbl.AppendHeader(table.Row{"#", "Rows", "Cols", "Kind", "Description"})

	for _, s := range summaries {
		tbl.AppendRow(table.Row{s.Index, s.Rows, s.Cols, s.Kind, common.FirstLine(s.Description)})
	}

	tbl.AppendFooter(table.Row{"", "", "", "", fmt.Sprintf("Total: %d sections", len(summaries))})
	tbl.Render()
}
