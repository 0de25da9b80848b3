// Package main provides the entry point for the comsolfile CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/4nd3r5on/go-comsolfile/cmd/comsolfile/commands"
)

// Set by the linker.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	opts := &commands.GlobalOptions{}

	rootCmd := &cobra.Command{
		Use:   "comsolfile",
		Short: "Inspect matrices in COMSOL text exports",
		Long: `comsolfile splits a COMSOL text export into sections, each a
description and the numeric matrix that follows it.

Commands:
  list      Summarize every section of a file
  show      Print the first section matching a description and shape`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default .comsolfile.yaml in CWD or $HOME)")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress output")

	rootCmd.AddCommand(commands.NewListCommand(opts))
	rootCmd.AddCommand(commands.NewShowCommand(opts))
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "comsolfile %s (commit: %s)\n", version, commit)
		},
	}
}
