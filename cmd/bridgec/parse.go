package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bridgec/internal/diagfmt"
	"bridgec/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.bdl",
	Short: "Parse an interface file and list its declarations",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Parse(cmd.Context(), args[0], driver.Options{MaxDiagnostics: g.maxDiagnostics, Logger: logger, Timings: g.timings})
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	failed, err := printDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet, "pretty", g, true)
	if err != nil {
		return err
	}
	if failed {
		return errCompileFailed
	}
	return diagfmt.FormatDeclsPretty(cmd.OutOrStdout(), result.Builder, result.Decls)
}
