package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bridgec/internal/diagfmt"
	"bridgec/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.bdl",
	Short: "Tokenize an interface file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(cmd.Context(), args[0], driver.Options{MaxDiagnostics: g.maxDiagnostics, Logger: logger})
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if failed, err := printDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet, "pretty", g, true); err != nil || failed {
		if err != nil {
			return err
		}
		return errCompileFailed
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
