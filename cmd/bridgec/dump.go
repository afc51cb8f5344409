package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bridgec/internal/diagfmt"
	"bridgec/internal/driver"
	"bridgec/internal/version"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] file.bdl",
	Short: "Verify an interface file and print the module summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	dumpCmd.Flags().Bool("disk-cache", false, "reuse the cached summary when the file is unchanged")
}

func runDump(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	useCache, _ := cmd.Flags().GetBool("disk-cache")
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	t, err := resolveTargets(args)
	if err != nil {
		return err
	}
	if len(t.files) != 1 {
		return fmt.Errorf("dump expects a single interface file, %s holds %d", args[0], len(t.files))
	}

	opts := driver.Options{
		MaxDiagnostics: g.maxDiagnostics,
		Settings:       t.settings,
		Timings:        g.timings,
		Logger:         logger,
		ToolVersion:    version.Version,
	}
	if useCache {
		if opts.Cache, err = driver.OpenDiskCache("bridgec"); err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
	}

	result, err := driver.Compile(cmd.Context(), t.files[0], opts)
	if err != nil {
		return err
	}
	failed, err := printDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet, "pretty", g, true)
	if err != nil {
		return err
	}
	if failed {
		return errCompileFailed
	}
	if format == "json" {
		return diagfmt.FormatModuleJSON(cmd.OutOrStdout(), result.Summary)
	}
	return diagfmt.FormatModulePretty(cmd.OutOrStdout(), result.Summary)
}
