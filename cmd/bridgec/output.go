package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bridgec/internal/diag"
	"bridgec/internal/diagfmt"
	"bridgec/internal/source"
)

type globalFlags struct {
	color          bool
	quiet          bool
	timings        bool
	maxDiagnostics int
	pathMode       diagfmt.PathMode
}

func readGlobalFlags(cmd *cobra.Command) (globalFlags, error) {
	pf := cmd.Root().PersistentFlags()
	var g globalFlags
	var err error

	colorFlag, _ := pf.GetString("color")
	if g.color, err = readColor(colorFlag); err != nil {
		return g, err
	}
	if g.quiet, err = pf.GetBool("quiet"); err != nil {
		return g, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if g.timings, err = pf.GetBool("timings"); err != nil {
		return g, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if g.maxDiagnostics, err = pf.GetInt("max-diagnostics"); err != nil {
		return g, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	mode, _ := pf.GetString("path-mode")
	var ok bool
	if g.pathMode, ok = diagfmt.ParsePathMode(mode); !ok {
		return g, fmt.Errorf("invalid --path-mode %q", mode)
	}
	return g, nil
}

// printDiagnostics выводит bag в выбранном формате и сообщает, были ли ошибки.
func printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, format string, g globalFlags, withNotes bool) (bool, error) {
	if bag.Len() == 0 {
		return false, nil
	}
	switch format {
	case "pretty":
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     g.color,
			Context:   0,
			PathMode:  g.pathMode,
			ShowNotes: withNotes,
		})
	case "json":
		if err := diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         g.pathMode,
			Max:              g.maxDiagnostics,
			IncludeNotes:     withNotes,
		}); err != nil {
			return false, err
		}
	case "short":
		base := ""
		if fs != nil {
			base = fs.BaseDir()
		}
		if _, err := io.WriteString(w, diag.FormatShortDiagnostics(bag.Items(), base, withNotes)+"\n"); err != nil {
			return false, err
		}
	default:
		return false, fmt.Errorf("unknown format: %s", format)
	}
	return bag.HasErrors(), nil
}
