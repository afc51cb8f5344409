package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"bridgec/internal/buildpipeline"
	"bridgec/internal/driver"
	"bridgec/internal/source"
	"bridgec/internal/ui"
	"bridgec/internal/version"
	"bridgec/internal/watch"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.bdl|directory]",
	Short: "Check interface files and report diagnostics",
	Long: `Check lexes, parses and verifies every interface file. Without an
argument the inputs listed in bridgec.toml are checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("with-notes", true, "include diagnostic notes in output")
	checkCmd.Flags().Bool("strict-imports", false, "require imports right after the module declaration")
	checkCmd.Flags().Bool("disk-cache", false, "reuse results of unchanged files from the disk cache")
	checkCmd.Flags().Bool("watch", false, "re-check when interface files change")
	checkCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
}

type checkFlags struct {
	format    string
	withNotes bool
	mode      uiMode
}

func runCheck(cmd *cobra.Command, args []string) error {
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	var cf checkFlags
	if cf.format, err = f.GetString("format"); err != nil {
		return err
	}
	if cf.withNotes, err = f.GetBool("with-notes"); err != nil {
		return err
	}
	uiFlag, _ := f.GetString("ui")
	if cf.mode, err = readUIMode(uiFlag); err != nil {
		return err
	}
	jobs, _ := f.GetInt("jobs")
	strict, _ := f.GetBool("strict-imports")
	useCache, _ := f.GetBool("disk-cache")
	watchMode, _ := f.GetBool("watch")

	t, err := resolveTargets(args)
	if err != nil {
		return err
	}
	if strict {
		t.settings.StrictImports = true
	}

	opts := driver.Options{
		MaxDiagnostics: g.maxDiagnostics,
		Settings:       t.settings,
		Jobs:           jobs,
		Timings:        g.timings,
		Logger:         logger,
		ToolVersion:    version.Version,
		Sink:           buildpipeline.LogSink{Logger: logger},
	}
	if useCache {
		if opts.Cache, err = driver.OpenDiskCache("bridgec"); err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	failed, err := checkOnce(ctx, cmd, t, opts, g, cf)
	if err != nil {
		return err
	}
	if !watchMode {
		if failed {
			return errCompileFailed
		}
		return nil
	}
	return watchLoop(ctx, cmd, t, opts, g, cf)
}

func checkOnce(ctx context.Context, cmd *cobra.Command, t *targets, opts driver.Options, g globalFlags, cf checkFlags) (bool, error) {
	var (
		fs      *source.FileSet
		results []*driver.Result
		err     error
	)
	useTUI := cf.format == "pretty" && !g.quiet && len(t.files) > 1 && shouldUseTUI(cf.mode)
	if useTUI {
		events := make(chan buildpipeline.Event, 64)
		opts.Sink = buildpipeline.Multi(opts.Sink, buildpipeline.ChannelSink{Ch: events})
		done := make(chan struct{})
		go func() {
			defer close(done)
			fs, results, err = driver.CompileFiles(ctx, t.baseDir, t.files, opts)
			close(events)
		}()
		if uiErr := ui.RunProgress("check", displayFiles(t.files), events, cmd.ErrOrStderr()); uiErr != nil {
			// UI упал — дочитываем события, чтобы компиляция не встала
			for range events {
			}
		}
		<-done
	} else {
		fs, results, err = driver.CompileFiles(ctx, t.baseDir, t.files, opts)
	}
	if err != nil {
		return false, err
	}

	bag := driver.MergeBags(results, g.maxDiagnostics)
	failed, err := printDiagnostics(cmd.ErrOrStderr(), bag, fs, cf.format, g, cf.withNotes)
	if err != nil {
		return failed, err
	}
	if !g.quiet && cf.format == "pretty" {
		printSummary(cmd.ErrOrStderr(), results)
	}
	return failed, nil
}

func displayFiles(files []string) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = filepath.ToSlash(filepath.Clean(f))
	}
	return out
}

func printSummary(w io.Writer, results []*driver.Result) {
	ok, cached := 0, 0
	for _, r := range results {
		if r.OK() {
			ok++
		}
		if r.Cached {
			cached++
		}
	}
	fmt.Fprintf(w, "checked %d file(s): %d ok, %d failed", len(results), ok, len(results)-ok)
	if cached > 0 {
		fmt.Fprintf(w, ", %d from cache", cached)
	}
	fmt.Fprintln(w)
}

func watchLoop(ctx context.Context, cmd *cobra.Command, t *targets, opts driver.Options, g globalFlags, cf checkFlags) error {
	changes := make(chan []string, 1)
	w, err := watch.New(watch.Options{Ext: driver.Ext, Logger: opts.Logger}, func(paths []string) {
		select {
		case changes <- paths:
		default:
		}
	})
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()
	if err := w.Add(t.watch...); err != nil {
		return err
	}
	go func() { _ = w.Run(ctx) }()

	if !g.quiet {
		fmt.Fprintln(cmd.ErrOrStderr(), "watching for changes, press Ctrl+C to stop")
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-changes:
			opts.Logger.Info("change detected", "files", paths)
			// набор файлов мог измениться: пересобираем список
			next, err := resolveTargets(t.args)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
				continue
			}
			next.settings.StrictImports = next.settings.StrictImports || opts.Settings.StrictImports
			opts.Settings = next.settings
			cf.mode = uiModeOff
			if _, err := checkOnce(ctx, cmd, next, opts, g, cf); err != nil {
				return err
			}
		}
	}
}
