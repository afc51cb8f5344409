package driver

import (
	"context"
	"fmt"
	"time"

	"bridgec/internal/ast"
	"bridgec/internal/buildpipeline"
	"bridgec/internal/diag"
	"bridgec/internal/export"
	"bridgec/internal/lexer"
	"bridgec/internal/observ"
	"bridgec/internal/parser"
	"bridgec/internal/sema"
	"bridgec/internal/source"
)

// Tokenize loads path and runs the lexer only.
func Tokenize(ctx context.Context, path string, opts Options) (*Result, error) {
	opts.Stop = StopAfterLex
	return Compile(ctx, path, opts)
}

// Parse loads path and runs the lexer and the parser.
func Parse(ctx context.Context, path string, opts Options) (*Result, error) {
	opts.Stop = StopAfterParse
	return Compile(ctx, path, opts)
}

// Compile loads path and runs the pipeline up to opts.Stop. The returned
// error is reserved for I/O and cancellation; compile errors land in
// Result.Err and Result.Bag.
func Compile(ctx context.Context, path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load file: %w", err)
	}
	return compileFile(ctx, fs, fs.Get(id), opts)
}

// CompileSource compiles in-memory content registered under name.
func CompileSource(ctx context.Context, name string, content []byte, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	return compileFile(ctx, fs, fs.Get(id), opts)
}

func compileFile(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) (*Result, error) {
	r := &Result{
		Path:    file.Path,
		FileSet: fs,
		File:    file,
		Bag:     diag.NewBag(opts.maxDiagnostics()),
		Timer:   observ.NewTimer(),
	}
	settings := opts.Settings
	settings.InputFilename = file.Path
	if settings.Logger == nil {
		settings.Logger = opts.Logger
	}
	key := cacheKey(file, settings, opts.ToolVersion)

	defer func() {
		if opts.Timings {
			r.Bag.Add(r.Timer.Diagnostic(file.Path))
		}
	}()

	if opts.stop() == StopAfterVerify && opts.Cache != nil {
		if sum, ok := opts.Cache.Lookup(key, settings); ok {
			r.Summary = sum
			r.Cached = true
			emit(opts, r, buildpipeline.StageLoad, buildpipeline.StatusCached, 0, nil)
			return r, nil
		}
	}

	stages := []struct {
		stage buildpipeline.Stage
		stop  Stop
		run   func() (string, error)
	}{
		{buildpipeline.StageLex, StopAfterLex, func() (string, error) {
			toks, err := lexer.Tokenize(file, lexer.Options{Logger: opts.Logger})
			r.Tokens = toks
			return fmt.Sprintf("%d tokens", len(toks)), err
		}},
		{buildpipeline.StageParse, StopAfterParse, func() (string, error) {
			r.Builder = ast.NewBuilder(ast.Hints{Decls: uint(len(r.Tokens) / 8)}, nil) //nolint:gosec // len is non-negative
			decls, err := parser.Parse(r.Tokens, r.Builder, parser.Options{Logger: opts.Logger})
			r.Decls = decls
			return fmt.Sprintf("%d decls", len(decls)), err
		}},
		{buildpipeline.StageVerify, StopAfterVerify, func() (string, error) {
			m, err := sema.NewModule(r.Builder, r.Decls, settings)
			if err != nil {
				return "", err
			}
			r.Module = m
			r.Summary = export.Summarize(m)
			return fmt.Sprintf("%d functions", len(m.AllExportedFunctions())), nil
		}},
	}

	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		emit(opts, r, st.stage, buildpipeline.StatusWorking, 0, nil)
		started := time.Now()
		idx := r.Timer.Begin(string(st.stage))
		note, err := st.run()
		r.Timer.End(idx, note)
		if err != nil {
			r.fail(err)
			emit(opts, r, st.stage, buildpipeline.StatusError, time.Since(started), err)
			return r, nil
		}
		if st.stop == opts.stop() {
			emit(opts, r, st.stage, buildpipeline.StatusDone, time.Since(started), nil)
			break
		}
	}

	if r.Module != nil && opts.Cache != nil {
		if err := opts.Cache.Store(key, r.Module, r.Summary); err != nil && opts.Logger != nil {
			opts.Logger.Warn("disk cache write failed", "file", file.Path, "error", err)
		}
	}
	return r, nil
}

func emit(opts Options, r *Result, stage buildpipeline.Stage, status buildpipeline.Status, elapsed time.Duration, err error) {
	buildpipeline.Emit(opts.Sink, buildpipeline.Event{
		File:    r.Path,
		Stage:   stage,
		Status:  status,
		Err:     err,
		Elapsed: elapsed,
	})
}
