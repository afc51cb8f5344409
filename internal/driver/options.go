package driver

import (
	"log/slog"

	"bridgec/internal/buildpipeline"
	"bridgec/internal/sema"
)

// Stop selects the last stage Compile runs.
type Stop uint8

const (
	StopAfterLex Stop = iota + 1
	StopAfterParse
	StopAfterVerify
)

// Options configures one compilation run.
type Options struct {
	// MaxDiagnostics caps the diagnostics bag of every file.
	MaxDiagnostics int
	// Settings are applied to every file; InputFilename is replaced per file.
	Settings sema.Settings
	Stop     Stop
	// Jobs limits concurrent files in CompileFiles. 0 means GOMAXPROCS.
	Jobs int
	// Timings adds an OBS6001 info diagnostic with per-stage durations.
	Timings bool
	// Cache stores summaries of verified modules. nil disables caching.
	Cache  *DiskCache
	Sink   buildpipeline.ProgressSink
	Logger *slog.Logger
	// ToolVersion is mixed into cache keys.
	ToolVersion string
}

func (o Options) stop() Stop {
	if o.Stop == 0 {
		return StopAfterVerify
	}
	return o.Stop
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 100
	}
	return o.MaxDiagnostics
}
