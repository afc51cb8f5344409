package lexer

import (
	"log/slog"
)

type Options struct {
	// Logger receives per-pass debug records. nil disables logging.
	Logger *slog.Logger
}

func (lx *Lexer) debug(pass string, count int) {
	if lx.opts.Logger != nil {
		lx.opts.Logger.Debug("lexer pass", "file", lx.file.Path, "pass", pass, "tokens", count)
	}
}
