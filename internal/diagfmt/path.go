package diagfmt

import (
	"bridgec/internal/source"
)

func displayPath(path string, fs *source.FileSet, mode PathMode) string {
	if path == "" {
		return ""
	}
	base := ""
	if fs != nil && mode == PathModeRelative {
		base = fs.BaseDir()
	}
	return source.FormatPath(path, mode.format(), base)
}
