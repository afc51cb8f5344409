package sema

import (
	"log/slog"
	"os"
	"strings"
)

// Settings configure how a module is assembled.
type Settings struct {
	// InputFilename is the file the declarations were parsed from. Relative
	// imports are resolved against its directory.
	InputFilename   string
	OutputDirectory string

	GenerateCSharp bool
	GeneratePython bool
	GenerateJava   bool
	GenerateCMake  bool

	// StrictImports requires every import to come right after the module
	// declaration, before any other declaration.
	StrictImports bool

	// FileExists checks import targets. nil uses the file system.
	FileExists func(path string) bool

	// ModuleID identifies the module within one compilation. 0 means 1.
	ModuleID uint32

	Logger *slog.Logger
}

// ImportExists reports whether an import target is present.
func (s Settings) ImportExists(path string) bool { return s.fileExists(path) }

func (s Settings) fileExists(path string) bool {
	if s.FileExists != nil {
		return s.FileExists(path)
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// CaseStyle selects how synthesized function names are cased.
type CaseStyle uint8

const (
	PascalCase CaseStyle = iota
	CamelCase
)

func (c CaseStyle) String() string {
	if c == CamelCase {
		return "camelCase"
	}
	return "PascalCase"
}

// ParseCaseStyle accepts "PascalCase" and "camelCase", case-insensitively,
// as well as the short forms "pascal" and "camel".
func ParseCaseStyle(s string) (CaseStyle, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pascalcase", "pascal":
		return PascalCase, true
	case "camelcase", "camel":
		return CamelCase, true
	default:
		return PascalCase, false
	}
}
