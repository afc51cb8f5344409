package sema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bridgec/internal/ast"
	"bridgec/internal/diag"
	"bridgec/internal/lexer"
	"bridgec/internal/parser"
	"bridgec/internal/source"
)

func build(t *testing.T, input string, settings Settings) (*Module, error) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.bdl", []byte(input)))
	toks, err := lexer.Tokenize(file, lexer.Options{})
	require.NoError(t, err)
	b := ast.NewBuilder(ast.Hints{}, nil)
	decls, err := parser.Parse(toks, b, parser.Options{})
	require.NoError(t, err)
	if settings.InputFilename == "" {
		settings.InputFilename = "test.bdl"
	}
	return NewModule(b, decls, settings)
}

func mustBuild(t *testing.T, input string) *Module {
	t.Helper()
	m, err := build(t, input, Settings{})
	require.NoError(t, err)
	return m
}

// buildError compiles input and returns the diagnostic of the expected failure.
func buildError(t *testing.T, input string, code diag.Code) diag.Diagnostic {
	t.Helper()
	_, err := build(t, input, Settings{})
	require.Error(t, err)
	d := diag.AsDiagnostic(err)
	require.Equalf(t, code.ID(), d.Code.ID(), "unexpected error: %v", err)
	return d
}

func funcByName(m *Module, name string) (ast.FuncID, bool) {
	for _, id := range m.AllExportedFunctions() {
		if m.Builder.Func(id).Name == name {
			return id, true
		}
	}
	return ast.NoFuncID, false
}
