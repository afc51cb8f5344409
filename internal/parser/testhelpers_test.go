package parser

import (
	"testing"

	"bridgec/internal/ast"
	"bridgec/internal/diag"
	"bridgec/internal/lexer"
	"bridgec/internal/source"
)

func parseSource(t *testing.T, input string) (*ast.Builder, []ast.DeclID, error) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.bdl", []byte(input)))
	toks, err := lexer.Tokenize(file, lexer.Options{})
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	b := ast.NewBuilder(ast.Hints{}, nil)
	decls, err := Parse(toks, b, Options{})
	return b, decls, err
}

func mustParse(t *testing.T, input string) (*ast.Builder, []ast.DeclID) {
	t.Helper()
	b, decls, err := parseSource(t, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return b, decls
}

func expectParseError(t *testing.T, input string, code diag.Code, msg string) *diag.Error {
	t.Helper()
	_, _, err := parseSource(t, input)
	if err == nil {
		t.Fatalf("expected error %s, got none", code.ID())
	}
	d := diag.AsDiagnostic(err)
	if d.Code != code {
		t.Fatalf("expected %s, got %s (%v)", code.ID(), d.Code.ID(), err)
	}
	if msg != "" && d.Message != msg {
		t.Fatalf("message mismatch:\n got: %q\nwant: %q", d.Message, msg)
	}
	var ce *diag.Error
	ce, _ = err.(*diag.Error)
	return ce
}
