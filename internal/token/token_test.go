package token_test

import (
	"testing"

	"bridgec/internal/source"
	"bridgec/internal/token"
)

func TestNewPromotesIntegers(t *testing.T) {
	tests := []struct {
		text  string
		kind  token.Kind
		value int64
	}{
		{"42", token.IntLit, 42},
		{"0", token.IntLit, 0},
		{"abc", token.Ident, 0},
		{"99999999999", token.Ident, 0}, // out of int32 range
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			tok := token.New(tt.text, token.Ident, source.CodeRange{})
			if tok.Kind != tt.kind || tok.Value != tt.value {
				t.Fatalf("New(%q) = %v/%d, want %v/%d", tt.text, tok.Kind, tok.Value, tt.kind, tt.value)
			}
		})
	}
}

func TestNewRawKeepsStrings(t *testing.T) {
	tok := token.NewRaw("42", token.StringLit, source.CodeRange{})
	if tok.Kind != token.StringLit {
		t.Fatalf("string literal was promoted to %v", tok.Kind)
	}
}

func TestLookupKeyword(t *testing.T) {
	for _, kw := range []string{"enum", "struct", "class", "static", "delegate", "func", "ctor",
		"get", "set", "array", "const", "module", "import", "true", "false"} {
		k, ok := token.LookupKeyword(kw)
		if !ok || !k.IsKeyword() || k.String() != kw {
			t.Errorf("LookupKeyword(%q) = %v, %v", kw, k, ok)
		}
	}
	for _, notKw := range []string{"Enum", "int", "string", "void", "identifier"} {
		if _, ok := token.LookupKeyword(notKw); ok {
			t.Errorf("%q must not be a keyword", notKw)
		}
	}
}

func TestKindDisplay(t *testing.T) {
	cases := map[token.Kind]string{
		token.Ident:       "<identifier>",
		token.IntLit:      "<int>",
		token.EOF:         "<eof>",
		token.StringLit:   "<string>",
		token.LineComment: "<line comment>",
		token.Semicolon:   ";",
		token.LLBracket:   "[[",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}

func TestLookupSymbol(t *testing.T) {
	if k, ok := token.LookupSymbol('{'); !ok || k != token.LBrace {
		t.Fatalf("LookupSymbol('{') = %v, %v", k, ok)
	}
	if _, ok := token.LookupSymbol('$'); ok {
		t.Fatal("'$' has no symbol kind")
	}
}
