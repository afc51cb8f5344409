package token

import (
	"strconv"

	"bridgec/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind  Kind
	Range source.CodeRange
	Text  string
	// Value holds the parsed number when Kind is IntLit.
	Value int64
}

// New builds a token and promotes it to IntLit when its text is a
// base-10 integer.
func New(text string, kind Kind, rng source.CodeRange) Token {
	tok := Token{Kind: kind, Range: rng, Text: text}
	if v, err := strconv.ParseInt(text, 10, 32); err == nil {
		tok.Kind = IntLit
		tok.Value = v
	}
	return tok
}

// NewRaw builds a token without integer promotion. String literals use it
// so that "42" stays a string.
func NewRaw(text string, kind Kind, rng source.CodeRange) Token {
	return Token{Kind: kind, Range: rng, Text: text}
}

// Is reports whether the token has kind k.
func (t Token) Is(k Kind) bool { return t.Kind == k }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsLiteral reports whether the token is an int, bool, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// Display is the form used when the token is quoted in an error message.
func (t Token) Display() string {
	switch t.Kind {
	case EOF, Newline, CarriageReturn:
		return t.Kind.String()
	default:
		return t.Text
	}
}
