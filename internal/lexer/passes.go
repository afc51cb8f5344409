package lexer

import (
	"slices"
	"unicode/utf8"

	"bridgec/internal/diag"
	"bridgec/internal/source"
	"bridgec/internal/token"
)

type kindPair struct{ a, b token.Kind }

var multiChar = map[kindPair]token.Kind{
	{token.Hash, token.Hash}:         token.HashHash,
	{token.Slash, token.Slash}:       token.CommentStart,
	{token.LBracket, token.LBracket}: token.LLBracket,
	{token.RBracket, token.RBracket}: token.RRBracket,
}

// mergeMultiChar joins two-character punctuation written without a gap.
func (lx *Lexer) mergeMultiChar() {
	out := lx.toks[:0]
	for i := 0; i < len(lx.toks); i++ {
		tok := lx.toks[i]
		if i+1 < len(lx.toks) {
			next := lx.toks[i+1]
			if kind, ok := multiChar[kindPair{tok.Kind, next.Kind}]; ok && tok.Range.DirectNeighbor(next.Range) {
				tok = token.NewRaw(tok.Text+next.Text, kind, tok.Range.Merge(next.Range))
				i++
			}
		}
		out = append(out, tok)
	}
	lx.toks = out
}

// mergeStrings folds everything between two quote marks into one StringLit
// whose text is the raw source between the quotes. Quotes inside a //
// comment are left for the comment pass.
func (lx *Lexer) mergeStrings() error {
	out := make([]token.Token, 0, len(lx.toks))
	for i := 0; i < len(lx.toks); i++ {
		tok := lx.toks[i]
		switch tok.Kind {
		case token.CommentStart:
			j := i
			for j < len(lx.toks) && !isLineBreak(lx.toks[j].Kind) {
				j++
			}
			out = append(out, lx.toks[i:j]...)
			i = j - 1
		case token.Quote:
			j := i + 1
			for j < len(lx.toks) && lx.toks[j].Kind != token.Quote {
				j++
			}
			if j == len(lx.toks) {
				return diag.Errorf(diag.LexUnterminatedString, tok.Range, "Unfinished string")
			}
			out = append(out, lx.stringBetween(tok, lx.toks[j]))
			i = j
		default:
			out = append(out, tok)
		}
	}
	lx.toks = out
	return nil
}

func (lx *Lexer) stringBetween(open, closing token.Token) token.Token {
	rng := source.CodeRange{
		File:     open.Range.File,
		Line:     open.Range.Line,
		Start:    open.Range.End,
		End:      closing.Range.Start,
		StartCol: open.Range.EndCol,
		EndCol:   closing.Range.StartCol,
	}
	text := string(lx.file.Content[rng.Start:rng.End])
	if closing.Range.Line != open.Range.Line {
		rng.EndCol = rng.StartCol + utf8.RuneCountInString(text)
	}
	return token.NewRaw(text, token.StringLit, rng)
}

// mergeIdentifiers glues identifier pieces the class split apart, e.g.
// "vec3f" arrives as vec, 3, f.
func (lx *Lexer) mergeIdentifiers() {
	out := lx.toks[:0]
	for i := 0; i < len(lx.toks); i++ {
		tok := lx.toks[i]
		if tok.Kind != token.Ident && !tok.Kind.IsKeyword() {
			out = append(out, tok)
			continue
		}
		j := i
		for j+1 < len(lx.toks) && gluable(lx.toks[j+1].Kind) && lx.toks[j].Range.DirectNeighbor(lx.toks[j+1].Range) {
			j++
		}
		if j > i {
			rng := tok.Range.Merge(lx.toks[j].Range)
			tok = token.NewRaw(string(lx.file.Content[rng.Start:rng.End]), token.Ident, rng)
			i = j
		}
		out = append(out, tok)
	}
	lx.toks = out
}

func gluable(k token.Kind) bool {
	return k == token.Ident || k == token.IntLit || k.IsKeyword()
}

// mergeComments turns // and everything after it on the same line into a
// single LineComment. A comment must be terminated by a line break.
func (lx *Lexer) mergeComments() error {
	out := make([]token.Token, 0, len(lx.toks))
	for i := 0; i < len(lx.toks); i++ {
		tok := lx.toks[i]
		if tok.Kind != token.CommentStart {
			out = append(out, tok)
			continue
		}
		j := i + 1
		for j < len(lx.toks) && !isLineBreak(lx.toks[j].Kind) {
			j++
		}
		if j == len(lx.toks) {
			return diag.Errorf(diag.LexUnexpectedEOF, tok.Range, "Unexpected end-of-file encountered")
		}
		rng := tok.Range.Merge(lx.toks[j-1].Range)
		text := string(lx.file.Content[rng.Start:rng.End])
		rng.EndCol = rng.StartCol + utf8.RuneCountInString(text)
		out = append(out, token.NewRaw(text, token.LineComment, rng))
		i = j - 1
	}
	lx.toks = out
	return nil
}

func isLineBreak(k token.Kind) bool {
	return k == token.Newline || k == token.CarriageReturn
}

// finish drops line breaks, rejects leftover unknown symbols and appends EOF.
func (lx *Lexer) finish() error {
	lx.toks = slices.DeleteFunc(lx.toks, func(t token.Token) bool {
		return isLineBreak(t.Kind)
	})
	for _, tok := range lx.toks {
		if tok.Kind == token.Unknown {
			return diag.Errorf(diag.LexUnknownSymbol, tok.Range, "Unknown symbol '%s' encountered.", tok.Text)
		}
	}
	lx.toks = append(lx.toks, lx.eof())
	return nil
}

func (lx *Lexer) eof() token.Token {
	end := len(lx.file.Content)
	col := columnAt(lx.file.Content, end)
	return token.NewRaw("", token.EOF, source.CodeRange{
		File:     lx.file.Path,
		Line:     lx.cursor.Line,
		Start:    end,
		End:      end,
		StartCol: col,
		EndCol:   col,
	})
}
