package lexer

import (
	"unicode"
	"unicode/utf8"

	"bridgec/internal/source"
	"bridgec/internal/token"
)

// Lexer turns one interface file into a flat token list.
// Tokenization runs in passes over the token slice:
//
//  1. atomize: split the text by character class;
//  2. merge ##, //, [[ and ]] written without a gap;
//  3. merge "..." into string literals;
//  4. glue identifiers split across letter/digit classes (x1y);
//  5. merge // up to the end of the line into a line comment;
//  6. drop line breaks and append EOF.
//
// The first problem aborts tokenization with a *diag.Error.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	toks   []token.Token
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Tokenize lexes file with default options.
func Tokenize(file *source.File, opts Options) ([]token.Token, error) {
	return New(file, opts).Tokenize()
}

// Tokenize runs every pass and returns the token list terminated by EOF.
func (lx *Lexer) Tokenize() ([]token.Token, error) {
	lx.atomize()
	lx.debug("atomize", len(lx.toks))

	lx.mergeMultiChar()
	lx.debug("multichar", len(lx.toks))

	if err := lx.mergeStrings(); err != nil {
		return nil, err
	}
	lx.debug("strings", len(lx.toks))

	lx.mergeIdentifiers()
	lx.debug("identifiers", len(lx.toks))

	if err := lx.mergeComments(); err != nil {
		return nil, err
	}
	lx.debug("comments", len(lx.toks))

	if err := lx.finish(); err != nil {
		return nil, err
	}
	lx.debug("cleanup", len(lx.toks))
	return lx.toks, nil
}

type charClass uint8

const (
	classLetter charClass = iota + 1
	classDigit
	classOther
	classSpace
)

func classify(r rune) charClass {
	switch {
	case r == '_' || unicode.IsLetter(r):
		return classLetter
	case unicode.IsDigit(r):
		return classDigit
	case unicode.IsSpace(r):
		return classSpace
	default:
		return classOther
	}
}

// atomize splits the file into atoms. Runs of letters and runs of digits
// stay together; every other non-blank rune becomes its own token. Line
// breaks are kept as tokens until cleanup.
func (lx *Lexer) atomize() {
	c := &lx.cursor
	var (
		open    bool
		openCls charClass
		mark    Mark
	)
	flush := func() {
		if open {
			lx.emit(mark, openCls)
			open = false
		}
	}

	for !c.EOF() {
		r, _ := c.Peek()
		cls := classify(r)
		switch {
		case r == '\n' || r == '\r':
			flush()
			m := c.Mark()
			c.Bump()
			lx.emit(m, classOther)
		case cls == classSpace:
			flush()
			c.Bump()
		case (cls == classLetter || cls == classDigit) && open && openCls == cls:
			c.Bump()
		case cls == classLetter || cls == classDigit:
			flush()
			open, openCls, mark = true, cls, c.Mark()
			c.Bump()
		default:
			flush()
			m := c.Mark()
			c.Bump()
			lx.emit(m, classOther)
		}
	}
	flush()
}

func (lx *Lexer) emit(m Mark, cls charClass) {
	rng := lx.cursor.RangeFrom(m)
	text := string(lx.file.Content[rng.Start:rng.End])
	lx.toks = append(lx.toks, token.New(text, atomKind(text, cls), rng))
}

// atomKind derives the kind of a fresh atom. Digit runs are promoted to
// IntLit by token.New.
func atomKind(text string, cls charClass) token.Kind {
	switch cls {
	case classLetter:
		if kw, ok := token.LookupKeyword(text); ok {
			return kw
		}
		return token.Ident
	case classOther:
		r, _ := utf8.DecodeRuneInString(text)
		if k, ok := token.LookupSymbol(r); ok {
			return k
		}
		return token.Unknown
	default:
		return token.Ident
	}
}
