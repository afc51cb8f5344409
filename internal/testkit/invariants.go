package testkit

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"bridgec/internal/ast"
	"bridgec/internal/source"
	"bridgec/internal/token"
)

// CheckTokenInvariants runs a minimal set of range invariants on a token stream:
// 1) the stream ends with exactly one EOF
// 2) every non-EOF range lies inside the file and points to the file's path
// 3) ranges never go backwards
// 4) the column span of a single-line range matches the rune count of the covered bytes
func CheckTokenInvariants(toks []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		return fmt.Errorf("token stream does not end with EOF")
	}
	prevEnd := 0
	for i, tok := range toks[:len(toks)-1] {
		if tok.Kind == token.EOF {
			return fmt.Errorf("EOF at position %d before the end", i)
		}
		if err := checkRange(tok.Range, sf); err != nil {
			return fmt.Errorf("token %d (%s): %w", i, tok.Kind, err)
		}
		if tok.Range.Start < prevEnd {
			return fmt.Errorf("token %d (%s) starts at %d before previous end %d", i, tok.Kind, tok.Range.Start, prevEnd)
		}
		prevEnd = tok.Range.End
	}
	return nil
}

// CheckDeclInvariants checks that every declaration, member, field, function,
// parameter and property carries a range inside sf.
func CheckDeclInvariants(b *ast.Builder, decls []ast.DeclID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	check := func(what, name string, rng source.CodeRange) error {
		if err := checkRange(rng, sf); err != nil {
			return fmt.Errorf("%s %q: %w", what, name, err)
		}
		return nil
	}
	for _, id := range decls {
		d := b.Decl(id)
		if d == nil {
			return fmt.Errorf("nil decl for id=%d", id)
		}
		if err := check(d.Kind.String(), d.Name, d.Range); err != nil {
			return err
		}
		switch d.Kind {
		case ast.DeclEnum:
			e, _ := b.Enum(id)
			for _, mid := range e.Members {
				m := b.Member(mid)
				if err := check("enum member", m.Name, m.Range); err != nil {
					return err
				}
			}
		case ast.DeclStruct:
			s, _ := b.Struct(id)
			for _, fid := range s.Fields {
				f := b.Field(fid)
				if err := check("field", f.Name, f.Range); err != nil {
					return err
				}
				if err := check("field type", f.Name, f.Type.Range); err != nil {
					return err
				}
			}
		case ast.DeclClass:
			c, _ := b.Class(id)
			for _, fid := range c.Funcs {
				fn := b.Func(fid)
				if err := check("function", fn.Name, fn.Range); err != nil {
					return err
				}
				if err := checkParams(b, fn.Params, check); err != nil {
					return err
				}
			}
			for _, pid := range c.Props {
				p := b.Prop(pid)
				if err := check("property", p.Name, p.Range); err != nil {
					return err
				}
			}
		case ast.DeclDelegate:
			dl, _ := b.Delegate(id)
			if err := checkParams(b, dl.Params, check); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkParams(b *ast.Builder, params []ast.ParamID, check func(string, string, source.CodeRange) error) error {
	for _, pid := range params {
		p := b.Param(pid)
		if err := check("param", p.Name, p.Range); err != nil {
			return err
		}
	}
	return nil
}

func checkRange(rng source.CodeRange, sf *source.File) error {
	if rng.File != sf.Path {
		return fmt.Errorf("range file %q, want %q", rng.File, sf.Path)
	}
	if rng.Start < 0 || rng.End < rng.Start || rng.End > len(sf.Content) {
		return fmt.Errorf("range %d-%d outside content of %d bytes", rng.Start, rng.End, len(sf.Content))
	}
	if rng.Line < 1 || rng.StartCol < 1 {
		return fmt.Errorf("range %s has no position", rng)
	}
	covered := sf.Content[rng.Start:rng.End]
	// у многострочных диапазонов (например, "int\narray") колонки относятся к первой строке
	if bytes.IndexByte(covered, '\n') < 0 && rng.EndCol-rng.StartCol != utf8.RuneCount(covered) {
		return fmt.Errorf("range %s spans %d runes", rng, utf8.RuneCount(covered))
	}
	return nil
}
