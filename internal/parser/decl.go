package parser

import (
	"bridgec/internal/ast"
	"bridgec/internal/diag"
	"bridgec/internal/source"
	"bridgec/internal/token"
)

// parseModule parses
//
//	module myLib;
func (p *Parser) parseModule(meta ast.Meta) (ast.DeclID, error) {
	p.advance()
	name, err := p.expectIdent()
	if err != nil {
		return ast.NoDeclID, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return ast.NoDeclID, err
	}
	return p.b.NewModule(name.Text, name.Range, meta), nil
}

// parseImport parses
//
//	import "other.bdl";
func (p *Parser) parseImport(meta ast.Meta) (ast.DeclID, error) {
	p.advance()
	path, err := p.expect(token.StringLit)
	if err != nil {
		return ast.NoDeclID, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return ast.NoDeclID, err
	}
	return p.b.NewImport(path.Text, path.Range, meta), nil
}

// parseSetVar parses a module variable assignment. The literal decides the
// value type; a bare identifier is taken as a string.
//
//	set version "1.2.0";
//	set cpp_vectorsupport false;
func (p *Parser) parseSetVar(meta ast.Meta) (ast.DeclID, error) {
	p.advance()
	name, err := p.expectIdent()
	if err != nil {
		return ast.NoDeclID, err
	}

	var value ast.Value
	valTok := p.tk()
	switch valTok.Kind {
	case token.KwTrue, token.KwFalse:
		p.advance()
		value = ast.BoolValue(valTok.Kind == token.KwTrue)
	case token.IntLit, token.Minus:
		n, rng, err := p.parseInt()
		if err != nil {
			return ast.NoDeclID, err
		}
		valTok.Range = rng
		value = ast.IntValue(n)
	case token.StringLit, token.Ident:
		p.advance()
		value = ast.StringValue(valTok.Text)
	case token.EOF:
		return ast.NoDeclID, p.unexpected(diag.SynExpectValue, "a value")
	default:
		return ast.NoDeclID, diag.Errorf(diag.SynExpectValue, valTok.Range,
			"No value specified for variable '%s'; found '%s'.", name.Text, valTok.Display())
	}

	if _, err := p.expect(token.Semicolon); err != nil {
		return ast.NoDeclID, err
	}
	return p.b.NewSetVar(name.Text, name.Range, meta, value, valTok.Range), nil
}

// parseInt reads an optionally negated integer literal.
func (p *Parser) parseInt() (int64, source.CodeRange, error) {
	neg := p.tk()
	negative := p.accept(token.Minus)
	lit, err := p.expect(token.IntLit)
	if err != nil {
		return 0, source.CodeRange{}, err
	}
	if negative {
		if !neg.Range.DirectNeighbor(lit.Range) {
			return 0, source.CodeRange{}, diag.Errorf(diag.SynUnexpectedToken, neg.Range,
				"Unexpected token '%s' encountered.", neg.Display())
		}
		return -lit.Value, neg.Range.Merge(lit.Range), nil
	}
	return lit.Value, lit.Range, nil
}

// parseEnum parses
//
//	enum Color { Red, Green = 5, Blue, }
func (p *Parser) parseEnum(meta ast.Meta) (ast.DeclID, error) {
	p.advance()
	name, err := p.expectIdent()
	if err != nil {
		return ast.NoDeclID, err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return ast.NoDeclID, err
	}
	id := p.b.NewEnum(name.Text, name.Range, meta)

	for !p.at(token.RBrace) {
		memberMeta, err := p.parseMeta()
		if err != nil {
			return ast.NoDeclID, err
		}
		member, err := p.expectIdent()
		if err != nil {
			return ast.NoDeclID, err
		}
		var value *int64
		if p.accept(token.Assign) {
			n, _, err := p.parseInt()
			if err != nil {
				return ast.NoDeclID, err
			}
			value = &n
		}
		p.b.AddEnumMember(id, member.Text, member.Range, memberMeta, value)

		if !p.accept(token.Comma) && !p.at(token.RBrace) {
			return ast.NoDeclID, p.unexpected(diag.SynUnexpectedToken, "',' or '}'")
		}
	}
	p.advance()
	p.accept(token.Semicolon)
	return id, nil
}

// parseStruct parses
//
//	struct Vector { float X; float Y; }
func (p *Parser) parseStruct(meta ast.Meta) (ast.DeclID, error) {
	p.advance()
	name, err := p.expectIdent()
	if err != nil {
		return ast.NoDeclID, err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return ast.NoDeclID, err
	}
	id := p.b.NewStruct(name.Text, name.Range, meta)

	for !p.at(token.RBrace) {
		fieldMeta, err := p.parseMeta()
		if err != nil {
			return ast.NoDeclID, err
		}
		typ, err := p.parseType()
		if err != nil {
			return ast.NoDeclID, err
		}
		field, err := p.expectIdent()
		if err != nil {
			return ast.NoDeclID, err
		}
		if _, err := p.expect(token.Semicolon); err != nil {
			return ast.NoDeclID, err
		}
		p.b.AddField(id, field.Text, field.Range, fieldMeta, typ)
	}
	p.advance()
	p.accept(token.Semicolon)
	return id, nil
}

// parseDelegate parses
//
//	delegate void Callback(int code, string message);
func (p *Parser) parseDelegate(meta ast.Meta) (ast.DeclID, error) {
	p.advance()
	ret, err := p.parseType()
	if err != nil {
		return ast.NoDeclID, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return ast.NoDeclID, err
	}
	params, err := p.parseParams()
	if err != nil {
		return ast.NoDeclID, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return ast.NoDeclID, err
	}
	return p.b.NewDelegate(name.Text, name.Range, meta, ret, params), nil
}
