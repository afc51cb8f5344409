package parser

import (
	"bridgec/internal/ast"
	"bridgec/internal/diag"
	"bridgec/internal/token"
)

// parseClass parses
//
//	class Window { ctor Create(int w, int h); func void Show(); get set int Width; }
//	class Math static { static func float Sqrt(float x); }
//	class Opaque;
func (p *Parser) parseClass(meta ast.Meta) (ast.DeclID, error) {
	p.advance()
	name, err := p.expectIdent()
	if err != nil {
		return ast.NoDeclID, err
	}

	static := false
	for !p.atOr(token.LBrace, token.Semicolon, token.EOF) {
		mod := p.tk()
		switch {
		case mod.Kind != token.KwStatic:
			return ast.NoDeclID, diag.Errorf(diag.SynModifierNotAllowed, mod.Range,
				"Unknown class modifier '%s' specified.", mod.Display())
		case static:
			return ast.NoDeclID, diag.Errorf(diag.SynDuplicateModifier, mod.Range,
				"Class modifier '%s' specified multiple times.", mod.Display())
		}
		static = true
		p.advance()
	}

	id := p.b.NewClass(name.Text, name.Range, meta, static)
	if p.accept(token.Semicolon) {
		return id, nil
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return ast.NoDeclID, err
	}

	for !p.at(token.RBrace) {
		memberMeta, err := p.parseMeta()
		if err != nil {
			return ast.NoDeclID, err
		}
		memberStatic := p.accept(token.KwStatic)

		switch p.tk().Kind {
		case token.KwFunc, token.KwCtor:
			fn, err := p.parseFunc(memberMeta, memberStatic)
			if err != nil {
				return ast.NoDeclID, err
			}
			p.b.AddFunc(id, fn)
		case token.KwGet, token.KwSet:
			prop, err := p.parseProperty(memberMeta, memberStatic)
			if err != nil {
				return ast.NoDeclID, err
			}
			p.b.AddProperty(id, prop)
		default:
			return ast.NoDeclID, p.unexpected(diag.SynUnexpectedToken, "'func', 'ctor', 'get' or 'set'")
		}
	}
	p.advance()
	p.accept(token.Semicolon)
	return id, nil
}

// parseFunc parses
//
//	func <type> Name(<params>) const;
//	ctor Name(<params>);
func (p *Parser) parseFunc(meta ast.Meta, static bool) (ast.FuncID, error) {
	kw := p.advance()
	fn := ast.Func{Meta: meta}
	if static {
		fn.Flags |= ast.FuncStatic
	}

	if kw.Kind == token.KwCtor {
		fn.Flags |= ast.FuncCtor
		fn.Return = ast.TypeRef{Type: p.b.Types.Builtins().Void, Range: kw.Range}
	} else {
		ret, err := p.parseType()
		if err != nil {
			return ast.NoFuncID, err
		}
		fn.Return = ret
	}

	name, err := p.expectIdent()
	if err != nil {
		return ast.NoFuncID, err
	}
	fn.Name, fn.Range = name.Text, name.Range

	params, err := p.parseParams()
	if err != nil {
		return ast.NoFuncID, err
	}

	if p.at(token.KwConst) {
		constTok := p.advance()
		if fn.IsCtor() {
			return ast.NoFuncID, diag.Errorf(diag.SynConstCtor, constTok.Range,
				"A constructor cannot be declared as const.")
		}
		fn.Flags |= ast.FuncConst
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return ast.NoFuncID, err
	}
	return p.b.NewFunc(fn, params), nil
}

// parseProperty parses `get <type> Name;`, `set <type> Name;` and `get set <type> Name;`.
func (p *Parser) parseProperty(meta ast.Meta, static bool) (ast.Property, error) {
	prop := ast.Property{Meta: meta, Static: static}
	for p.atOr(token.KwGet, token.KwSet) {
		acc := p.advance()
		bit := ast.PropGetter
		if acc.Kind == token.KwSet {
			bit = ast.PropSetter
		}
		if prop.Mask&bit != 0 {
			return ast.Property{}, diag.Errorf(diag.SynDuplicateAccessor, acc.Range,
				"Property accessor '%s' specified multiple times.", acc.Display())
		}
		prop.Mask |= bit
	}

	typ, err := p.parseType()
	if err != nil {
		return ast.Property{}, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return ast.Property{}, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return ast.Property{}, err
	}
	prop.Type, prop.Name, prop.Range = typ, name.Text, name.Range
	return prop, nil
}
