package parser

import (
	"bridgec/internal/ast"
	"bridgec/internal/diag"
	"bridgec/internal/token"
)

// parseType parses `<name>` or `<name> array`. The name stays a placeholder
// until verification.
func (p *Parser) parseType() (ast.TypeRef, error) {
	name, err := p.expectIdent()
	if err != nil {
		return ast.TypeRef{}, p.unexpected(diag.SynExpectType, "a type")
	}
	ref := ast.TypeRef{Type: p.b.Types.Unresolved(name.Text), Range: name.Range}

	if p.at(token.KwArray) {
		arr := p.advance()
		ref.Type, _ = p.b.Types.Array(ref.Type)
		ref.Range = ref.Range.Merge(arr.Range)
		if p.at(token.KwArray) {
			return ast.TypeRef{}, diag.Errorf(diag.SynNestedArray, p.tk().Range,
				"Arrays of arrays are not supported.")
		}
	}
	return ref, nil
}

// parseParams parses `( <type> <name>, ... )`.
func (p *Parser) parseParams() ([]ast.Param, error) {
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	var params []ast.Param
	for !p.at(token.RParen) {
		if len(params) > 0 {
			if _, err := p.expect(token.Comma); err != nil {
				return nil, err
			}
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Name: name.Text, Range: name.Range, Type: typ})
	}
	p.advance()
	return params, nil
}
