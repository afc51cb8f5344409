package parser

import (
	"slices"

	"bridgec/internal/diag"
	"bridgec/internal/source"
	"bridgec/internal/token"
)

func (p *Parser) tk() token.Token {
	return p.toks[p.pos]
}

// prev returns the last consumed token, used to place end-of-file errors.
func (p *Parser) prev() token.Token {
	if p.pos == 0 {
		return p.toks[0]
	}
	return p.toks[p.pos-1]
}

// advance съедает текущий токен; на EOF стоит на месте
func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) at(k token.Kind) bool {
	return p.tk().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.tk().Kind)
}

// accept consumes the current token when it has kind k.
func (p *Parser) accept(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// expect — ожидаем конкретный токен, иначе ошибка с диапазоном текущего.
func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if p.at(k) {
		return p.advance(), nil
	}
	return token.Token{}, p.unexpected(diag.SynUnexpectedToken, k.String())
}

func (p *Parser) expectIdent() (token.Token, error) {
	if p.at(token.Ident) {
		return p.advance(), nil
	}
	return token.Token{}, p.unexpected(diag.SynExpectIdentifier, token.Ident.String())
}

// unexpected reports the current token. At end of input the error points
// just past the last consumed token.
func (p *Parser) unexpected(code diag.Code, want string) error {
	tok := p.tk()
	if tok.Kind == token.EOF {
		return diag.Errorf(diag.SynUnexpectedEOF, p.prev().Range, "Unexpected end-of-file encountered").
			WithNote(tok.Range, "expected "+want)
	}
	return diag.Errorf(code, tok.Range, "Unexpected token '%s' encountered.", tok.Display()).
		WithNote(tok.Range, "expected "+want)
}

func lastRange(toks []token.Token) source.CodeRange {
	if len(toks) == 0 {
		return source.CodeRange{}
	}
	rng := toks[len(toks)-1].Range
	rng.Start, rng.StartCol = rng.End, rng.EndCol
	return rng
}
