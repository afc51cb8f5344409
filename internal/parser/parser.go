package parser

import (
	"log/slog"

	"bridgec/internal/ast"
	"bridgec/internal/diag"
	"bridgec/internal/token"
)

type Options struct {
	// Logger receives one debug record per parsed declaration. nil disables it.
	Logger *slog.Logger
}

// Parser — состояние парсера на один поток токенов
type Parser struct {
	toks []token.Token // всегда заканчивается EOF
	pos  int
	b    *ast.Builder
	opts Options
}

// Parse turns a token stream into top-level declarations. Nodes are
// allocated in b. The first syntax error stops parsing.
func Parse(toks []token.Token, b *ast.Builder, opts Options) ([]ast.DeclID, error) {
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		toks = append(toks, token.NewRaw("", token.EOF, lastRange(toks)))
	}
	p := &Parser{toks: toks, b: b, opts: opts}
	return p.parseDecls()
}

// parseDecls — основной цикл верхнего уровня: пока не EOF — comment? attr? decl.
func (p *Parser) parseDecls() ([]ast.DeclID, error) {
	var decls []ast.DeclID
	for !p.at(token.EOF) {
		meta, err := p.parseMeta()
		if err != nil {
			return nil, err
		}
		// висячий комментарий в конце файла допустим
		if p.at(token.EOF) && meta.Attr == nil {
			break
		}

		var id ast.DeclID
		switch tok := p.tk(); tok.Kind {
		case token.KwModule:
			id, err = p.parseModule(meta)
		case token.KwImport:
			id, err = p.parseImport(meta)
		case token.KwSet:
			id, err = p.parseSetVar(meta)
		case token.KwEnum:
			id, err = p.parseEnum(meta)
		case token.KwStruct:
			id, err = p.parseStruct(meta)
		case token.KwClass:
			id, err = p.parseClass(meta)
		case token.KwDelegate:
			id, err = p.parseDelegate(meta)
		default:
			return nil, diag.Errorf(diag.SynUnexpectedTopLevel, tok.Range,
				"Unexpected top-level token '%s' encountered.", tok.Display())
		}
		if err != nil {
			return nil, err
		}
		if p.opts.Logger != nil {
			d := p.b.Decl(id)
			p.opts.Logger.Debug("parsed declaration", "kind", d.Kind.String(), "name", d.Name, "at", d.Range.String())
		}
		decls = append(decls, id)
	}
	return decls, nil
}

// parseMeta collects the doc comment and the attribute written before a declaration.
func (p *Parser) parseMeta() (ast.Meta, error) {
	var meta ast.Meta
	if p.at(token.LineComment) {
		first := p.tk()
		rng := first.Range
		var lines []string
		for p.at(token.LineComment) {
			tok := p.advance()
			rng = rng.Merge(tok.Range)
			lines = append(lines, tok.Text)
		}
		meta.Comment = ast.NewComment(rng, lines)
	}
	if p.at(token.LLBracket) {
		p.advance()
		name, err := p.expectIdent()
		if err != nil {
			return meta, err
		}
		if _, err := p.expect(token.RRBracket); err != nil {
			return meta, err
		}
		meta.Attr = &ast.Attribute{Name: name.Text, Range: name.Range}
	}
	return meta, nil
}
