package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"bridgec/internal/token"
)

type TokenOutput struct {
	Kind     string `json:"kind"`
	Text     string `json:"text,omitempty"`
	Line     int    `json:"line"`
	StartCol int    `json:"start_col"`
	EndCol   int    `json:"end_col"`
	Value    *int64 `json:"value,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" && tok.Kind != token.EOF {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d\n", tok.Range.Line, tok.Range.StartCol, tok.Range.EndCol)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind:     tok.Kind.String(),
			Line:     tok.Range.Line,
			StartCol: tok.Range.StartCol,
			EndCol:   tok.Range.EndCol,
		}
		if tok.Kind != token.EOF {
			out.Text = tok.Text
		}
		if tok.Kind == token.IntLit {
			v := tok.Value
			out.Value = &v
		}
		output = append(output, out)
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
