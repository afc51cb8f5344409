package fuzztests

import (
	"testing"
	"time"

	"bridgec/internal/ast"
	"bridgec/internal/diag"
	"bridgec/internal/lexer"
	"bridgec/internal/parser"
	"bridgec/internal/sema"
	"bridgec/internal/source"
	"bridgec/internal/testkit"
)

// pipelineTimeout is the maximum time allowed for one input.
// If compilation takes longer, it indicates a potential infinite loop.
const pipelineTimeout = 5 * time.Second

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.bdl", clamp(input, maxFuzzInput)))
		toks, err := lexer.Tokenize(file, lexer.Options{})
		if err != nil {
			if diag.CodeOf(err) == diag.UnknownCode {
				t.Fatalf("lexer returned an error without a code: %v", err)
			}
			return
		}
		if err := testkit.CheckTokenInvariants(toks, file); err != nil {
			t.Fatal(err)
		}
	})
}

func FuzzPipeline(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		done := make(chan struct{})
		go func() {
			defer close(done)
			compile(t, clamp(input, maxFuzzInput))
		}()
		select {
		case <-done:
		case <-time.After(pipelineTimeout):
			t.Fatalf("compilation did not finish within %s", pipelineTimeout)
		}
	})
}

func compile(t *testing.T, input []byte) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("fuzz.bdl", input))
	toks, err := lexer.Tokenize(file, lexer.Options{})
	if err != nil {
		return
	}
	b := ast.NewBuilder(ast.Hints{}, nil)
	decls, err := parser.Parse(toks, b, parser.Options{})
	if err != nil {
		if diag.CodeOf(err) == diag.UnknownCode {
			t.Errorf("parser returned an error without a code: %v", err)
		}
		return
	}
	if err := testkit.CheckDeclInvariants(b, decls, file); err != nil {
		t.Error(err)
		return
	}
	settings := sema.Settings{InputFilename: file.Path, FileExists: func(string) bool { return true }}
	if _, err := sema.NewModule(b, decls, settings); err != nil && diag.CodeOf(err) == diag.UnknownCode {
		t.Errorf("verification returned an error without a code: %v", err)
	}
}
