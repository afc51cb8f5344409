package driver

import (
	"bridgec/internal/ast"
	"bridgec/internal/diag"
	"bridgec/internal/export"
	"bridgec/internal/observ"
	"bridgec/internal/sema"
	"bridgec/internal/source"
	"bridgec/internal/token"
)

// Result — всё, что получено при компиляции одного файла.
// Поля заполняются по мере прохождения стадий.
type Result struct {
	Path    string
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Builder *ast.Builder
	Decls   []ast.DeclID
	Module  *sema.Module
	// Summary is set after verification or when the cache had the file.
	Summary *export.Module
	Bag     *diag.Bag
	Timer   *observ.Timer
	// Err is the compile error that stopped the pipeline.
	Err    error
	Cached bool
}

// OK reports whether the file compiled without errors.
func (r *Result) OK() bool {
	return r.Err == nil && !r.Bag.HasErrors()
}

func (r *Result) fail(err error) {
	r.Err = err
	r.Bag.AddError(err)
}
