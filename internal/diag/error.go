package diag

import (
	"errors"
	"fmt"

	"bridgec/internal/source"
)

// Error is the fail-fast compile error returned by the lexer, parser and
// verifier. The first one aborts the compilation.
type Error struct {
	Diagnostic
}

// Errorf builds an error-severity compile error at rng.
func Errorf(code Code, rng source.CodeRange, format string, args ...any) *Error {
	return &Error{Diagnostic: NewError(code, rng, fmt.Sprintf(format, args...))}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Diagnostic.Line()
}

// WithNote attaches a secondary location to the error.
func (e *Error) WithNote(rng source.CodeRange, msg string) *Error {
	e.Diagnostic = e.Diagnostic.WithNote(rng, msg)
	return e
}

// AsDiagnostic extracts the diagnostic carried by err. Errors that did not
// originate from compilation become an unlocated IO diagnostic.
func AsDiagnostic(err error) Diagnostic {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Diagnostic
	}
	return NewError(IOLoadFileError, source.CodeRange{}, err.Error())
}

// CodeOf returns the diagnostic code of err, or UnknownCode.
func CodeOf(err error) Code {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return UnknownCode
}
