package diag

import (
	"bridgec/internal/source"
)

type Note struct {
	Range source.CodeRange
	Msg   string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.CodeRange
	Notes    []Note
}

func New(sev Severity, code Code, primary source.CodeRange, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.CodeRange, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(rng source.CodeRange, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Range: rng, Msg: msg})
	return d
}

// Line renders the diagnostic in compiler form: file(line,start-end): error: message.
// Diagnostics without a location drop the prefix.
func (d Diagnostic) Line() string {
	label := severityLabel(d.Severity)
	if d.Primary.IsZero() {
		return label + ": " + d.Message
	}
	return d.Primary.String() + ": " + label + ": " + d.Message
}
