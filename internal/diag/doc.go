// Package diag defines the diagnostic model shared by the lexer, parser and
// module verifier.
//
// Compilation is fail-fast: every phase returns the first problem it finds as
// an *Error, which wraps a Diagnostic. The Diagnostic carries:
//
//   - Severity: Info, Warning or Error (severity.go).
//   - Code: compact numeric identifier with a stable string form (codes.go).
//     Ranges: LEX 1000s, SYN 2000s, SEM 3000s, IO 4000s, PRJ 5000s, OBS 6000s.
//   - Message: short human text, e.g. "Undefined symbol 'X' used."
//   - Primary: the source.CodeRange the message points at.
//   - Notes: optional secondary locations ("declared here").
//
// Error() renders as file(line,colStart-colEnd): error: message, the form
// IDEs recognise for jump-to-location.
//
// Bag aggregates diagnostics when several files are checked in one run
// (directory mode, watch mode). Rendering lives in internal/diagfmt.
package diag
