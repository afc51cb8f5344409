// Package token defines lexical token kinds for interface definition files.
// Invariants:
//   - Token.Text is the exact source text of the token, except for string
//     literals where it is the content between the quotes.
//   - Token.Range matches Text exactly (Start..End, StartCol..EndCol).
//   - Every keyword has its own Kind; IsKeyword groups them.
//   - Type names (int, string, handle, ...) are identifiers and are
//     recognized by the semantic layer, not the lexer.
//   - A token whose text parses as a base-10 int32 is an IntLit unless it
//     was produced from a string literal.
package token
