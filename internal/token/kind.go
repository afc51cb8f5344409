package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents a decimal integer literal.
	IntLit
	// StringLit represents the content of a "..." literal.
	StringLit
	// LineComment represents a whole // comment up to the end of its line.
	LineComment
	// CommentStart is the bare // marker before comment merging.
	CommentStart

	KwEnum     // enum
	KwStruct   // struct
	KwClass    // class
	KwStatic   // static
	KwDelegate // delegate
	KwFunc     // func
	KwCtor     // ctor
	KwGet      // get
	KwSet      // set
	KwArray    // array
	KwConst    // const
	KwModule   // module
	KwImport   // import
	KwTrue     // true
	KwFalse    // false

	Assign         // =
	Comma          // ,
	Semicolon      // ;
	Colon          // :
	LParen         // (
	RParen         // )
	LBrace         // {
	RBrace         // }
	LBracket       // [
	RBracket       // ]
	LLBracket      // [[
	RRBracket      // ]]
	Dot            // .
	Hash           // #
	HashHash       // ##
	Slash          // /
	Quote          // "
	Plus           // +
	Minus          // -
	Star           // *
	Newline        // \n
	CarriageReturn // \r
	// Unknown is a symbol that has no meaning outside comments and strings.
	Unknown
)

var kindNames = [...]string{
	Invalid:        "<invalid>",
	EOF:            "<eof>",
	Ident:          "<identifier>",
	IntLit:         "<int>",
	StringLit:      "<string>",
	LineComment:    "<line comment>",
	CommentStart:   "//",
	KwEnum:         "enum",
	KwStruct:       "struct",
	KwClass:        "class",
	KwStatic:       "static",
	KwDelegate:     "delegate",
	KwFunc:         "func",
	KwCtor:         "ctor",
	KwGet:          "get",
	KwSet:          "set",
	KwArray:        "array",
	KwConst:        "const",
	KwModule:       "module",
	KwImport:       "import",
	KwTrue:         "true",
	KwFalse:        "false",
	Assign:         "=",
	Comma:          ",",
	Semicolon:      ";",
	Colon:          ":",
	LParen:         "(",
	RParen:         ")",
	LBrace:         "{",
	RBrace:         "}",
	LBracket:       "[",
	RBracket:       "]",
	LLBracket:      "[[",
	RRBracket:      "]]",
	Dot:            ".",
	Hash:           "#",
	HashHash:       "##",
	Slash:          "/",
	Quote:          "\"",
	Plus:           "+",
	Minus:          "-",
	Star:           "*",
	Newline:        "<newline>",
	CarriageReturn: "<carriage return>",
	Unknown:        "<unknown symbol>",
}

// String returns the display form used in parse errors.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "<invalid>"
}

// IsKeyword reports whether k is a language keyword.
func (k Kind) IsKeyword() bool {
	return k >= KwEnum && k <= KwFalse
}
