package token

var keywords = map[string]Kind{
	"enum":     KwEnum,
	"struct":   KwStruct,
	"class":    KwClass,
	"static":   KwStatic,
	"delegate": KwDelegate,
	"func":     KwFunc,
	"ctor":     KwCtor,
	"get":      KwGet,
	"set":      KwSet,
	"array":    KwArray,
	"const":    KwConst,
	"module":   KwModule,
	"import":   KwImport,
	"true":     KwTrue,
	"false":    KwFalse,
}

var symbols = map[rune]Kind{
	'=':  Assign,
	',':  Comma,
	';':  Semicolon,
	':':  Colon,
	'(':  LParen,
	')':  RParen,
	'{':  LBrace,
	'}':  RBrace,
	'[':  LBracket,
	']':  RBracket,
	'.':  Dot,
	'#':  Hash,
	'/':  Slash,
	'"':  Quote,
	'+':  Plus,
	'-':  Minus,
	'*':  Star,
	'\n': Newline,
	'\r': CarriageReturn,
}

// LookupKeyword reports the keyword kind for ident. Keywords are case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// LookupSymbol reports the kind of a single-character punctuation token.
func LookupSymbol(r rune) (Kind, bool) {
	k, ok := symbols[r]
	return k, ok
}
