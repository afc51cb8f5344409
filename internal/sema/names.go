package sema

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ReservedPrefix may not start any type name; generated code uses it.
const ReservedPrefix = "bridgec_"

// constPrefixes mark a method as const when it is not static.
var constPrefixes = []string{"get", "Get", "is", "Is", "has", "Has", "contains", "Contains"}

var upper = cases.Upper(language.Und)

// Cased changes the first rune of s to match style.
func Cased(s string, style CaseStyle) string {
	if style == CamelCase {
		return withFirst(s, unicode.ToLower)
	}
	return withFirst(s, unicode.ToUpper)
}

func withFirst(s string, fn func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(fn(r)) + s[size:]
}

func accessorPrefix(setter bool, style CaseStyle) string {
	switch {
	case setter && style == CamelCase:
		return "set"
	case setter:
		return "Set"
	case style == CamelCase:
		return "get"
	default:
		return "Get"
	}
}

func makesConst(name string) bool {
	for _, p := range constPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// FuncNames are the per-target names of an exported function.
type FuncNames struct {
	C          string // module_Class_Func
	CSharp     string
	Java       string
	JavaNative string
	JNI        string
}

// ClassNames are the per-target names of a class.
type ClassNames struct {
	Impl          string
	QualifiedImpl string
	QualifiedJava string
	JavaFindClass string
}
