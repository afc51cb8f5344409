package parser

import (
	"testing"

	"bridgec/internal/ast"
	"bridgec/internal/diag"
	"bridgec/internal/types"
)

func TestParseModuleAndSettings(t *testing.T) {
	b, decls := mustParse(t, `module mylib;
import "other.bdl";
set version "1.2.0";
set cpp_vectorsupport false;
set hashfirstprime 31;
set csharp_libname MyLibNet;
`)
	if len(decls) != 6 {
		t.Fatalf("expected 6 decls, got %d", len(decls))
	}
	wantKinds := []ast.DeclKind{ast.DeclModule, ast.DeclImport, ast.DeclSetVar, ast.DeclSetVar, ast.DeclSetVar, ast.DeclSetVar}
	for i, id := range decls {
		if k := b.Decl(id).Kind; k != wantKinds[i] {
			t.Errorf("decl %d: kind %s, want %s", i, k, wantKinds[i])
		}
	}
	if name := b.Decl(decls[0]).Name; name != "mylib" {
		t.Errorf("module name %q", name)
	}
	imp, _ := b.Import(decls[1])
	if imp.Path != "other.bdl" {
		t.Errorf("import path %q", imp.Path)
	}

	tests := []struct {
		idx  int
		want ast.Value
	}{
		{2, ast.StringValue("1.2.0")},
		{3, ast.BoolValue(false)},
		{4, ast.IntValue(31)},
		{5, ast.StringValue("MyLibNet")},
	}
	for _, tt := range tests {
		v, ok := b.SetVar(decls[tt.idx])
		if !ok {
			t.Fatalf("decl %d is not a set", tt.idx)
		}
		if v.Value != tt.want {
			t.Errorf("decl %d: value %+v, want %+v", tt.idx, v.Value, tt.want)
		}
	}
}

func TestParseEnumValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int64
	}{
		{"implicit", "enum Color { Red, Green, Blue }", []int64{0, 1, 2}},
		{"explicit start", "enum Color { Red = 5, Green, Blue }", []int64{5, 6, 7}},
		{"trailing comma", "enum Color { Red, Green = 10, Blue, };", []int64{0, 10, 11}},
		{"negative", "enum Color { Red = -1, Green }", []int64{-1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, decls := mustParse(t, tt.input)
			e, ok := b.Enum(decls[0])
			if !ok {
				t.Fatal("expected enum")
			}
			if len(e.Members) != len(tt.want) {
				t.Fatalf("expected %d members, got %d", len(tt.want), len(e.Members))
			}
			for i, mid := range e.Members {
				if v := b.Member(mid).Value; v != tt.want[i] {
					t.Errorf("member %d = %d, want %d", i, v, tt.want[i])
				}
			}
		})
	}
}

func TestParseStructFields(t *testing.T) {
	b, decls := mustParse(t, `struct Vector {
	float X;
	// vertical
	float Y;
	int array Tags;
}`)
	s, ok := b.Struct(decls[0])
	if !ok {
		t.Fatal("expected struct")
	}
	if len(s.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(s.Fields))
	}
	y := b.Field(s.Fields[1])
	if y.Name != "Y" || y.Comment.Text() != "vertical" {
		t.Errorf("field Y = %q comment %q", y.Name, y.Comment.Text())
	}
	tags := b.Field(s.Fields[2])
	if !b.Types.IsArray(tags.Type.Type) {
		t.Error("Tags should be an array")
	}
	if got := b.Types.Name(tags.Type.Type); got != "int array" {
		t.Errorf("type name %q", got)
	}
	if tags.Type.Range.StartCol != 2 || tags.Type.Range.EndCol != 11 {
		t.Errorf("type range %s", tags.Type.Range)
	}
}

func TestParseClassMembers(t *testing.T) {
	b, decls := mustParse(t, `// A window.
[[abstract_impl]]
class Window {
	ctor Create(int w, int h);
	func void Show();
	func int array Pixels(int x, byte array data, int y) const;
	static func Window Main();
	get set int Width;
	get string Title;
}`)
	d := b.Decl(decls[0])
	if d.Attr == nil || d.Attr.Name != "abstract_impl" {
		t.Fatalf("attribute = %+v", d.Attr)
	}
	if d.Comment.Text() != "A window." {
		t.Errorf("comment %q", d.Comment.Text())
	}
	c, _ := b.Class(decls[0])
	if c.Static {
		t.Error("class is not static")
	}
	if len(c.Funcs) != 4 || len(c.Props) != 2 {
		t.Fatalf("funcs=%d props=%d", len(c.Funcs), len(c.Props))
	}

	ctor := b.Func(c.Funcs[0])
	if !ctor.IsCtor() || ctor.Name != "Create" || !b.Types.IsVoid(ctor.Return.Type) {
		t.Errorf("ctor = %+v", ctor)
	}

	pixels := b.Func(c.Funcs[2])
	if !pixels.IsConst() || pixels.IsStatic() {
		t.Errorf("Pixels flags %b", pixels.Flags)
	}
	wantNative := []int{0, 1, 3}
	for i, pid := range pixels.Params {
		if n := b.Param(pid).NativeIndex; n != wantNative[i] {
			t.Errorf("param %d native index %d, want %d", i, n, wantNative[i])
		}
	}

	if !b.Func(c.Funcs[3]).IsStatic() {
		t.Error("Main should be static")
	}

	width := b.Prop(c.Props[0])
	if !width.HasGetter() || !width.HasSetter() {
		t.Errorf("Width mask %b", width.Mask)
	}
	title := b.Prop(c.Props[1])
	if !title.HasGetter() || title.HasSetter() {
		t.Errorf("Title mask %b", title.Mask)
	}
}

func TestParseStaticAndOpaqueClass(t *testing.T) {
	b, decls := mustParse(t, "class Math static { static func float Sqrt(float x); }\nclass Handle;")
	c, _ := b.Class(decls[0])
	if !c.Static {
		t.Error("Math should be static")
	}
	h, _ := b.Class(decls[1])
	if len(h.Funcs) != 0 || len(h.Props) != 0 {
		t.Error("opaque class should be empty")
	}
}

func TestParseDelegate(t *testing.T) {
	b, decls := mustParse(t, "delegate void Callback(int code, string message);")
	dl, ok := b.Delegate(decls[0])
	if !ok {
		t.Fatal("expected delegate")
	}
	if b.Decl(decls[0]).Name != "Callback" {
		t.Errorf("name %q", b.Decl(decls[0]).Name)
	}
	if len(dl.Params) != 2 {
		t.Fatalf("params %d", len(dl.Params))
	}
	if k := b.Types.MustLookup(dl.Return.Type).Kind; k != types.KindUnresolved {
		t.Errorf("return should stay unresolved until verification, got %s", k)
	}
}

func TestParseTrailingComment(t *testing.T) {
	_, decls := mustParse(t, "module m;\n// the end\n")
	if len(decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(decls))
	}
}

func TestParseEmpty(t *testing.T) {
	_, decls := mustParse(t, "")
	if len(decls) != 0 {
		t.Fatalf("expected no decls, got %d", len(decls))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
		msg   string
	}{
		{"top level ident", "foo;", diag.SynUnexpectedTopLevel, "Unexpected top-level token 'foo' encountered."},
		{"top level keyword", "func void F();", diag.SynUnexpectedTopLevel, "Unexpected top-level token 'func' encountered."},
		{"missing semicolon", "module m", diag.SynUnexpectedEOF, "Unexpected end-of-file encountered"},
		{"wrong token", "module m {", diag.SynUnexpectedToken, "Unexpected token '{' encountered."},
		{"unknown modifier", "class C abstract {}", diag.SynModifierNotAllowed, "Unknown class modifier 'abstract' specified."},
		{"duplicate modifier", "class C static static {}", diag.SynDuplicateModifier, "Class modifier 'static' specified multiple times."},
		{"const ctor", "class C { ctor Make() const; }", diag.SynConstCtor, "A constructor cannot be declared as const."},
		{"nested array", "struct S { int array array X; }", diag.SynNestedArray, ""},
		{"duplicate get", "class C { get get int X; }", diag.SynDuplicateAccessor, "Property accessor 'get' specified multiple times."},
		{"bad member", "class C { int X; }", diag.SynUnexpectedToken, "Unexpected token 'int' encountered."},
		{"bad set value", "set version ;", diag.SynExpectValue, "No value specified for variable 'version'; found ';'."},
		{"missing name", "enum { A }", diag.SynExpectIdentifier, "Unexpected token '{' encountered."},
		{"enum separator", "enum E { A B }", diag.SynUnexpectedToken, "Unexpected token 'B' encountered."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectParseError(t, tt.input, tt.code, tt.msg)
		})
	}
}

func TestParseErrorRange(t *testing.T) {
	err := expectParseError(t, "class C {\n  func void F() x;\n}", diag.SynUnexpectedToken, "")
	if err == nil {
		t.Fatal("expected *diag.Error")
	}
	if got := err.Error(); got != "test.bdl(2,17-18): error: Unexpected token 'x' encountered." {
		t.Errorf("rendered %q", got)
	}
}
