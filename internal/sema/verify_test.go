package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridgec/internal/ast"
	"bridgec/internal/diag"
	"bridgec/internal/types"
)

func TestResolveTypes(t *testing.T) {
	m := mustBuild(t, `module m;
struct Vector { float X; float Y; }
class Shape {
	func Vector Center() const;
	func void Move(Vector by, int array steps);
}
`)
	in := m.Builder.Types
	vec, ok := m.FindType("Vector")
	require.True(t, ok)

	center, ok := funcByName(m, "Center")
	require.True(t, ok)
	assert.Equal(t, vec, m.Builder.Func(center).Return.Type)
	assert.True(t, in.IsResolved(m.Builder.Func(center).Return.Type))

	move, _ := funcByName(m, "Move")
	params := m.Builder.Func(move).Params
	require.Len(t, params, 2)
	assert.Equal(t, vec, m.Builder.Param(params[0]).Type.Type)

	steps := m.Builder.Param(params[1]).Type.Type
	assert.True(t, in.IsArray(steps))
	assert.Equal(t, in.Builtins().Int, in.Elem(steps))

	placeholder := in.Unresolved("Vector")
	bound, ok := in.Binding(placeholder)
	require.True(t, ok)
	assert.Equal(t, vec, bound)

	assert.True(t, m.HasOutReturnParam(center))
	assert.True(t, m.HasThisParam(center))
	assert.False(t, m.HasOutReturnParam(move))
}

func TestUndefinedSymbolSuggestion(t *testing.T) {
	d := buildError(t, "module m;\nstruct Vector { float x; }\nclass C { func Vecor Get(); }", diag.SemaUnresolvedSymbol)
	assert.Equal(t, "Undefined symbol 'Vecor' used; did you mean 'Vector'?", d.Message)
	assert.Equal(t, 3, d.Primary.Line)
	assert.Equal(t, 16, d.Primary.StartCol)

	d = buildError(t, "module m;\nstruct S { Quaternion q; }", diag.SemaUnresolvedSymbol)
	assert.Equal(t, "Undefined symbol 'Quaternion' used.", d.Message)

	d = buildError(t, "module m;\nstruct S { strng name; }", diag.SemaUnresolvedSymbol)
	assert.Equal(t, "Undefined symbol 'strng' used; did you mean 'string'?", d.Message)
}

func TestStructChecks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
		msg   string
	}{
		{"self field", "module m;\nstruct S { S field; }", diag.SemaStructSelfField, "A struct cannot contain a field of its own type"},
		{"empty", "module m;\nstruct S { }", diag.SemaStructEmpty, "Struct 'S' does not declare any fields"},
		{"void field", "module m;\nstruct S { void v; }", diag.SemaFieldInvalidType, "Field \"v\" is of type void, which is not allowed."},
		{"delegate field", "module m;\ndelegate void D();\nstruct S { D cb; }", diag.SemaFieldInvalidType, "Field \"cb\" is of type delegate, which is not allowed."},
		{"duplicate field", "module m;\nstruct S { int a; float a; }", diag.SemaStructDuplicateField, "Duplicate field \"a\" in struct \"S\"."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := buildError(t, tt.input, tt.code)
			assert.Equal(t, tt.msg, d.Message)
		})
	}
}

func TestSelfFieldRange(t *testing.T) {
	d := buildError(t, "module m;\nstruct S { S field; }", diag.SemaStructSelfField)
	assert.Equal(t, 2, d.Primary.Line)
	assert.Equal(t, 14, d.Primary.StartCol)
	assert.Equal(t, 19, d.Primary.EndCol)
}

func TestArrayOfSelfAllowed(t *testing.T) {
	mustBuild(t, "module m;\nstruct Node { int value; Node array children; }")
}

func TestEnumChecks(t *testing.T) {
	m := mustBuild(t, "module m;\nenum RenderFlags { None, Depth = 4, Stencil }")
	id, _ := m.FindTypeDecl("RenderFlags")
	e, _ := m.Builder.Enum(id)
	assert.True(t, e.IsFlags)
	var values []int64
	for _, mid := range e.Members {
		values = append(values, m.Builder.Member(mid).Value)
	}
	assert.Equal(t, []int64{0, 4, 5}, values)

	d := buildError(t, "module m;\nenum Color { Red, Green, Red }", diag.SemaEnumDuplicateMember)
	assert.Equal(t, "Duplicate member \"Red\" in enum \"Color\".", d.Message)
}

func TestClassDuplicateFunctions(t *testing.T) {
	d := buildError(t, "module m;\nclass C {\n  func void foo();\n  func int foo(int x);\n}", diag.SemaClassDuplicateMember)
	assert.Equal(t, "Class \"C\" declares a function named \"foo\" multiple times.", d.Message)
	assert.Equal(t, 4, d.Primary.Line)

	d = buildError(t, "module m;\nclass C {\n  func int GetSize();\n  get int Size;\n}", diag.SemaClassDuplicateMember)
	assert.Equal(t, "Class \"C\" declares a property named \"Size\" multiple times.", d.Message)
}

func TestPropertyAccessors(t *testing.T) {
	m := mustBuild(t, "module m;\nclass Window { ctor Window(); func void Show(); get set int X; }")
	b := m.Builder

	var names []string
	for _, id := range m.AllExportedFunctions() {
		names = append(names, b.Func(id).Name)
	}
	assert.Equal(t, []string{"Window", "Show", "GetX", "SetX"}, names)

	getter, _ := funcByName(m, "GetX")
	setter, _ := funcByName(m, "SetX")
	gf, sf := b.Func(getter), b.Func(setter)

	require.True(t, gf.Property.IsValid())
	assert.Equal(t, gf.Property, sf.Property)
	assert.Equal(t, "X", b.Prop(gf.Property).Name)
	assert.Equal(t, ast.AccessorGetter, gf.Accessor)
	assert.Equal(t, ast.AccessorSetter, sf.Accessor)

	assert.True(t, gf.IsConst())
	assert.Empty(t, gf.Params)
	assert.Equal(t, b.Types.Builtins().Int, gf.Return.Type)

	assert.False(t, sf.IsConst())
	assert.True(t, b.Types.IsVoid(sf.Return.Type))
	require.Len(t, sf.Params, 1)
	assert.Equal(t, "value", b.Param(sf.Params[0]).Name)
	assert.Equal(t, b.Types.Builtins().Int, b.Param(sf.Params[0]).Type.Type)

	fg, ok := m.FunctionForProperty(gf.Property, ast.PropGetter)
	require.True(t, ok)
	assert.Equal(t, getter, fg)
	fs, ok := m.FunctionForProperty(gf.Property, ast.PropSetter)
	require.True(t, ok)
	assert.Equal(t, setter, fs)
}

func TestPropertyAccessorsCamelCase(t *testing.T) {
	m := mustBuild(t, "module m;\nset cpp_casestyle \"camelCase\";\nclass W { get set int Width; }")
	_, ok := funcByName(m, "getWidth")
	assert.True(t, ok)
	_, ok = funcByName(m, "setWidth")
	assert.True(t, ok)
}

func TestConstPrefixes(t *testing.T) {
	m := mustBuild(t, `module m;
class C {
	func int GetCount();
	func bool isEmpty();
	func bool HasItems();
	func void Clear();
	static func int GetDefault();
}
`)
	tests := []struct {
		name  string
		konst bool
	}{
		{"GetCount", true},
		{"isEmpty", true},
		{"HasItems", true},
		{"Clear", false},
		{"GetDefault", false},
	}
	for _, tt := range tests {
		id, ok := funcByName(m, tt.name)
		require.True(t, ok, tt.name)
		assert.Equal(t, tt.konst, m.Builder.Func(id).IsConst(), tt.name)
	}
	id, _ := funcByName(m, "GetDefault")
	assert.False(t, m.HasThisParam(id))
}

func TestStaticClass(t *testing.T) {
	mustBuild(t, "module m;\nclass Math static {\n  static func float Sqrt(float x);\n  static get float Pi;\n}")

	d := buildError(t, "module m;\nclass Math static {\n  static func float Sqrt(float x);\n  func float Abs(float x);\n}", diag.SemaStaticClassMember)
	assert.Equal(t, "Static classes may only have static functions.", d.Message)
	assert.Equal(t, 4, d.Primary.Line)

	d = buildError(t, "module m;\nclass Math static { static get float Pi; get float E; }", diag.SemaStaticClassMember)
	assert.Equal(t, "Static classes may only have static properties.", d.Message)

	d = buildError(t, "module m;\nclass Math static { ctor Make(); }", diag.SemaStaticClassCtor)
	assert.Equal(t, "Static classes cannot have any constructors.", d.Message)
}

func TestStaticCtor(t *testing.T) {
	d := buildError(t, "module m;\nclass C { static ctor Make(); }", diag.SemaStaticCtor)
	assert.Equal(t, "A constructor cannot be declared as static.", d.Message)
}

func TestStaticAccessors(t *testing.T) {
	m := mustBuild(t, "module m;\nclass Config static { static get set int Level; }")
	getter, _ := funcByName(m, "GetLevel")
	fn := m.Builder.Func(getter)
	assert.True(t, fn.IsStatic())
	assert.False(t, fn.IsConst())
}

func TestFunctionChecks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
		msg   string
	}{
		{"delegate return", "module m;\ndelegate void D();\nclass C { func D Get(); }", diag.SemaDelegateReturn, "Delegates cannot be used as return types."},
		{"duplicate param", "module m;\nclass C { func void F(int a, float a); }", diag.SemaDuplicateParam, "Duplicate parameter \"a\" in function \"F\"."},
		{"delegate duplicate param", "module m;\ndelegate void D(int a, int a);", diag.SemaDuplicateParam, "Duplicate parameter \"a\" in delegate \"D\"."},
		{"delegate array return", "module m;\ndelegate int array D();", diag.SemaDelegateArrayReturn, "Arrays cannot be used as return types by delegates."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := buildError(t, tt.input, tt.code)
			assert.Equal(t, tt.msg, d.Message)
		})
	}
}

func TestAttributes(t *testing.T) {
	m := mustBuild(t, "module m;\n[[abstract_impl]]\nclass C { [[op_add]] func C Add(C other); }")
	cls, _ := m.FindTypeDecl("C")
	assert.True(t, m.IsAbstractImpl(cls))
	add, _ := funcByName(m, "Add")
	assert.True(t, m.Builder.Func(add).Attr.Is(ast.AttrOpAdd))

	d := buildError(t, "module m;\n[[fancy]]\nclass C;", diag.SemaInvalidAttribute)
	assert.Equal(t, "Invalid attribute 'fancy' specified", d.Message)

	d = buildError(t, "module m;\n[[op_add]]\nstruct S { int x; }", diag.SemaAttributeTarget)
	assert.Equal(t, "Attribute 'op_add' cannot be applied to structs.", d.Message)

	d = buildError(t, "module m;\n[[bogus]]\nset version \"1.0\";\n", diag.SemaInvalidAttribute)
	assert.Equal(t, "Invalid attribute 'bogus' specified", d.Message)
	assert.Equal(t, 2, d.Primary.Line)

	d = buildError(t, "module m;\n[[op_add]]\nset version \"1.0\";\n", diag.SemaAttributeTarget)
	assert.Equal(t, "Attribute 'op_add' cannot be applied to module-level declarations.", d.Message)
}

func TestFuncNames(t *testing.T) {
	m := mustBuild(t, "module geo;\nset companyid \"acme\";\nclass Shape { func float area(); }")
	id, _ := funcByName(m, "area")
	n := m.FuncNames(id)
	assert.Equal(t, "geo_Shape_area", n.C)
	assert.Equal(t, "Area", n.CSharp)
	assert.Equal(t, "area", n.Java)
	assert.Equal(t, "areaNative", n.JavaNative)
	assert.Equal(t, "Java_com_acme_geo_Shape_areaNative", n.JNI)

	cls, _ := m.FindTypeDecl("Shape")
	cn := m.ClassNames(cls)
	assert.Equal(t, "ShapeImpl", cn.Impl)
	assert.Equal(t, "geo::ShapeImpl", cn.QualifiedImpl)
	assert.Equal(t, "com/acme/geo/Shape", cn.JavaFindClass)
}

func TestDeclaredShadowsPrimitive(t *testing.T) {
	m := mustBuild(t, "module m;\nstruct Handle2 { handle h; }")
	id, _ := m.FindTypeDecl("Handle2")
	s, _ := m.Builder.Struct(id)
	ft := m.Builder.Field(s.Fields[0]).Type.Type
	k := m.Builder.Types.MustLookup(ft)
	assert.Equal(t, types.KindPrimitive, k.Kind)
}
