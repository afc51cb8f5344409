package sema

import (
	"strings"

	"bridgec/internal/ast"
)

// HasThisParam reports whether the native signature of fn takes the
// object as its first argument.
func (m *Module) HasThisParam(id ast.FuncID) bool {
	fn := m.Builder.Func(id)
	return !fn.IsStatic() && !fn.IsCtor()
}

// HasOutReturnParam reports whether fn returns its struct or array result
// through an extra out parameter.
func (m *Module) HasOutReturnParam(id ast.FuncID) bool {
	fn := m.Builder.Func(id)
	if fn.IsCtor() || m.Builder.Types.IsVoid(fn.Return.Type) {
		return false
	}
	in := m.Builder.Types
	return in.IsStruct(fn.Return.Type) || in.IsArray(fn.Return.Type)
}

// IsDefaultCtor reports whether fn is a parameterless constructor named
// after its class.
func (m *Module) IsDefaultCtor(id ast.FuncID) bool {
	fn := m.Builder.Func(id)
	if !fn.IsCtor() || !fn.Class.IsValid() || len(fn.Params) != 0 {
		return false
	}
	return fn.Name == m.Builder.Decl(fn.Class).Name
}

// DelegateParams returns the parameters of fn whose type is a delegate.
func (m *Module) DelegateParams(id ast.FuncID) []ast.ParamID {
	var out []ast.ParamID
	for _, pid := range m.Builder.Func(id).Params {
		if m.Builder.Types.IsDelegate(m.Builder.Param(pid).Type.Type) {
			out = append(out, pid)
		}
	}
	return out
}

// FuncNames derives the names generated bindings use for fn.
func (m *Module) FuncNames(id ast.FuncID) FuncNames {
	fn := m.Builder.Func(id)
	class := m.Builder.Decl(fn.Class)
	java := Cased(fn.Name, CamelCase)
	n := FuncNames{
		CSharp:     Cased(fn.Name, PascalCase),
		Java:       java,
		JavaNative: java + "Native",
	}
	if class != nil {
		n.C = m.Name + "_" + class.Name + "_" + fn.Name
		n.JNI = strings.ReplaceAll("Java_"+m.ClassNames(fn.Class).QualifiedJava+"_"+n.JavaNative, ".", "_")
	}
	return n
}

// ClassNames derives the implementation and Java names of a class.
func (m *Module) ClassNames(id ast.DeclID) ClassNames {
	d := m.Builder.Decl(id)
	impl := d.Name + "Impl"
	qualified := m.JavaPackageName + "." + d.Name
	return ClassNames{
		Impl:          impl,
		QualifiedImpl: m.Name + "::" + impl,
		QualifiedJava: qualified,
		JavaFindClass: strings.ReplaceAll(qualified, ".", "/"),
	}
}

// IsAbstractImpl reports whether class carries [[abstract_impl]].
func (m *Module) IsAbstractImpl(id ast.DeclID) bool {
	d := m.Builder.Decl(id)
	return d.Kind == ast.DeclClass && d.Attr.Is(ast.AttrAbstractImpl)
}

// FieldName returns a struct field name cased for the native API.
func (m *Module) FieldName(id ast.FieldID) string {
	return Cased(m.Builder.Field(id).Name, m.CaseStyle)
}
