package ast

import (
	"bridgec/internal/source"
)

// Import references another interface file.
type Import struct {
	Path string
	// Resolved is the absolute path, filled in by verification.
	Resolved string
}

// ValueKind is the runtime type of a module variable value.
type ValueKind uint8

const (
	ValueInvalid ValueKind = iota
	ValueBool
	ValueInt
	ValueString
)

func (k ValueKind) String() string {
	switch k {
	case ValueBool:
		return "bool"
	case ValueInt:
		return "int"
	case ValueString:
		return "string"
	default:
		return "invalid"
	}
}

// Value is a typed module variable value.
type Value struct {
	Kind ValueKind
	Bool bool
	Int  int64
	Str  string
}

func BoolValue(b bool) Value     { return Value{Kind: ValueBool, Bool: b} }
func IntValue(i int64) Value     { return Value{Kind: ValueInt, Int: i} }
func StringValue(s string) Value { return Value{Kind: ValueString, Str: s} }

// SetVar assigns a module-level configuration variable.
type SetVar struct {
	Value      Value
	ValueRange source.CodeRange
}

type Enum struct {
	Members []MemberID
	// IsFlags is set when the enum name contains "Flags".
	IsFlags bool
}

type EnumMember struct {
	Name  string
	Range source.CodeRange
	Meta
	Value    int64
	Explicit bool
	Enum     DeclID
}

type Struct struct {
	Fields []FieldID
}

type Field struct {
	Name  string
	Range source.CodeRange
	Meta
	Type   TypeRef
	Struct DeclID
}

type Class struct {
	Static bool
	// Funcs holds constructors and methods in source order.
	Funcs []FuncID
	Props []PropID
	// Exported is constructors, then methods, then property accessors.
	// It is filled by verification.
	Exported []FuncID
}

type FuncFlags uint8

const (
	FuncCtor FuncFlags = 1 << iota
	FuncConst
	FuncStatic
)

// AccessorKind tells whether a function was synthesized from a property.
type AccessorKind uint8

const (
	AccessorNone AccessorKind = iota
	AccessorGetter
	AccessorSetter
)

type Func struct {
	Name  string
	Range source.CodeRange
	Meta
	Return   TypeRef
	Params   []ParamID
	Flags    FuncFlags
	Class    DeclID
	Property PropID
	Accessor AccessorKind
	Verified bool
}

func (f *Func) IsCtor() bool   { return f.Flags&FuncCtor != 0 }
func (f *Func) IsConst() bool  { return f.Flags&FuncConst != 0 }
func (f *Func) IsStatic() bool { return f.Flags&FuncStatic != 0 }

// Param belongs to either a function or a delegate.
type Param struct {
	Name  string
	Range source.CodeRange
	Type  TypeRef
	// Index is the position in the declared list.
	Index int
	// NativeIndex is the position in the flattened native signature where
	// every array is followed by its size.
	NativeIndex int
	Func        FuncID
	Delegate    DeclID
}

type PropMask uint8

const (
	PropGetter PropMask = 1 << iota
	PropSetter
)

type Property struct {
	Name  string
	Range source.CodeRange
	Meta
	Type   TypeRef
	Mask   PropMask
	Static bool
	Class  DeclID
	Getter FuncID
	Setter FuncID
}

func (p *Property) HasGetter() bool { return p.Mask&PropGetter != 0 }
func (p *Property) HasSetter() bool { return p.Mask&PropSetter != 0 }

type Delegate struct {
	Return TypeRef
	Params []ParamID
}
