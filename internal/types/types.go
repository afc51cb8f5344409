package types

import "fmt"

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

func (id TypeID) IsValid() bool { return id != NoTypeID }

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	// KindPrimitive covers the fixed built-in set (byte, int, ..., void).
	KindPrimitive
	// KindUnresolved is a by-name placeholder created while parsing.
	KindUnresolved
	KindArray
	KindEnum
	KindStruct
	KindClass
	KindDelegate
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindPrimitive:
		return "primitive"
	case KindUnresolved:
		return "unresolved"
	case KindArray:
		return "array"
	case KindEnum:
		return "enum"
	case KindStruct:
		return "struct"
	case KindClass:
		return "class"
	case KindDelegate:
		return "delegate"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Prim identifies a primitive type.
type Prim uint8

const (
	PrimNone Prim = iota
	PrimByte
	PrimInt
	PrimShort
	PrimLong
	PrimBool
	PrimFloat
	PrimDouble
	PrimString
	PrimHandle
	PrimVoid
)

var primNames = [...]string{
	PrimNone:   "",
	PrimByte:   "byte",
	PrimInt:    "int",
	PrimShort:  "short",
	PrimLong:   "long",
	PrimBool:   "bool",
	PrimFloat:  "float",
	PrimDouble: "double",
	PrimString: "string",
	PrimHandle: "handle",
	PrimVoid:   "void",
}

func (p Prim) String() string {
	if int(p) < len(primNames) {
		return primNames[p]
	}
	return fmt.Sprintf("Prim(%d)", p)
}

// PrimitiveNames lists the primitive type names in declaration order.
func PrimitiveNames() []string {
	out := make([]string, 0, len(primNames)-1)
	for _, n := range primNames[1:] {
		out = append(out, n)
	}
	return out
}

// Type is the structural descriptor stored by the interner.
type Type struct {
	Kind Kind
	Prim Prim
	// Elem is the element type of an array.
	Elem TypeID
	// Name is set for placeholders and declared types.
	Name string
	// Decl is the declaration that introduced a declared type.
	Decl uint32
}

// IsUserDefined reports whether the type comes from an enum, struct, class or delegate declaration.
func (t Type) IsUserDefined() bool {
	switch t.Kind {
	case KindEnum, KindStruct, KindClass, KindDelegate:
		return true
	default:
		return false
	}
}
