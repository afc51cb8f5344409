package ast

import (
	"fmt"

	"bridgec/internal/source"
	"bridgec/internal/types"
)

// DeclKind tags the variant of a top-level declaration.
type DeclKind uint8

const (
	DeclInvalid DeclKind = iota
	DeclModule
	DeclImport
	DeclSetVar
	DeclEnum
	DeclStruct
	DeclClass
	DeclDelegate
)

func (k DeclKind) String() string {
	switch k {
	case DeclModule:
		return "module"
	case DeclImport:
		return "import"
	case DeclSetVar:
		return "set"
	case DeclEnum:
		return "enum"
	case DeclStruct:
		return "struct"
	case DeclClass:
		return "class"
	case DeclDelegate:
		return "delegate"
	default:
		return "invalid"
	}
}

// IsType reports whether declarations of this kind introduce a type.
func (k DeclKind) IsType() bool {
	switch k {
	case DeclEnum, DeclStruct, DeclClass, DeclDelegate:
		return true
	default:
		return false
	}
}

// TypeKind maps a type-introducing declaration kind to its type kind.
func (k DeclKind) TypeKind() types.Kind {
	switch k {
	case DeclEnum:
		return types.KindEnum
	case DeclStruct:
		return types.KindStruct
	case DeclClass:
		return types.KindClass
	case DeclDelegate:
		return types.KindDelegate
	default:
		return types.KindInvalid
	}
}

// Meta is the doc comment and attribute written right before a declaration.
type Meta struct {
	Comment *Comment
	Attr    *Attribute
}

// Decl is a top-level declaration. The variant data lives in the arena
// selected by Kind at index Payload.
type Decl struct {
	Kind  DeclKind
	Name  string
	Range source.CodeRange
	Meta
	Payload PayloadID
	// Type is the type introduced by enum, struct, class and delegate declarations.
	Type     types.TypeID
	Owner    ModuleID
	Verified bool
}

// Attach binds the declaration to module m. A declaration belongs to exactly
// one module; attaching it to another one panics.
func (d *Decl) Attach(m ModuleID) {
	if d.Owner.IsValid() && d.Owner != m {
		panic(fmt.Sprintf("ast: %s %q already belongs to module %d", d.Kind, d.Name, d.Owner))
	}
	d.Owner = m
}

// TypeRef is a type reference as written in source.
type TypeRef struct {
	Type  types.TypeID
	Range source.CodeRange
}
