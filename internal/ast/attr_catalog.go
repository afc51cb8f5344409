package ast

import (
	"slices"
	"strings"

	"bridgec/internal/source"
)

// AttrKind is the closed set of attributes the language knows.
type AttrKind uint8

const (
	AttrUnknown AttrKind = iota
	AttrAbstractImpl
	AttrOpAdd
	AttrOpSubtract
	AttrOpMultiply
	AttrOpDivide
)

// AttrTargetMask describes the declarations an attribute may be applied to.
type AttrTargetMask uint16

const (
	AttrTargetNone  AttrTargetMask = 0
	AttrTargetClass AttrTargetMask = 1 << iota
	AttrTargetFunc
	AttrTargetProperty
	AttrTargetEnum
	AttrTargetMember
	AttrTargetStruct
	AttrTargetField
	AttrTargetDelegate
	AttrTargetModule
)

// String names the target for error messages.
func (m AttrTargetMask) String() string {
	switch m {
	case AttrTargetClass:
		return "classes"
	case AttrTargetFunc:
		return "functions"
	case AttrTargetProperty:
		return "properties"
	case AttrTargetEnum:
		return "enums"
	case AttrTargetMember:
		return "enum members"
	case AttrTargetStruct:
		return "structs"
	case AttrTargetField:
		return "struct fields"
	case AttrTargetDelegate:
		return "delegates"
	case AttrTargetModule:
		return "module-level declarations"
	default:
		return "this declaration"
	}
}

// AttrSpec describes a language attribute and its supported targets.
type AttrSpec struct {
	Name    string
	Kind    AttrKind
	Targets AttrTargetMask
}

// Allows reports whether the attribute can be applied to the provided target bit.
func (spec AttrSpec) Allows(target AttrTargetMask) bool {
	return spec.Targets&target != 0
}

var attrRegistry = map[string]AttrSpec{
	"abstract_impl": {Name: "abstract_impl", Kind: AttrAbstractImpl, Targets: AttrTargetClass},
	"op_add":        {Name: "op_add", Kind: AttrOpAdd, Targets: AttrTargetFunc | AttrTargetProperty},
	"op_subtract":   {Name: "op_subtract", Kind: AttrOpSubtract, Targets: AttrTargetFunc | AttrTargetProperty},
	"op_multiply":   {Name: "op_multiply", Kind: AttrOpMultiply, Targets: AttrTargetFunc | AttrTargetProperty},
	"op_divide":     {Name: "op_divide", Kind: AttrOpDivide, Targets: AttrTargetFunc | AttrTargetProperty},
}

// LookupAttr returns metadata for the given attribute name (case-insensitive).
func LookupAttr(name string) (AttrSpec, bool) {
	if name == "" {
		return AttrSpec{}, false
	}
	spec, ok := attrRegistry[strings.ToLower(name)]
	return spec, ok
}

// AttrSpecs returns all registered attribute specifications sorted by name.
func AttrSpecs() []AttrSpec {
	names := make([]string, 0, len(attrRegistry))
	for name := range attrRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	result := make([]AttrSpec, 0, len(names))
	for _, name := range names {
		result = append(result, attrRegistry[name])
	}
	return result
}

// Attribute is a [[name]] marker. Kind stays AttrUnknown until verification.
type Attribute struct {
	Name  string
	Range source.CodeRange
	Kind  AttrKind
}

// Is reports whether the attribute is present and of kind k.
func (a *Attribute) Is(k AttrKind) bool {
	return a != nil && a.Kind == k
}
