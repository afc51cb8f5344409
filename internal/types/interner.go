package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for the primitive types.
type Builtins struct {
	Byte   TypeID
	Int    TypeID
	Short  TypeID
	Long   TypeID
	Bool   TypeID
	Float  TypeID
	Double TypeID
	String TypeID
	Handle TypeID
	Void   TypeID
}

// Interner provides stable TypeIDs for one compilation. Equal placeholders,
// equal arrays and the primitives always share an ID, so TypeID equality is
// type identity.
type Interner struct {
	types    []Type
	index    map[typeKey]TypeID
	prims    map[string]TypeID
	bound    map[TypeID]TypeID // placeholder -> resolved
	builtins Builtins
}

// NewInterner constructs an interner seeded with built-in primitives.
func NewInterner() *Interner {
	in := &Interner{
		types: []Type{{Kind: KindInvalid}},
		index: make(map[typeKey]TypeID, 64),
		prims: make(map[string]TypeID, len(primNames)),
		bound: make(map[TypeID]TypeID),
	}
	b := &in.builtins
	for _, slot := range []struct {
		id   *TypeID
		prim Prim
	}{
		{&b.Byte, PrimByte}, {&b.Int, PrimInt}, {&b.Short, PrimShort}, {&b.Long, PrimLong},
		{&b.Bool, PrimBool}, {&b.Float, PrimFloat}, {&b.Double, PrimDouble},
		{&b.String, PrimString}, {&b.Handle, PrimHandle}, {&b.Void, PrimVoid},
	} {
		*slot.id = in.Intern(Type{Kind: KindPrimitive, Prim: slot.prim})
		in.prims[slot.prim.String()] = *slot.id
	}
	return in
}

// Builtins returns TypeIDs for primitive types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the provided descriptor has a stable TypeID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	key := keyOf(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	in.index[key] = id
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

// Len returns the number of interned types including the invalid sentinel.
func (in *Interner) Len() int {
	return len(in.types)
}

// Primitive looks up a primitive type by its source name.
func (in *Interner) Primitive(name string) (TypeID, bool) {
	id, ok := in.prims[name]
	return id, ok
}

// Unresolved returns the placeholder for name.
func (in *Interner) Unresolved(name string) TypeID {
	return in.Intern(Type{Kind: KindUnresolved, Name: name})
}

// Array returns the array type over elem. Arrays of arrays are rejected.
func (in *Interner) Array(elem TypeID) (TypeID, bool) {
	if in.IsArray(elem) {
		return NoTypeID, false
	}
	return in.Intern(Type{Kind: KindArray, Elem: elem}), true
}

// Declared returns the type introduced by declaration decl.
func (in *Interner) Declared(kind Kind, name string, decl uint32) TypeID {
	return in.Intern(Type{Kind: kind, Name: name, Decl: decl})
}

// Bind memoizes the resolution of a placeholder. Rebinding to a different
// target is a programming error.
func (in *Interner) Bind(placeholder, target TypeID) {
	if prev, ok := in.bound[placeholder]; ok && prev != target {
		panic(fmt.Sprintf("types: placeholder %q already bound", in.Name(placeholder)))
	}
	in.bound[placeholder] = target
}

// Binding returns the memoized resolution of a placeholder.
func (in *Interner) Binding(placeholder TypeID) (TypeID, bool) {
	id, ok := in.bound[placeholder]
	return id, ok
}

// Canonical replaces bound placeholders, including array elements, by their
// targets. Unbound placeholders are returned unchanged.
func (in *Interner) Canonical(id TypeID) TypeID {
	t, ok := in.Lookup(id)
	if !ok {
		return id
	}
	switch t.Kind {
	case KindUnresolved:
		if target, ok := in.bound[id]; ok {
			return target
		}
	case KindArray:
		elem := in.Canonical(t.Elem)
		if elem != t.Elem {
			arr, _ := in.Array(elem)
			return arr
		}
	}
	return id
}

// Name renders a type the way it is written in source: "int", "Vector", "Vector array".
func (in *Interner) Name(id TypeID) string {
	t, ok := in.Lookup(id)
	if !ok {
		return "<invalid>"
	}
	switch t.Kind {
	case KindPrimitive:
		return t.Prim.String()
	case KindArray:
		return in.Name(t.Elem) + " array"
	default:
		return t.Name
	}
}

func (in *Interner) kindOf(id TypeID) Kind {
	t, ok := in.Lookup(in.Canonical(id))
	if !ok {
		return KindInvalid
	}
	return t.Kind
}

func (in *Interner) IsArray(id TypeID) bool    { return in.kindOf(id) == KindArray }
func (in *Interner) IsClass(id TypeID) bool    { return in.kindOf(id) == KindClass }
func (in *Interner) IsStruct(id TypeID) bool   { return in.kindOf(id) == KindStruct }
func (in *Interner) IsEnum(id TypeID) bool     { return in.kindOf(id) == KindEnum }
func (in *Interner) IsDelegate(id TypeID) bool { return in.kindOf(id) == KindDelegate }

// IsUserDefined reports whether id names an enum, struct, class or delegate.
func (in *Interner) IsUserDefined(id TypeID) bool {
	t, ok := in.Lookup(in.Canonical(id))
	return ok && t.IsUserDefined()
}

// IsVoid reports whether id is the void primitive.
func (in *Interner) IsVoid(id TypeID) bool {
	return in.Canonical(id) == in.builtins.Void
}

// IsResolved reports whether no placeholder remains in id.
func (in *Interner) IsResolved(id TypeID) bool {
	t, ok := in.Lookup(in.Canonical(id))
	if !ok {
		return false
	}
	switch t.Kind {
	case KindUnresolved:
		return false
	case KindArray:
		return in.IsResolved(t.Elem)
	default:
		return true
	}
}

// Elem returns the element type of an array, or NoTypeID.
func (in *Interner) Elem(id TypeID) TypeID {
	t, ok := in.Lookup(in.Canonical(id))
	if !ok || t.Kind != KindArray {
		return NoTypeID
	}
	return in.Canonical(t.Elem)
}

// DeclOf returns the declaration behind a user-defined type.
func (in *Interner) DeclOf(id TypeID) (uint32, bool) {
	t, ok := in.Lookup(in.Canonical(id))
	if !ok || !t.IsUserDefined() {
		return 0, false
	}
	return t.Decl, true
}

type typeKey struct {
	Kind Kind
	Prim Prim
	Elem TypeID
	Name string
	Decl uint32
}

func keyOf(t Type) typeKey {
	key := typeKey{Kind: t.Kind, Prim: t.Prim, Elem: t.Elem, Decl: t.Decl}
	if t.Kind == KindUnresolved || t.IsUserDefined() {
		key.Name = t.Name
	}
	return key
}
