package ast

import (
	"strings"

	"bridgec/internal/source"
	"bridgec/internal/types"
)

type Hints struct{ Decls, Funcs uint }

// Builder owns every node created during one compilation. Nodes refer to
// each other by arena index.
type Builder struct {
	Types     *types.Interner
	Decls     *Arena[Decl]
	Imports   *Arena[Import]
	Vars      *Arena[SetVar]
	Enums     *Arena[Enum]
	Members   *Arena[EnumMember]
	Structs   *Arena[Struct]
	Fields    *Arena[Field]
	Classes   *Arena[Class]
	Funcs     *Arena[Func]
	Params    *Arena[Param]
	Props     *Arena[Property]
	Delegates *Arena[Delegate]
}

// NewBuilder creates a builder. A nil interner gets a fresh one.
func NewBuilder(hints Hints, in *types.Interner) *Builder {
	if hints.Decls == 0 {
		hints.Decls = 1 << 6
	}
	if hints.Funcs == 0 {
		hints.Funcs = 1 << 7
	}
	if in == nil {
		in = types.NewInterner()
	}
	return &Builder{
		Types:     in,
		Decls:     NewArena[Decl](hints.Decls),
		Imports:   NewArena[Import](4),
		Vars:      NewArena[SetVar](16),
		Enums:     NewArena[Enum](hints.Decls / 4),
		Members:   NewArena[EnumMember](hints.Decls),
		Structs:   NewArena[Struct](hints.Decls / 4),
		Fields:    NewArena[Field](hints.Decls),
		Classes:   NewArena[Class](hints.Decls / 4),
		Funcs:     NewArena[Func](hints.Funcs),
		Params:    NewArena[Param](hints.Funcs * 2),
		Props:     NewArena[Property](hints.Funcs / 2),
		Delegates: NewArena[Delegate](hints.Decls / 8),
	}
}

func (b *Builder) Decl(id DeclID) *Decl {
	return b.Decls.Get(uint32(id))
}

func (b *Builder) newDecl(kind DeclKind, name string, rng source.CodeRange, meta Meta, payload PayloadID) DeclID {
	id := DeclID(b.Decls.Allocate(Decl{
		Kind:    kind,
		Name:    name,
		Range:   rng,
		Meta:    meta,
		Payload: payload,
	}))
	if kind.IsType() {
		b.Decl(id).Type = b.Types.Declared(kind.TypeKind(), name, uint32(id))
	}
	return id
}

func (b *Builder) NewModule(name string, rng source.CodeRange, meta Meta) DeclID {
	return b.newDecl(DeclModule, name, rng, meta, NoPayloadID)
}

func (b *Builder) NewImport(path string, rng source.CodeRange, meta Meta) DeclID {
	payload := PayloadID(b.Imports.Allocate(Import{Path: path}))
	return b.newDecl(DeclImport, path, rng, meta, payload)
}

func (b *Builder) NewSetVar(name string, rng source.CodeRange, meta Meta, value Value, valueRange source.CodeRange) DeclID {
	payload := PayloadID(b.Vars.Allocate(SetVar{Value: value, ValueRange: valueRange}))
	return b.newDecl(DeclSetVar, name, rng, meta, payload)
}

func (b *Builder) NewEnum(name string, rng source.CodeRange, meta Meta) DeclID {
	payload := PayloadID(b.Enums.Allocate(Enum{IsFlags: strings.Contains(name, "Flags")}))
	return b.newDecl(DeclEnum, name, rng, meta, payload)
}

// AddEnumMember appends a member. Without an explicit value the member takes
// the previous member's value plus one, or 0 when it is the first.
func (b *Builder) AddEnumMember(enum DeclID, name string, rng source.CodeRange, meta Meta, value *int64) MemberID {
	e, ok := b.Enum(enum)
	if !ok {
		panic("ast: AddEnumMember on non-enum declaration")
	}
	m := EnumMember{Name: name, Range: rng, Meta: meta, Enum: enum}
	switch {
	case value != nil:
		m.Value, m.Explicit = *value, true
	case len(e.Members) > 0:
		m.Value = b.Member(e.Members[len(e.Members)-1]).Value + 1
	}
	id := MemberID(b.Members.Allocate(m))
	e.Members = append(e.Members, id)
	return id
}

func (b *Builder) NewStruct(name string, rng source.CodeRange, meta Meta) DeclID {
	payload := PayloadID(b.Structs.Allocate(Struct{}))
	return b.newDecl(DeclStruct, name, rng, meta, payload)
}

func (b *Builder) AddField(st DeclID, name string, rng source.CodeRange, meta Meta, typ TypeRef) FieldID {
	s, ok := b.Struct(st)
	if !ok {
		panic("ast: AddField on non-struct declaration")
	}
	id := FieldID(b.Fields.Allocate(Field{Name: name, Range: rng, Meta: meta, Type: typ, Struct: st}))
	s.Fields = append(s.Fields, id)
	return id
}

func (b *Builder) NewClass(name string, rng source.CodeRange, meta Meta, static bool) DeclID {
	payload := PayloadID(b.Classes.Allocate(Class{Static: static}))
	return b.newDecl(DeclClass, name, rng, meta, payload)
}

// NewFunc allocates a function and its parameters and assigns parameter indices.
func (b *Builder) NewFunc(fn Func, params []Param) FuncID {
	id := FuncID(b.Funcs.Allocate(fn))
	ids := b.allocParams(params, func(p *Param) { p.Func = id })
	b.Func(id).Params = ids
	return id
}

// AddFunc attaches a function or constructor to class.
func (b *Builder) AddFunc(class DeclID, fn FuncID) {
	c, ok := b.Class(class)
	if !ok {
		panic("ast: AddFunc on non-class declaration")
	}
	b.Func(fn).Class = class
	c.Funcs = append(c.Funcs, fn)
}

func (b *Builder) AddProperty(class DeclID, prop Property) PropID {
	c, ok := b.Class(class)
	if !ok {
		panic("ast: AddProperty on non-class declaration")
	}
	prop.Class = class
	id := PropID(b.Props.Allocate(prop))
	c.Props = append(c.Props, id)
	return id
}

func (b *Builder) NewDelegate(name string, rng source.CodeRange, meta Meta, ret TypeRef, params []Param) DeclID {
	payload := PayloadID(b.Delegates.Allocate(Delegate{Return: ret}))
	id := b.newDecl(DeclDelegate, name, rng, meta, payload)
	d := b.Delegates.Get(uint32(payload))
	d.Params = b.allocParams(params, func(p *Param) { p.Delegate = id })
	return id
}

// allocParams stores params in order. NativeIndex skips one extra slot
// after every array parameter for its size argument.
func (b *Builder) allocParams(params []Param, owner func(*Param)) []ParamID {
	if len(params) == 0 {
		return nil
	}
	ids := make([]ParamID, 0, len(params))
	native := 0
	for i, p := range params {
		p.Index = i
		p.NativeIndex = native
		if b.Types.IsArray(p.Type.Type) {
			native++
		}
		native++
		owner(&p)
		ids = append(ids, ParamID(b.Params.Allocate(p)))
	}
	return ids
}

func (b *Builder) payload(id DeclID, kind DeclKind) (uint32, bool) {
	d := b.Decl(id)
	if d == nil || d.Kind != kind || !d.Payload.IsValid() {
		return 0, false
	}
	return uint32(d.Payload), true
}

func (b *Builder) Import(id DeclID) (*Import, bool) {
	p, ok := b.payload(id, DeclImport)
	if !ok {
		return nil, false
	}
	return b.Imports.Get(p), true
}

func (b *Builder) SetVar(id DeclID) (*SetVar, bool) {
	p, ok := b.payload(id, DeclSetVar)
	if !ok {
		return nil, false
	}
	return b.Vars.Get(p), true
}

func (b *Builder) Enum(id DeclID) (*Enum, bool) {
	p, ok := b.payload(id, DeclEnum)
	if !ok {
		return nil, false
	}
	return b.Enums.Get(p), true
}

func (b *Builder) Struct(id DeclID) (*Struct, bool) {
	p, ok := b.payload(id, DeclStruct)
	if !ok {
		return nil, false
	}
	return b.Structs.Get(p), true
}

func (b *Builder) Class(id DeclID) (*Class, bool) {
	p, ok := b.payload(id, DeclClass)
	if !ok {
		return nil, false
	}
	return b.Classes.Get(p), true
}

func (b *Builder) Delegate(id DeclID) (*Delegate, bool) {
	p, ok := b.payload(id, DeclDelegate)
	if !ok {
		return nil, false
	}
	return b.Delegates.Get(p), true
}

func (b *Builder) Member(id MemberID) *EnumMember { return b.Members.Get(uint32(id)) }
func (b *Builder) Field(id FieldID) *Field        { return b.Fields.Get(uint32(id)) }
func (b *Builder) Func(id FuncID) *Func           { return b.Funcs.Get(uint32(id)) }
func (b *Builder) Param(id ParamID) *Param        { return b.Params.Get(uint32(id)) }
func (b *Builder) Prop(id PropID) *Property       { return b.Props.Get(uint32(id)) }

// Ctors returns the constructors of class in source order.
func (b *Builder) Ctors(class DeclID) []FuncID {
	return b.classFuncs(class, true)
}

// Methods returns the non-constructor functions of class in source order.
func (b *Builder) Methods(class DeclID) []FuncID {
	return b.classFuncs(class, false)
}

func (b *Builder) classFuncs(class DeclID, ctors bool) []FuncID {
	c, ok := b.Class(class)
	if !ok {
		return nil
	}
	var out []FuncID
	for _, id := range c.Funcs {
		if b.Func(id).IsCtor() == ctors {
			out = append(out, id)
		}
	}
	return out
}
