package sema

import (
	"slices"

	"bridgec/internal/ast"
	"bridgec/internal/diag"
	"bridgec/internal/types"
)

// checkModule runs the checks that need every declaration verified.
func (m *Module) checkModule() error {
	b := m.Builder
	reserved := types.PrimitiveNames()
	for _, id := range m.Decls {
		if d := b.Decl(id); slices.Contains(reserved, d.Name) {
			return diag.Errorf(diag.SemaReservedName, d.Range, "Type '%s' is named after a reserved type.", d.Name)
		}
	}

	seen := make(map[string]ast.DeclID, len(m.Decls))
	for _, id := range m.Decls {
		d := b.Decl(id)
		if first, dup := seen[d.Name]; dup {
			return diag.Errorf(diag.SemaDuplicateSymbol, d.Range, "A symbol named '%s' exists multiple times.", d.Name).
				WithNote(b.Decl(first).Range, "previously declared here")
		}
		seen[d.Name] = id
	}

	for _, id := range m.Decls {
		var err error
		switch b.Decl(id).Kind {
		case ast.DeclEnum:
			err = m.checkEnum(id)
		case ast.DeclStruct:
			err = m.checkStruct(id)
		case ast.DeclClass:
			err = m.checkClass(id)
		case ast.DeclDelegate:
			err = m.checkDelegate(id)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Module) checkEnum(id ast.DeclID) error {
	d := m.Builder.Decl(id)
	e, _ := m.Builder.Enum(id)
	seen := make(map[string]struct{}, len(e.Members))
	for _, mid := range e.Members {
		member := m.Builder.Member(mid)
		if _, dup := seen[member.Name]; dup {
			return diag.Errorf(diag.SemaEnumDuplicateMember, member.Range,
				"Duplicate member \"%s\" in enum \"%s\".", member.Name, d.Name)
		}
		seen[member.Name] = struct{}{}
	}
	return nil
}

func (m *Module) checkStruct(id ast.DeclID) error {
	d := m.Builder.Decl(id)
	s, _ := m.Builder.Struct(id)
	seen := make(map[string]struct{}, len(s.Fields))
	for _, fid := range s.Fields {
		f := m.Builder.Field(fid)
		if _, dup := seen[f.Name]; dup {
			return diag.Errorf(diag.SemaStructDuplicateField, f.Range,
				"Duplicate field \"%s\" in struct \"%s\".", f.Name, d.Name)
		}
		seen[f.Name] = struct{}{}
	}

	in := m.Builder.Types
	for _, fid := range s.Fields {
		f := m.Builder.Field(fid)
		if in.IsVoid(f.Type.Type) {
			return diag.Errorf(diag.SemaFieldInvalidType, f.Range,
				"Field \"%s\" is of type void, which is not allowed.", f.Name)
		}
		if in.IsDelegate(f.Type.Type) {
			return diag.Errorf(diag.SemaFieldInvalidType, f.Range,
				"Field \"%s\" is of type delegate, which is not allowed.", f.Name)
		}
	}
	return nil
}

func (m *Module) checkClass(id ast.DeclID) error {
	b := m.Builder
	d := b.Decl(id)
	c, _ := b.Class(id)

	names := make(map[string]struct{}, len(c.Exported))
	for _, fid := range c.Exported {
		fn := b.Func(fid)
		if _, dup := names[fn.Name]; dup {
			if fn.Property.IsValid() {
				return diag.Errorf(diag.SemaClassDuplicateMember, fn.Range,
					"Class \"%s\" declares a property named \"%s\" multiple times.", d.Name, b.Prop(fn.Property).Name)
			}
			return diag.Errorf(diag.SemaClassDuplicateMember, fn.Range,
				"Class \"%s\" declares a function named \"%s\" multiple times.", d.Name, fn.Name)
		}
		names[fn.Name] = struct{}{}

		if fn.IsCtor() && fn.IsStatic() {
			return diag.Errorf(diag.SemaStaticCtor, fn.Range, "A constructor cannot be declared as static.")
		}
		if err := m.checkParams(fn.Params, "function", fn.Name); err != nil {
			return err
		}
	}

	for _, fid := range c.Exported {
		fn := b.Func(fid)
		if !b.Types.IsVoid(fn.Return.Type) && b.Types.IsDelegate(fn.Return.Type) {
			return diag.Errorf(diag.SemaDelegateReturn, fn.Range, "Delegates cannot be used as return types.")
		}
	}

	if c.Static {
		if ctors := b.Ctors(id); len(ctors) > 0 {
			return diag.Errorf(diag.SemaStaticClassCtor, d.Range, "Static classes cannot have any constructors.").
				WithNote(b.Func(ctors[0]).Range, "constructor declared here")
		}
		for _, fid := range b.Methods(id) {
			if fn := b.Func(fid); !fn.IsStatic() {
				return diag.Errorf(diag.SemaStaticClassMember, fn.Range, "Static classes may only have static functions.")
			}
		}
		for _, pid := range c.Props {
			if p := b.Prop(pid); !p.Static {
				return diag.Errorf(diag.SemaStaticClassMember, p.Range, "Static classes may only have static properties.")
			}
		}
	}
	return nil
}

func (m *Module) checkDelegate(id ast.DeclID) error {
	d := m.Builder.Decl(id)
	dl, _ := m.Builder.Delegate(id)
	if err := m.checkParams(dl.Params, "delegate", d.Name); err != nil {
		return err
	}
	if m.Builder.Types.IsArray(dl.Return.Type) {
		return diag.Errorf(diag.SemaDelegateArrayReturn, dl.Return.Range, "Arrays cannot be used as return types by delegates.")
	}
	return nil
}

// checkParams rejects parameter lists that repeat a name.
func (m *Module) checkParams(params []ast.ParamID, owner, name string) error {
	seen := make(map[string]struct{}, len(params))
	for _, pid := range params {
		p := m.Builder.Param(pid)
		if _, dup := seen[p.Name]; dup {
			return diag.Errorf(diag.SemaDuplicateParam, p.Range,
				"Duplicate parameter \"%s\" in %s \"%s\".", p.Name, owner, name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}
