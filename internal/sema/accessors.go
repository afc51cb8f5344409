package sema

import (
	"bridgec/internal/ast"
)

// gatherExported builds the exported function list of a class:
// constructors, then methods, then the accessors of each property.
func (v *verifier) gatherExported(id ast.DeclID, c *ast.Class) error {
	exported := make([]ast.FuncID, 0, len(c.Funcs)+2*len(c.Props))
	exported = append(exported, v.b.Ctors(id)...)
	exported = append(exported, v.b.Methods(id)...)

	style := v.m.CaseStyle
	for _, pid := range c.Props {
		p := v.b.Prop(pid)
		var flags ast.FuncFlags
		if p.Static {
			flags |= ast.FuncStatic
		}

		if p.HasGetter() {
			fn := v.b.NewFunc(ast.Func{
				Name:     accessorPrefix(false, style) + p.Name,
				Range:    p.Range,
				Meta:     ast.Meta{Attr: p.Attr},
				Return:   p.Type,
				Flags:    flags | ast.FuncConst,
				Class:    id,
				Property: pid,
				Accessor: ast.AccessorGetter,
			}, nil)
			if err := v.verifyFunc(fn); err != nil {
				return err
			}
			v.b.Prop(pid).Getter = fn
			exported = append(exported, fn)
		}

		if p.HasSetter() {
			fn := v.b.NewFunc(ast.Func{
				Name:     accessorPrefix(true, style) + p.Name,
				Range:    p.Range,
				Meta:     ast.Meta{Attr: p.Attr},
				Return:   ast.TypeRef{Type: v.types.Builtins().Void, Range: p.Range},
				Flags:    flags,
				Class:    id,
				Property: pid,
				Accessor: ast.AccessorSetter,
			}, []ast.Param{{Name: "value", Range: p.Range, Type: p.Type}})
			if err := v.verifyFunc(fn); err != nil {
				return err
			}
			v.b.Prop(pid).Setter = fn
			exported = append(exported, fn)
		}
	}

	c.Exported = exported
	return nil
}

// FunctionForProperty returns the accessor synthesized for prop.
func (m *Module) FunctionForProperty(prop ast.PropID, mask ast.PropMask) (ast.FuncID, bool) {
	p := m.Builder.Prop(prop)
	if p == nil {
		return ast.NoFuncID, false
	}
	var id ast.FuncID
	switch mask {
	case ast.PropGetter:
		id = p.Getter
	case ast.PropSetter:
		id = p.Setter
	}
	return id, id.IsValid()
}

// ExportedWithoutCtors returns the exported functions of class except constructors.
func (m *Module) ExportedWithoutCtors(class ast.DeclID) []ast.FuncID {
	c, ok := m.Builder.Class(class)
	if !ok {
		return nil
	}
	out := make([]ast.FuncID, 0, len(c.Exported))
	for _, id := range c.Exported {
		if !m.Builder.Func(id).IsCtor() {
			out = append(out, id)
		}
	}
	return out
}
