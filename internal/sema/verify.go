package sema

import (
	"path/filepath"
	"strings"

	"bridgec/internal/ast"
	"bridgec/internal/diag"
	"bridgec/internal/types"
)

// verifier resolves placeholder types and runs per-declaration checks.
// Every node is verified at most once.
type verifier struct {
	m     *Module
	b     *ast.Builder
	types *types.Interner
}

func (v *verifier) verifyDecl(id ast.DeclID) error {
	d := v.b.Decl(id)
	if d.Verified {
		return nil
	}
	d.Verified = true

	switch d.Kind {
	case ast.DeclModule:
		return v.checkAttr(d.Attr, ast.AttrTargetModule)
	case ast.DeclImport:
		return v.verifyImport(id, d)
	case ast.DeclSetVar:
		// значение проверено в extractVariables, здесь только атрибут
		return v.checkAttr(d.Attr, ast.AttrTargetModule)
	case ast.DeclEnum:
		return v.verifyEnum(id, d)
	case ast.DeclStruct:
		return v.verifyStruct(id, d)
	case ast.DeclClass:
		return v.verifyClass(id, d)
	case ast.DeclDelegate:
		return v.verifyDelegate(id, d)
	default:
		return diag.Errorf(diag.SemaError, d.Range, "Invalid declaration '%s'.", d.Name)
	}
}

// verifyImport resolves the path against the importing file's directory.
func (v *verifier) verifyImport(id ast.DeclID, d *ast.Decl) error {
	if err := v.checkAttr(d.Attr, ast.AttrTargetModule); err != nil {
		return err
	}
	imp, _ := v.b.Import(id)
	path := filepath.FromSlash(imp.Path)
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(v.m.Settings.InputFilename), path)
	}
	if !v.m.Settings.fileExists(path) {
		return diag.Errorf(diag.IOImportNotFound, d.Range, "'%s': no such file", imp.Path)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	imp.Resolved = filepath.ToSlash(path)
	return nil
}

// checkTypeName rejects names that start with the reserved prefix.
func checkTypeName(d *ast.Decl) error {
	if strings.HasPrefix(d.Name, ReservedPrefix) {
		return diag.Errorf(diag.SemaReservedPrefix, d.Range,
			"Declaration \"%s\" has an invalid name. The prefix \"%s\" is reserved for special identifiers.",
			d.Name, ReservedPrefix)
	}
	return nil
}

func (v *verifier) verifyEnum(id ast.DeclID, d *ast.Decl) error {
	if err := checkTypeName(d); err != nil {
		return err
	}
	if err := v.checkAttr(d.Attr, ast.AttrTargetEnum); err != nil {
		return err
	}
	e, _ := v.b.Enum(id)
	for _, mid := range e.Members {
		if err := v.checkAttr(v.b.Member(mid).Attr, ast.AttrTargetMember); err != nil {
			return err
		}
	}
	return nil
}

func (v *verifier) verifyStruct(id ast.DeclID, d *ast.Decl) error {
	if err := checkTypeName(d); err != nil {
		return err
	}
	if err := v.checkAttr(d.Attr, ast.AttrTargetStruct); err != nil {
		return err
	}
	s, _ := v.b.Struct(id)
	if len(s.Fields) == 0 {
		return diag.Errorf(diag.SemaStructEmpty, d.Range, "Struct '%s' does not declare any fields", d.Name)
	}
	for _, fid := range s.Fields {
		f := v.b.Field(fid)
		if err := v.resolve(&f.Type); err != nil {
			return err
		}
		if f.Type.Type == d.Type {
			return diag.Errorf(diag.SemaStructSelfField, f.Range, "A struct cannot contain a field of its own type").
				WithNote(d.Range, "struct declared here")
		}
		if err := v.checkAttr(f.Attr, ast.AttrTargetField); err != nil {
			return err
		}
	}
	return nil
}

func (v *verifier) verifyDelegate(id ast.DeclID, d *ast.Decl) error {
	if err := checkTypeName(d); err != nil {
		return err
	}
	if err := v.checkAttr(d.Attr, ast.AttrTargetDelegate); err != nil {
		return err
	}
	dl, _ := v.b.Delegate(id)
	if err := v.resolve(&dl.Return); err != nil {
		return err
	}
	return v.resolveParams(dl.Params)
}

func (v *verifier) verifyClass(id ast.DeclID, d *ast.Decl) error {
	if err := checkTypeName(d); err != nil {
		return err
	}
	if err := v.checkAttr(d.Attr, ast.AttrTargetClass); err != nil {
		return err
	}
	c, _ := v.b.Class(id)
	for _, fid := range c.Funcs {
		if err := v.verifyFunc(fid); err != nil {
			return err
		}
	}
	for _, pid := range c.Props {
		p := v.b.Prop(pid)
		if err := v.resolve(&p.Type); err != nil {
			return err
		}
		if err := v.checkAttr(p.Attr, ast.AttrTargetProperty); err != nil {
			return err
		}
	}
	return v.gatherExported(id, c)
}

func (v *verifier) verifyFunc(id ast.FuncID) error {
	fn := v.b.Func(id)
	if fn.Verified {
		return nil
	}
	fn.Verified = true

	if err := v.resolve(&fn.Return); err != nil {
		return err
	}
	if err := v.resolveParams(fn.Params); err != nil {
		return err
	}
	if fn.Accessor == ast.AccessorNone {
		if err := v.checkAttr(fn.Attr, ast.AttrTargetFunc); err != nil {
			return err
		}
	}
	if !fn.IsCtor() && makesConst(fn.Name) {
		fn.Flags |= ast.FuncConst
	}
	if fn.IsStatic() {
		fn.Flags &^= ast.FuncConst
	}
	return nil
}

func (v *verifier) resolveParams(params []ast.ParamID) error {
	for _, pid := range params {
		if err := v.resolve(&v.b.Param(pid).Type); err != nil {
			return err
		}
	}
	return nil
}

// resolve replaces the placeholder in ref by the type it names and
// memoizes the binding in the interner.
func (v *verifier) resolve(ref *ast.TypeRef) error {
	id, err := v.resolveID(ref.Type, ref)
	if err != nil {
		return err
	}
	ref.Type = id
	return nil
}

func (v *verifier) resolveID(id types.TypeID, ref *ast.TypeRef) (types.TypeID, error) {
	t, ok := v.types.Lookup(id)
	if !ok {
		return types.NoTypeID, diag.Errorf(diag.SemaError, ref.Range, "Invalid type reference.")
	}
	switch t.Kind {
	case types.KindUnresolved:
		if target, ok := v.types.Binding(id); ok {
			return target, nil
		}
		target, ok := v.m.FindType(t.Name)
		if !ok {
			return types.NoTypeID, v.undefined(t.Name, ref)
		}
		v.types.Bind(id, target)
		return target, nil
	case types.KindArray:
		elem, err := v.resolveID(t.Elem, ref)
		if err != nil {
			return types.NoTypeID, err
		}
		arr, ok := v.types.Array(elem)
		if !ok {
			return types.NoTypeID, diag.Errorf(diag.SynNestedArray, ref.Range, "Arrays of arrays are not supported.")
		}
		return arr, nil
	default:
		return id, nil
	}
}

// undefined builds the unresolved-symbol error with a "did you mean" hint
// taken from the declared types and then the primitives.
func (v *verifier) undefined(name string, ref *ast.TypeRef) error {
	candidates := make([]string, 0, len(v.m.typeDecls)+len(types.PrimitiveNames()))
	for _, id := range v.m.Decls {
		if d := v.b.Decl(id); d.Kind.IsType() {
			candidates = append(candidates, d.Name)
		}
	}
	candidates = append(candidates, types.PrimitiveNames()...)

	if s, ok := closestName(name, candidates); ok {
		return diag.Errorf(diag.SemaUnresolvedSymbol, ref.Range, "Undefined symbol '%s' used; did you mean '%s'?", name, s)
	}
	return diag.Errorf(diag.SemaUnresolvedSymbol, ref.Range, "Undefined symbol '%s' used.", name)
}

// checkAttr resolves the attribute kind and checks it may be used on target.
func (v *verifier) checkAttr(a *ast.Attribute, target ast.AttrTargetMask) error {
	if a == nil {
		return nil
	}
	spec, ok := ast.LookupAttr(a.Name)
	if !ok {
		return diag.Errorf(diag.SemaInvalidAttribute, a.Range, "Invalid attribute '%s' specified", a.Name)
	}
	if !spec.Allows(target) {
		return diag.Errorf(diag.SemaAttributeTarget, a.Range,
			"Attribute '%s' cannot be applied to %s.", spec.Name, target)
	}
	a.Kind = spec.Kind
	return nil
}
