package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"bridgec/internal/ast"
)

// FormatDeclsPretty печатает разобранные объявления до верификации:
// по строке на объявление и по строке на каждый вложенный элемент.
func FormatDeclsPretty(w io.Writer, b *ast.Builder, decls []ast.DeclID) error {
	var sb strings.Builder
	for i, id := range decls {
		d := b.Decl(id)
		fmt.Fprintf(&sb, "%3d: %-8s %s", i+1, d.Kind, d.Name)
		if d.Attr != nil {
			fmt.Fprintf(&sb, " [[%s]]", d.Attr.Name)
		}
		fmt.Fprintf(&sb, " at %d:%d-%d\n", d.Range.Line, d.Range.StartCol, d.Range.EndCol)

		switch d.Kind {
		case ast.DeclImport:
			imp, _ := b.Import(id)
			fmt.Fprintf(&sb, "       path %q\n", imp.Path)
		case ast.DeclSetVar:
			sv, _ := b.SetVar(id)
			fmt.Fprintf(&sb, "       %s %s\n", sv.Value.Kind, valueString(sv.Value))
		case ast.DeclEnum:
			e, _ := b.Enum(id)
			for _, mid := range e.Members {
				mem := b.Member(mid)
				fmt.Fprintf(&sb, "       %s = %d\n", mem.Name, mem.Value)
			}
		case ast.DeclStruct:
			s, _ := b.Struct(id)
			for _, fid := range s.Fields {
				f := b.Field(fid)
				fmt.Fprintf(&sb, "       %s %s\n", b.Types.Name(f.Type.Type), f.Name)
			}
		case ast.DeclClass:
			c, _ := b.Class(id)
			for _, fid := range c.Funcs {
				fn := b.Func(fid)
				kind := "func"
				if fn.IsCtor() {
					kind = "ctor"
				}
				fmt.Fprintf(&sb, "       %s %s %s(%s)\n", kind, b.Types.Name(fn.Return.Type), fn.Name, paramNames(b, fn.Params))
			}
			for _, pid := range c.Props {
				p := b.Prop(pid)
				fmt.Fprintf(&sb, "       prop %s %s%s\n", b.Types.Name(p.Type.Type), p.Name, accessors(p))
			}
		case ast.DeclDelegate:
			dl, _ := b.Delegate(id)
			fmt.Fprintf(&sb, "       %s (%s)\n", b.Types.Name(dl.Return.Type), paramNames(b, dl.Params))
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func paramNames(b *ast.Builder, ids []ast.ParamID) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		p := b.Param(id)
		parts = append(parts, b.Types.Name(p.Type.Type)+" "+p.Name)
	}
	return strings.Join(parts, ", ")
}

func accessors(p *ast.Property) string {
	var parts []string
	if p.HasGetter() {
		parts = append(parts, "get")
	}
	if p.HasSetter() {
		parts = append(parts, "set")
	}
	return " {" + strings.Join(parts, " ") + "}"
}

func valueString(v ast.Value) string {
	switch v.Kind {
	case ast.ValueBool:
		return fmt.Sprint(v.Bool)
	case ast.ValueInt:
		return fmt.Sprint(v.Int)
	default:
		return fmt.Sprintf("%q", v.Str)
	}
}
