// Package export flattens a verified module into plain data for dumps
// and the on-disk cache.
package export

import (
	"strconv"

	"bridgec/internal/ast"
	"bridgec/internal/sema"
)

type Module struct {
	Name      string     `json:"name" msgpack:"name"`
	Version   string     `json:"version" msgpack:"version"`
	CaseStyle string     `json:"case_style" msgpack:"case_style"`
	Imports   []string   `json:"imports,omitempty" msgpack:"imports,omitempty"`
	Variables []Variable `json:"variables" msgpack:"variables"`
	Enums     []Enum     `json:"enums,omitempty" msgpack:"enums,omitempty"`
	Structs   []Struct   `json:"structs,omitempty" msgpack:"structs,omitempty"`
	Classes   []Class    `json:"classes,omitempty" msgpack:"classes,omitempty"`
	Delegates []Delegate `json:"delegates,omitempty" msgpack:"delegates,omitempty"`
}

type Variable struct {
	Name  string `json:"name" msgpack:"name"`
	Kind  string `json:"kind" msgpack:"kind"`
	Value string `json:"value" msgpack:"value"`
}

type Enum struct {
	Name    string   `json:"name" msgpack:"name"`
	Flags   bool     `json:"flags,omitempty" msgpack:"flags,omitempty"`
	Doc     string   `json:"doc,omitempty" msgpack:"doc,omitempty"`
	Members []Member `json:"members" msgpack:"members"`
}

type Member struct {
	Name  string `json:"name" msgpack:"name"`
	Value int64  `json:"value" msgpack:"value"`
}

type Struct struct {
	Name   string  `json:"name" msgpack:"name"`
	Doc    string  `json:"doc,omitempty" msgpack:"doc,omitempty"`
	Fields []Field `json:"fields" msgpack:"fields"`
}

type Field struct {
	Name string `json:"name" msgpack:"name"`
	Type string `json:"type" msgpack:"type"`
}

type Class struct {
	Name         string     `json:"name" msgpack:"name"`
	Doc          string     `json:"doc,omitempty" msgpack:"doc,omitempty"`
	Static       bool       `json:"static,omitempty" msgpack:"static,omitempty"`
	AbstractImpl bool       `json:"abstract_impl,omitempty" msgpack:"abstract_impl,omitempty"`
	Functions    []Function `json:"functions" msgpack:"functions"`
}

type Function struct {
	Name     string  `json:"name" msgpack:"name"`
	CName    string  `json:"c_name" msgpack:"c_name"`
	Return   string  `json:"return" msgpack:"return"`
	Params   []Param `json:"params,omitempty" msgpack:"params,omitempty"`
	Ctor     bool    `json:"ctor,omitempty" msgpack:"ctor,omitempty"`
	Const    bool    `json:"const,omitempty" msgpack:"const,omitempty"`
	Static   bool    `json:"static,omitempty" msgpack:"static,omitempty"`
	Property string  `json:"property,omitempty" msgpack:"property,omitempty"`
	Attr     string  `json:"attr,omitempty" msgpack:"attr,omitempty"`
}

type Param struct {
	Name        string `json:"name" msgpack:"name"`
	Type        string `json:"type" msgpack:"type"`
	Index       int    `json:"index" msgpack:"index"`
	NativeIndex int    `json:"native_index" msgpack:"native_index"`
}

type Delegate struct {
	Name   string  `json:"name" msgpack:"name"`
	Return string  `json:"return" msgpack:"return"`
	Params []Param `json:"params,omitempty" msgpack:"params,omitempty"`
}

// Summarize builds the summary of a verified module.
func Summarize(m *sema.Module) *Module {
	b := m.Builder
	out := &Module{
		Name:      m.Name,
		Version:   m.Version.String(),
		CaseStyle: m.CaseStyle.String(),
	}

	for _, name := range sema.VariableNames() {
		v, ok := m.Variable(name)
		if !ok {
			continue
		}
		out.Variables = append(out.Variables, Variable{Name: name, Kind: v.Kind.String(), Value: valueText(v)})
	}

	for _, id := range m.Decls {
		if imp, ok := b.Import(id); ok {
			out.Imports = append(out.Imports, imp.Path)
		}
	}

	for _, id := range m.Enums() {
		d := b.Decl(id)
		e, _ := b.Enum(id)
		en := Enum{Name: d.Name, Flags: e.IsFlags, Doc: d.Comment.Text()}
		for _, mid := range e.Members {
			mem := b.Member(mid)
			en.Members = append(en.Members, Member{Name: mem.Name, Value: mem.Value})
		}
		out.Enums = append(out.Enums, en)
	}

	for _, id := range m.Structs() {
		d := b.Decl(id)
		s, _ := b.Struct(id)
		st := Struct{Name: d.Name, Doc: d.Comment.Text()}
		for _, fid := range s.Fields {
			f := b.Field(fid)
			st.Fields = append(st.Fields, Field{Name: f.Name, Type: b.Types.Name(f.Type.Type)})
		}
		out.Structs = append(out.Structs, st)
	}

	for _, id := range m.Classes() {
		d := b.Decl(id)
		c, _ := b.Class(id)
		cl := Class{Name: d.Name, Doc: d.Comment.Text(), Static: c.Static, AbstractImpl: m.IsAbstractImpl(id)}
		for _, fid := range c.Exported {
			cl.Functions = append(cl.Functions, function(m, fid))
		}
		out.Classes = append(out.Classes, cl)
	}

	for _, id := range m.Delegates() {
		d := b.Decl(id)
		dl, _ := b.Delegate(id)
		out.Delegates = append(out.Delegates, Delegate{
			Name:   d.Name,
			Return: b.Types.Name(dl.Return.Type),
			Params: params(b, dl.Params),
		})
	}
	return out
}

func function(m *sema.Module, id ast.FuncID) Function {
	b := m.Builder
	fn := b.Func(id)
	f := Function{
		Name:   fn.Name,
		CName:  m.FuncNames(id).C,
		Return: b.Types.Name(fn.Return.Type),
		Params: params(b, fn.Params),
		Ctor:   fn.IsCtor(),
		Const:  fn.IsConst(),
		Static: fn.IsStatic(),
	}
	if fn.Property.IsValid() {
		f.Property = b.Prop(fn.Property).Name
	}
	if fn.Attr != nil {
		f.Attr = fn.Attr.Name
	}
	return f
}

func params(b *ast.Builder, ids []ast.ParamID) []Param {
	var out []Param
	for _, pid := range ids {
		p := b.Param(pid)
		out = append(out, Param{
			Name:        p.Name,
			Type:        b.Types.Name(p.Type.Type),
			Index:       p.Index,
			NativeIndex: p.NativeIndex,
		})
	}
	return out
}

func valueText(v ast.Value) string {
	switch v.Kind {
	case ast.ValueBool:
		return strconv.FormatBool(v.Bool)
	case ast.ValueInt:
		return strconv.FormatInt(v.Int, 10)
	default:
		return v.Str
	}
}

// FunctionCount returns the number of exported functions in the summary.
func (m *Module) FunctionCount() int {
	n := 0
	for _, c := range m.Classes {
		n += len(c.Functions)
	}
	return n
}
