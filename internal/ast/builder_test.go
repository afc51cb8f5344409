package ast

import (
	"testing"

	"bridgec/internal/source"
	"bridgec/internal/types"
)

func rng(line, start, end int) source.CodeRange {
	return source.CodeRange{File: "test.bdl", Line: line, StartCol: start, EndCol: end}
}

func TestEnumMemberDefaults(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	id := b.NewEnum("WindowFlags", rng(1, 6, 17), Meta{})

	five := int64(5)
	b.AddEnumMember(id, "A", rng(2, 1, 2), Meta{}, nil)
	b.AddEnumMember(id, "B", rng(3, 1, 2), Meta{}, nil)
	b.AddEnumMember(id, "C", rng(4, 1, 2), Meta{}, &five)
	b.AddEnumMember(id, "D", rng(5, 1, 2), Meta{}, nil)

	e, ok := b.Enum(id)
	if !ok {
		t.Fatal("expected enum payload")
	}
	if !e.IsFlags {
		t.Error("enum named WindowFlags should be a flags enum")
	}
	want := []int64{0, 1, 5, 6}
	for i, mid := range e.Members {
		m := b.Member(mid)
		if m.Value != want[i] {
			t.Errorf("member %s: got %d, want %d", m.Name, m.Value, want[i])
		}
		if m.Enum != id {
			t.Errorf("member %s: owner not set", m.Name)
		}
	}
	if !b.Member(e.Members[2]).Explicit || b.Member(e.Members[3]).Explicit {
		t.Error("explicit flag mismatch")
	}
}

func TestParamIndices(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	in := b.Types
	intArr, _ := in.Array(in.Builtins().Int)

	fn := b.NewFunc(Func{Name: "Fill", Return: TypeRef{Type: in.Builtins().Void}}, []Param{
		{Name: "a", Type: TypeRef{Type: in.Builtins().Int}},
		{Name: "values", Type: TypeRef{Type: intArr}},
		{Name: "b", Type: TypeRef{Type: in.Builtins().Float}},
	})

	f := b.Func(fn)
	if len(f.Params) != 3 {
		t.Fatalf("expected 3 params, got %d", len(f.Params))
	}
	wantIndex := []int{0, 1, 2}
	wantNative := []int{0, 1, 3}
	for i, pid := range f.Params {
		p := b.Param(pid)
		if p.Index != wantIndex[i] || p.NativeIndex != wantNative[i] {
			t.Errorf("%s: index=%d native=%d, want %d/%d", p.Name, p.Index, p.NativeIndex, wantIndex[i], wantNative[i])
		}
		if p.Func != fn {
			t.Errorf("%s: func owner not set", p.Name)
		}
	}
}

func TestDelegateParamsOwner(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	void := TypeRef{Type: b.Types.Builtins().Void}
	id := b.NewDelegate("Callback", rng(1, 10, 18), Meta{}, void, []Param{
		{Name: "x", Type: TypeRef{Type: b.Types.Builtins().Int}},
	})
	d, ok := b.Delegate(id)
	if !ok || len(d.Params) != 1 {
		t.Fatal("expected delegate with one param")
	}
	if p := b.Param(d.Params[0]); p.Delegate != id || p.Func.IsValid() {
		t.Errorf("unexpected owner: delegate=%d func=%d", p.Delegate, p.Func)
	}
	if !b.Types.IsDelegate(b.Decl(id).Type) {
		t.Error("delegate declaration should introduce a delegate type")
	}
}

func TestClassFuncSplit(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	cls := b.NewClass("Window", rng(1, 7, 13), Meta{}, false)
	void := TypeRef{Type: b.Types.Builtins().Void}

	show := b.NewFunc(Func{Name: "Show", Return: void}, nil)
	ctor := b.NewFunc(Func{Name: "Window", Flags: FuncCtor}, nil)
	hide := b.NewFunc(Func{Name: "Hide", Return: void}, nil)
	for _, fn := range []FuncID{show, ctor, hide} {
		b.AddFunc(cls, fn)
	}

	if got := b.Ctors(cls); len(got) != 1 || got[0] != ctor {
		t.Errorf("ctors = %v", got)
	}
	if got := b.Methods(cls); len(got) != 2 || got[0] != show || got[1] != hide {
		t.Errorf("methods = %v", got)
	}
	if b.Func(show).Class != cls {
		t.Error("class owner not set")
	}
}

func TestPayloadKindMismatch(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	st := b.NewStruct("Vec", rng(1, 8, 11), Meta{})
	if _, ok := b.Class(st); ok {
		t.Error("struct must not resolve as class")
	}
	if _, ok := b.Struct(NoDeclID); ok {
		t.Error("invalid id must not resolve")
	}
	if k := b.Types.MustLookup(b.Decl(st).Type).Kind; k != types.KindStruct {
		t.Errorf("struct type kind = %v", k)
	}
}

func TestDeclAttach(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	id := b.NewStruct("Vec", rng(1, 8, 11), Meta{})
	d := b.Decl(id)
	d.Attach(1)
	d.Attach(1)

	defer func() {
		if recover() == nil {
			t.Fatal("attaching to a second module should panic")
		}
	}()
	d.Attach(2)
}

func TestNewComment(t *testing.T) {
	c := NewComment(rng(1, 1, 10), []string{
		"//",
		"// Resizes the window.",
		"// @param w new width",
		"//@param h new height",
		"//",
	})
	if got := c.Text(); got != "Resizes the window." {
		t.Errorf("text = %q", got)
	}
	if w, ok := c.ParamText("w"); !ok || w != "new width" {
		t.Errorf("param w = %q, %v", w, ok)
	}
	if h, ok := c.ParamText("h"); !ok || h != "new height" {
		t.Errorf("param h = %q, %v", h, ok)
	}
	if _, ok := c.ParamText("x"); ok {
		t.Error("x is not documented")
	}
	var nilComment *Comment
	if nilComment.Text() != "" {
		t.Error("nil comment should have empty text")
	}
}
