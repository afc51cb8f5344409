package ast

import (
	"testing"
)

func TestLookupAttr_Basic(t *testing.T) {
	spec, ok := LookupAttr("ABSTRACT_IMPL")
	if !ok {
		t.Fatalf("expected to find abstract_impl spec")
	}
	if spec.Kind != AttrAbstractImpl {
		t.Fatalf("unexpected kind %d", spec.Kind)
	}
	if !spec.Allows(AttrTargetClass) {
		t.Fatalf("abstract_impl should allow classes")
	}
	if spec.Allows(AttrTargetFunc) {
		t.Fatalf("abstract_impl should not allow functions")
	}
}

func TestLookupAttr_Operators(t *testing.T) {
	for _, name := range []string{"op_add", "op_subtract", "op_multiply", "op_divide"} {
		spec, ok := LookupAttr(name)
		if !ok {
			t.Fatalf("expected %s spec", name)
		}
		if !spec.Allows(AttrTargetFunc) || !spec.Allows(AttrTargetProperty) {
			t.Fatalf("%s should apply to functions and properties", name)
		}
	}
	if _, ok := LookupAttr("op_modulo"); ok {
		t.Fatal("op_modulo is not an attribute")
	}
	if _, ok := LookupAttr(""); ok {
		t.Fatal("empty name must not resolve")
	}
}

func TestAttrSpecsSortedUnique(t *testing.T) {
	specs := AttrSpecs()
	if len(specs) != len(attrRegistry) {
		t.Fatalf("expected %d specs, got %d", len(attrRegistry), len(specs))
	}
	for idx := 1; idx < len(specs); idx++ {
		if specs[idx-1].Name >= specs[idx].Name {
			t.Fatalf("specs not sorted: %q >= %q", specs[idx-1].Name, specs[idx].Name)
		}
	}
}

func TestAttributeIs(t *testing.T) {
	var none *Attribute
	if none.Is(AttrAbstractImpl) {
		t.Fatal("nil attribute matches nothing")
	}
	a := &Attribute{Name: "op_add", Kind: AttrOpAdd}
	if !a.Is(AttrOpAdd) || a.Is(AttrOpDivide) {
		t.Fatal("Is misreports")
	}
}
