package sema

import (
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"Vecor", "Vector", 1},
		{"flaw", "lawn", 2},
		{"héllo", "hello", 1},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestClosestName(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
		ok         bool
	}{
		{"Vecor", []string{"Window", "Vector", "Vec"}, "Vector", true},
		{"Colr", []string{"Color", "Colour"}, "Color", true},
		{"Zebra", []string{"Window", "Vector"}, "", false},
		{"Vector", []string{"Vector"}, "", false},
	}
	for _, tt := range tests {
		got, ok := closestName(tt.name, tt.candidates)
		if got != tt.want || ok != tt.ok {
			t.Errorf("closestName(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want Version
		ok   bool
	}{
		{"1", Version{Major: 1}, true},
		{"1.2", Version{Major: 1, Minor: 2}, true},
		{"1.2.3", Version{Major: 1, Minor: 2, Revision: 3}, true},
		{"1.2.3.beta", Version{Major: 1, Minor: 2, Revision: 3, Tag: "beta"}, true},
		{"v2.0.1-rc1", Version{Major: 2, Revision: 1, Tag: "rc1"}, true},
		{"1.2.3.4.5", Version{}, false},
		{"a.b", Version{}, false},
		{"", Version{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseVersion(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseVersion(%q) = %+v, %v; want %+v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}

	if s := (Version{Major: 1, Minor: 2, Revision: 3, Tag: "beta"}).String(); s != "1.2.3.beta" {
		t.Errorf("String() = %q", s)
	}
	if s := (Version{Major: 1, Minor: 2, Revision: 3, Tag: "beta"}).Semver().String(); s != "1.2.3-beta" {
		t.Errorf("Semver() = %q", s)
	}
}

func TestParseCaseStyle(t *testing.T) {
	for in, want := range map[string]CaseStyle{
		"PascalCase": PascalCase,
		"camelCase":  CamelCase,
		"CAMELCASE":  CamelCase,
		"pascal":     PascalCase,
		"camel":      CamelCase,
	} {
		got, ok := ParseCaseStyle(in)
		if !ok || got != want {
			t.Errorf("ParseCaseStyle(%q) = %v, %v", in, got, ok)
		}
	}
	if _, ok := ParseCaseStyle("snake"); ok {
		t.Error("snake is not a case style")
	}
	if Cased("value", PascalCase) != "Value" || Cased("Value", CamelCase) != "value" || Cased("", CamelCase) != "" {
		t.Error("Cased mismatch")
	}
}
