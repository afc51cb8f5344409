package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bridgec/internal/diag"
	"bridgec/internal/source"
)

func TestProjectName(t *testing.T) {
	tests := map[string]string{
		"geo":        "geo",
		"my-api":     "my_api",
		"9lives":     "bridge_project",
		"проект":     "bridge_project",
		"shapes.lib": "shapes_lib",
	}
	for in, want := range tests {
		if got := projectName(in); got != want {
			t.Errorf("projectName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestReadUIMode(t *testing.T) {
	if _, err := readUIMode("maybe"); err == nil {
		t.Fatal("expected error")
	}
	if m, err := readUIMode(" ON "); err != nil || m != uiModeOn {
		t.Fatalf("got %v, %v", m, err)
	}
	if shouldUseTUI(uiModeOff) {
		t.Fatal("off must disable the UI")
	}
}

func TestResolveTargetsDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.bdl", "b.bdl", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("module x;"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "bridgec.toml"), []byte("[project]\nname = \"x\"\n[compile]\nstrict_imports = true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tg, err := resolveTargets([]string{dir})
	if err != nil {
		t.Fatal(err)
	}
	if len(tg.files) != 2 {
		t.Fatalf("files = %v", tg.files)
	}
	if !tg.settings.StrictImports || tg.manifest == nil {
		t.Fatal("manifest settings must apply")
	}
}

func TestPrintDiagnosticsFormats(t *testing.T) {
	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.SemaStructEmpty, source.CodeRange{File: "geo.bdl", Line: 2, StartCol: 8, EndCol: 9}, "Struct 'S' does not declare any fields"))

	var buf bytes.Buffer
	failed, err := printDiagnostics(&buf, bag, nil, "short", globalFlags{}, false)
	if err != nil || !failed {
		t.Fatalf("failed=%v err=%v", failed, err)
	}
	if got := buf.String(); !strings.HasPrefix(got, "error SEM3030 geo.bdl:2:8 ") {
		t.Fatalf("short output %q", got)
	}

	if _, err := printDiagnostics(&buf, bag, nil, "xml", globalFlags{}, false); err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("err = %v", err)
	}

	empty := diag.NewBag(1)
	if failed, err := printDiagnostics(&buf, empty, nil, "xml", globalFlags{}, false); failed || err != nil {
		t.Fatalf("empty bag: failed=%v err=%v", failed, err)
	}
}
