package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.bdl", []byte("module a;"), 0)
	id2 := fs.Add("test.bdl", []byte("module b;"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %d twice", id1)
	}

	latest, ok := fs.GetByPath("test.bdl")
	if !ok {
		t.Fatal("expected file to be indexed by path")
	}
	if latest.ID != id2 {
		t.Errorf("expected latest id %d, got %d", id2, latest.ID)
	}
	if got := string(fs.Get(id1).Content); got != "module a;" {
		t.Errorf("old version must stay reachable, got %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("expected 2 files, got %d", fs.Len())
	}
}

// TestAddVirtualLineIdx проверяет правильность построения LineIdx для AddVirtual
func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.bdl", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag to be set")
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lib.bdl")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("module lib;\r\nclass A;\r\n")...)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	file := fs.Get(id)
	if got := string(file.Content); got != "module lib;\nclass A;\n" {
		t.Errorf("unexpected content %q", got)
	}
	if file.Flags&FileHadBOM == 0 || file.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("expected BOM and CRLF flags, got %b", file.Flags)
	}
	if file.Dir() != filepath.ToSlash(dir) {
		t.Errorf("Dir() = %q, want %q", file.Dir(), filepath.ToSlash(dir))
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	file := fs.Get(fs.AddVirtual("x.bdl", []byte("first\nsecond\nthird")))

	cases := map[uint32]string{0: "", 1: "first", 2: "second", 3: "third", 4: ""}
	for line, want := range cases {
		if got := file.GetLine(line); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, want)
		}
	}
}

func TestFormatPathBasename(t *testing.T) {
	if got := FormatPath("/very/long/path/to/some/interface/definitions/lib.bdl", "basename", ""); got != "lib.bdl" {
		t.Errorf("basename mode: got %q", got)
	}
	if got := FormatPath("lib.bdl", "auto", ""); got != "lib.bdl" {
		t.Errorf("auto mode keeps short paths, got %q", got)
	}
}
