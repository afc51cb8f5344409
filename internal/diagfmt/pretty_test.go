package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"bridgec/internal/diag"
	"bridgec/internal/source"
)

func fixture() (*source.FileSet, *diag.Bag) {
	fs := source.NewFileSet()
	fs.AddVirtual("/home/user/project/api/geo.bdl", []byte("module geo;\nstruct P { Pointt a; }\n"))

	bag := diag.NewBag(10)
	rng := source.CodeRange{File: "/home/user/project/api/geo.bdl", Line: 2, Start: 23, End: 29, StartCol: 12, EndCol: 18}
	d := diag.NewError(diag.SemaUnresolvedSymbol, rng, "Undefined type 'Pointt'").
		WithNote(source.CodeRange{File: rng.File, Line: 1, Start: 7, End: 10, StartCol: 8, EndCol: 11}, "in module 'geo'")
	bag.Add(d)
	return fs, bag
}

func TestPrettyPathModes(t *testing.T) {
	fs, bag := fixture()
	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/api/geo.bdl:2:12"},
		{"Basename only", PathModeBasename, "geo.bdl:2:12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			if !strings.HasPrefix(buf.String(), tt.contains) {
				t.Fatalf("expected prefix %q, got:\n%s", tt.contains, buf.String())
			}
		})
	}
}

func TestPrettySnippet(t *testing.T) {
	fs, bag := fixture()
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true})

	want := "geo.bdl:2:12: ERROR SEM3005: Undefined type 'Pointt'\n" +
		"2 | struct P { Pointt a; }\n" +
		"  |            ^~~~~~\n" +
		"  note (geo.bdl:1:8): in module 'geo'\n" +
		"1 | module geo;\n" +
		"  |        ^~~\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyWithoutNotes(t *testing.T) {
	fs, bag := fixture()
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	if strings.Contains(buf.String(), "note") {
		t.Fatalf("notes must be hidden:\n%s", buf.String())
	}
}

func TestPrettyUnlocated(t *testing.T) {
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.CodeRange{}, "open x.bdl: no such file"))
	var buf bytes.Buffer
	Pretty(&buf, bag, source.NewFileSet(), PrettyOpts{})
	if got := buf.String(); got != "ERROR IO4001: open x.bdl: no such file\n" {
		t.Fatalf("got %q", got)
	}
}

func TestUnderlineWideRunes(t *testing.T) {
	line := "// 日本 x"
	rng := source.CodeRange{Line: 1, StartCol: 7, EndCol: 8}
	if got := underline(line, rng); got != "        ^" {
		t.Fatalf("got %q", got)
	}
}
