package project

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/gobwas/glob"

	"bridgec/internal/sema"
)

// DefaultInput selects every interface file below the project root.
const DefaultInput = "**.bdl"

var (
	// ErrProjectSectionMissing indicates that [project] is missing in the manifest.
	ErrProjectSectionMissing = errors.New("missing [project]")
	// ErrInvalidProjectName indicates that [project].name is not an identifier.
	ErrInvalidProjectName = errors.New("invalid [project].name")
)

// ProjectSection is the [project] table.
type ProjectSection struct {
	Name    string   `toml:"name"`
	Inputs  []string `toml:"inputs,omitempty"`
	Exclude []string `toml:"exclude,omitempty"`
}

// CompileSection is the [compile] table; it feeds sema.Settings.
type CompileSection struct {
	StrictImports bool   `toml:"strict_imports"`
	ModuleID      uint32 `toml:"module_id,omitempty"`
	OutputDir     string `toml:"output_dir,omitempty"`
}

// GenerateSection is the [generate] table listing the requested bindings.
type GenerateSection struct {
	CSharp bool `toml:"csharp"`
	Python bool `toml:"python"`
	Java   bool `toml:"java"`
	CMake  bool `toml:"cmake"`
}

// Manifest describes bridgec.toml.
type Manifest struct {
	Project  ProjectSection  `toml:"project"`
	Compile  CompileSection  `toml:"compile"`
	Generate GenerateSection `toml:"generate"`

	// Path is the manifest location; Root is its directory.
	Path string `toml:"-"`
	Root string `toml:"-"`
}

// IsValidModuleIdent reports whether name is an ASCII identifier.
func IsValidModuleIdent(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r > unicode.MaxASCII {
			return false
		}
		if i == 0 && r != '_' && !unicode.IsLetter(r) {
			return false
		}
		if i > 0 && r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// LoadManifest parses and validates bridgec.toml at path.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("project") {
		return nil, fmt.Errorf("%s: %w", path, ErrProjectSectionMissing)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	m.Project.Name = strings.TrimSpace(m.Project.Name)
	if !IsValidModuleIdent(m.Project.Name) {
		return nil, fmt.Errorf("%s: %w %q", path, ErrInvalidProjectName, m.Project.Name)
	}
	if len(m.Project.Inputs) == 0 {
		m.Project.Inputs = []string{DefaultInput}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	m.Path = abs
	m.Root = filepath.Dir(abs)
	return &m, nil
}

// Load finds bridgec.toml above startDir and parses it.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := LoadManifest(path)
	return m, true, err
}

// New returns a manifest with default settings for a project called name.
func New(name string) *Manifest {
	return &Manifest{
		Project: ProjectSection{Name: name, Inputs: []string{DefaultInput}},
		Compile: CompileSection{OutputDir: "generated"},
		Generate: GenerateSection{
			CSharp: true,
			CMake:  true,
		},
	}
}

// Encode renders the manifest as TOML.
func (m *Manifest) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write stores the manifest at path unless a file already exists there.
func (m *Manifest) Write(path string) error {
	data, err := m.Encode()
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) // #nosec G302 -- manifest is meant to be shared
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func compileGlobs(patterns []string, label string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid %s pattern %q: %w", label, p, err)
		}
		out = append(out, g)
	}
	return out, nil
}

func matchAny(globs []glob.Glob, path string) bool {
	for _, g := range globs {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// Inputs lists the interface files selected by [project].inputs minus
// [project].exclude. Patterns match slash-separated paths relative to Root.
func (m *Manifest) Inputs() ([]string, error) {
	include, err := compileGlobs(m.Project.Inputs, "inputs")
	if err != nil {
		return nil, err
	}
	exclude, err := compileGlobs(m.Project.Exclude, "exclude")
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(m.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(m.Root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if rel != "." && (strings.HasPrefix(d.Name(), ".") || matchAny(exclude, rel)) {
				return filepath.SkipDir
			}
			return nil
		}
		if matchAny(include, rel) && !matchAny(exclude, rel) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// Settings builds the compile settings for one input file of the project.
func (m *Manifest) Settings(input string) sema.Settings {
	out := m.Compile.OutputDir
	if out != "" && !filepath.IsAbs(out) {
		out = filepath.Join(m.Root, out)
	}
	return sema.Settings{
		InputFilename:   input,
		OutputDirectory: out,
		GenerateCSharp:  m.Generate.CSharp,
		GeneratePython:  m.Generate.Python,
		GenerateJava:    m.Generate.Java,
		GenerateCMake:   m.Generate.CMake,
		StrictImports:   m.Compile.StrictImports,
		ModuleID:        m.Compile.ModuleID,
	}
}
