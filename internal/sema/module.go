package sema

import (
	"strings"

	"bridgec/internal/ast"
	"bridgec/internal/diag"
	"bridgec/internal/source"
	"bridgec/internal/types"
)

// Module is a fully verified interface module. It is read-only once
// NewModule returns it.
type Module struct {
	Settings Settings
	Builder  *ast.Builder
	Decls    []ast.DeclID
	ID       ast.ModuleID

	Name      string
	Version   Version
	CaseStyle CaseStyle
	Vars      Variables

	DllExportAPI     string
	CallConvAPI      string
	CppCallConvValue string
	JavaPackageName  string

	enums     []ast.DeclID
	structs   []ast.DeclID
	classes   []ast.DeclID
	delegates []ast.DeclID
	exported  []ast.FuncID

	typeDecls map[string]ast.DeclID
}

// NewModule attaches decls to a new module, applies its variables and
// verifies every declaration. The first problem found is returned.
func NewModule(b *ast.Builder, decls []ast.DeclID, settings Settings) (*Module, error) {
	m := &Module{
		Settings:  settings,
		Builder:   b,
		Decls:     decls,
		ID:        ast.ModuleID(max(settings.ModuleID, 1)),
		typeDecls: make(map[string]ast.DeclID),
	}

	for _, id := range decls {
		b.Decl(id).Attach(m.ID)
	}
	if err := m.processHeader(); err != nil {
		return nil, err
	}
	if err := m.extractVariables(); err != nil {
		return nil, err
	}

	for _, id := range decls {
		d := b.Decl(id)
		if _, seen := m.typeDecls[d.Name]; d.Kind.IsType() && !seen {
			m.typeDecls[d.Name] = id
		}
	}

	v := &verifier{m: m, b: b, types: b.Types}
	for _, id := range decls {
		if err := v.verifyDecl(id); err != nil {
			return nil, err
		}
	}
	if err := m.checkModule(); err != nil {
		return nil, err
	}
	m.buildIndexes()

	if l := settings.Logger; l != nil {
		l.Debug("module verified", "module", m.Name,
			"enums", len(m.enums), "structs", len(m.structs), "classes", len(m.classes),
			"delegates", len(m.delegates), "functions", len(m.exported))
	}
	return m, nil
}

// processHeader requires the module declaration to come first.
func (m *Module) processHeader() error {
	if len(m.Decls) == 0 {
		start := source.CodeRange{File: m.Settings.InputFilename, Line: 1, StartCol: 1, EndCol: 1}
		return diag.Errorf(diag.SemaMissingModule, start,
			"The first declaration must be a module declaration. Example: 'module myLib'")
	}
	first := m.Builder.Decl(m.Decls[0])
	if first.Kind != ast.DeclModule {
		return diag.Errorf(diag.SemaMissingModule, first.Range,
			"The first declaration must be a module declaration. Example: 'module myLib'")
	}
	m.Name = first.Name

	seenOther := false
	for _, id := range m.Decls[1:] {
		d := m.Builder.Decl(id)
		switch d.Kind {
		case ast.DeclModule:
			return diag.Errorf(diag.SemaModuleRedeclared, d.Range,
				"A module may only be declared once; '%s' was declared first.", m.Name).
				WithNote(first.Range, "first declared here")
		case ast.DeclImport:
			if m.Settings.StrictImports && seenOther {
				return diag.Errorf(diag.SemaImportOrder, d.Range,
					"Import declarations must precede all other declarations.")
			}
		default:
			seenOther = true
		}
	}
	return nil
}

// extractVariables seeds defaults, overlays every `set` and derives the
// values that depend on them.
func (m *Module) extractVariables() error {
	m.Vars = defaultVariables(m.Name)
	var versionRange, caseRange source.CodeRange
	for _, id := range m.Decls {
		d := m.Builder.Decl(id)
		sv, ok := m.Builder.SetVar(id)
		if !ok {
			continue
		}
		if err := checkSetVar(d, sv); err != nil {
			return err
		}
		m.Vars[d.Name] = sv.Value
		switch d.Name {
		case VarVersion:
			versionRange = sv.ValueRange
		case VarCppCaseStyle:
			caseRange = sv.ValueRange
		}
	}

	m.Version = DefaultVersion
	if s := m.Vars.GetString(VarVersion, ""); s != "" {
		v, ok := ParseVersion(s)
		if !ok {
			return diag.Errorf(diag.SemaVariableValue, versionRange,
				"Invalid version '%s'. Expected 'major[.minor[.revision[.tag]]]'.", s)
		}
		m.Version = v
	}
	if s := m.Vars.GetString(VarCppCaseStyle, ""); s != "" {
		style, ok := ParseCaseStyle(s)
		if !ok {
			return diag.Errorf(diag.SemaVariableValue, caseRange,
				"Invalid case style '%s'. Expected 'PascalCase' or 'camelCase'.", s)
		}
		m.CaseStyle = style
	}

	upperName := m.UpperName()
	m.DllExportAPI = upperName + "_API"
	m.CallConvAPI = upperName + "_CALLCONV"
	m.CppCallConvValue = "cdecl"
	if id := m.CompanyID(); id != "" {
		m.JavaPackageName = "com." + id + "." + m.Name
	} else {
		m.JavaPackageName = "com." + m.Name
	}
	return nil
}

// buildIndexes collects per-kind declaration lists for code generators.
func (m *Module) buildIndexes() {
	for _, id := range m.Decls {
		switch m.Builder.Decl(id).Kind {
		case ast.DeclEnum:
			m.enums = append(m.enums, id)
		case ast.DeclStruct:
			m.structs = append(m.structs, id)
		case ast.DeclClass:
			m.classes = append(m.classes, id)
			c, _ := m.Builder.Class(id)
			m.exported = append(m.exported, c.Exported...)
		case ast.DeclDelegate:
			m.delegates = append(m.delegates, id)
		}
	}
}

func (m *Module) UpperName() string   { return upper.String(m.Name) }
func (m *Module) CompanyID() string   { return m.Vars.GetString(VarCompanyID, "") }
func (m *Module) Company() string     { return m.Vars.GetString(VarCompany, "") }
func (m *Module) Description() string { return m.Vars.GetString(VarDescription, "") }

func (m *Module) EnableClangFormat() bool     { return m.Vars.GetBool(VarEnableClangFormat, false) }
func (m *Module) ClangFormatLocation() string { return m.Vars.GetString(VarClangFormatLocation, "") }
func (m *Module) CppVectorSupport() bool      { return m.Vars.GetBool(VarCppVectorSupport, true) }
func (m *Module) CppGenStdHash() bool         { return m.Vars.GetBool(VarCppGenStdHash, true) }
func (m *Module) HashFirstPrime() int64       { return m.Vars.GetInt(VarHashFirstPrime, 17) }
func (m *Module) HashSecondPrime() int64      { return m.Vars.GetInt(VarHashSecondPrime, 23) }
func (m *Module) CSharpLibName() string       { return m.Vars.GetString(VarCSharpLibName, "") }
func (m *Module) PythonLibName() string       { return m.Vars.GetString(VarPythonLibName, "") }
func (m *Module) JavaLibName() string         { return m.Vars.GetString(VarJavaLibName, "") }

// JavaPackagePath is the package name with dots replaced by slashes.
func (m *Module) JavaPackagePath() string {
	return strings.ReplaceAll(m.JavaPackageName, ".", "/")
}

// READONLY
func (m *Module) Enums() []ast.DeclID     { return m.enums }
func (m *Module) Structs() []ast.DeclID   { return m.structs }
func (m *Module) Classes() []ast.DeclID   { return m.classes }
func (m *Module) Delegates() []ast.DeclID { return m.delegates }

// AllExportedFunctions returns the exported functions of every class in
// declaration order.
func (m *Module) AllExportedFunctions() []ast.FuncID { return m.exported }

// TypeDecls returns every type declaration, optionally without enums.
func (m *Module) TypeDecls(withEnums bool) []ast.DeclID {
	var out []ast.DeclID
	for _, id := range m.Decls {
		d := m.Builder.Decl(id)
		if d.Kind.IsType() && (withEnums || d.Kind != ast.DeclEnum) {
			out = append(out, id)
		}
	}
	return out
}

// FindType resolves a type name. Declared types shadow primitives.
func (m *Module) FindType(name string) (types.TypeID, bool) {
	if id, ok := m.typeDecls[name]; ok {
		return m.Builder.Decl(id).Type, true
	}
	return m.Builder.Types.Primitive(name)
}

// FindTypeDecl returns the type declaration named name.
func (m *Module) FindTypeDecl(name string) (ast.DeclID, bool) {
	id, ok := m.typeDecls[name]
	return id, ok
}

// Variable returns the value of a module variable after defaults and overrides.
func (m *Module) Variable(name string) (ast.Value, bool) {
	v, ok := m.Vars[name]
	return v, ok
}
