package sema

import (
	"maps"
	"slices"

	"bridgec/internal/ast"
	"bridgec/internal/diag"
)

// Module variable names accepted by `set`.
const (
	VarCompanyID           = "companyid"
	VarCompany             = "company"
	VarDescription         = "description"
	VarVersion             = "version"
	VarEnableClangFormat   = "enable_clangformat"
	VarClangFormatLocation = "clangformat_location"
	VarNativePublicDir     = "native_publicdir"
	VarNativePrivateDir    = "native_privatedir"
	VarCppCaseStyle        = "cpp_casestyle"
	VarCppVectorSupport    = "cpp_vectorsupport"
	VarCppGenStdHash       = "cpp_genstdhash"
	VarHashFirstPrime      = "hashfirstprime"
	VarHashSecondPrime     = "hashsecondprime"
	VarCSharpOutDir        = "csharp_outdir"
	VarCSharpLibName       = "csharp_libname"
	VarPythonCppFile       = "python_cppfile"
	VarPythonLibName       = "python_libname"
	VarJavaOutDir          = "java_outdir"
	VarJavaLibName         = "java_libname"
)

var varTypes = map[string]ast.ValueKind{
	VarCompanyID:           ast.ValueString,
	VarCompany:             ast.ValueString,
	VarDescription:         ast.ValueString,
	VarVersion:             ast.ValueString,
	VarEnableClangFormat:   ast.ValueBool,
	VarClangFormatLocation: ast.ValueString,
	VarNativePublicDir:     ast.ValueString,
	VarNativePrivateDir:    ast.ValueString,
	VarCppCaseStyle:        ast.ValueString,
	VarCppVectorSupport:    ast.ValueBool,
	VarCppGenStdHash:       ast.ValueBool,
	VarHashFirstPrime:      ast.ValueInt,
	VarHashSecondPrime:     ast.ValueInt,
	VarCSharpOutDir:        ast.ValueString,
	VarCSharpLibName:       ast.ValueString,
	VarPythonCppFile:       ast.ValueString,
	VarPythonLibName:       ast.ValueString,
	VarJavaOutDir:          ast.ValueString,
	VarJavaLibName:         ast.ValueString,
}

// VariableNames lists every settable variable, sorted.
func VariableNames() []string {
	return slices.Sorted(maps.Keys(varTypes))
}

// VariableType returns the value type expected by a variable.
func VariableType(name string) (ast.ValueKind, bool) {
	k, ok := varTypes[name]
	return k, ok
}

// Variables holds the module configuration after defaults and overrides.
type Variables map[string]ast.Value

func (v Variables) GetString(name, def string) string {
	if val, ok := v[name]; ok && val.Kind == ast.ValueString {
		return val.Str
	}
	return def
}

func (v Variables) GetBool(name string, def bool) bool {
	if val, ok := v[name]; ok && val.Kind == ast.ValueBool {
		return val.Bool
	}
	return def
}

func (v Variables) GetInt(name string, def int64) int64 {
	if val, ok := v[name]; ok && val.Kind == ast.ValueInt {
		return val.Int
	}
	return def
}

// defaultVariables seeds the library names derived from the module name.
func defaultVariables(module string) Variables {
	return Variables{
		VarCSharpLibName: ast.StringValue(module + "NET"),
		VarPythonLibName: ast.StringValue("py" + module),
		VarJavaLibName:   ast.StringValue("j" + module),
	}
}

// checkSetVar validates one assignment against the variable table.
func checkSetVar(d *ast.Decl, sv *ast.SetVar) error {
	want, ok := varTypes[d.Name]
	if !ok {
		return diag.Errorf(diag.SemaUnknownVariable, d.Range,
			"Attempting to set unknown variable '%s'.", d.Name)
	}
	if sv.Value.Kind != want {
		return diag.Errorf(diag.SemaVariableType, d.Range,
			"Variable '%s' is of type '%s', but attempting to assign a value of type '%s' to it.",
			d.Name, want, sv.Value.Kind)
	}
	return nil
}
