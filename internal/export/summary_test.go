package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"bridgec/internal/ast"
	"bridgec/internal/lexer"
	"bridgec/internal/parser"
	"bridgec/internal/sema"
	"bridgec/internal/source"
)

const sample = `module geo;
set version "1.4.2";
// Colors.
enum Color { Red, Green = 3, Blue }
struct Point { float X; float Y; }
delegate void OnMove(Point to, int array path);
class Shape {
	ctor Shape();
	func float Area() const;
	get set Color Fill;
}
`

func summarize(t *testing.T) *Module {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("geo.bdl", []byte(sample)))
	toks, err := lexer.Tokenize(file, lexer.Options{})
	require.NoError(t, err)
	b := ast.NewBuilder(ast.Hints{}, nil)
	decls, err := parser.Parse(toks, b, parser.Options{})
	require.NoError(t, err)
	m, err := sema.NewModule(b, decls, sema.Settings{InputFilename: "geo.bdl"})
	require.NoError(t, err)
	return Summarize(m)
}

func TestSummarize(t *testing.T) {
	s := summarize(t)
	assert.Equal(t, "geo", s.Name)
	assert.Equal(t, "1.4.2", s.Version)

	require.Len(t, s.Enums, 1)
	assert.Equal(t, "Colors.", s.Enums[0].Doc)
	assert.Equal(t, []Member{{"Red", 0}, {"Green", 3}, {"Blue", 4}}, s.Enums[0].Members)

	require.Len(t, s.Structs, 1)
	assert.Equal(t, Field{Name: "X", Type: "float"}, s.Structs[0].Fields[0])

	require.Len(t, s.Delegates, 1)
	assert.Equal(t, "int array", s.Delegates[0].Params[1].Type)
	assert.Equal(t, 1, s.Delegates[0].Params[1].NativeIndex)

	require.Len(t, s.Classes, 1)
	var names []string
	for _, f := range s.Classes[0].Functions {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Shape", "Area", "GetFill", "SetFill"}, names)
	assert.Equal(t, "geo_Shape_Area", s.Classes[0].Functions[1].CName)
	assert.Equal(t, "Fill", s.Classes[0].Functions[2].Property)
	assert.Equal(t, 4, s.FunctionCount())

	vars := map[string]string{}
	for _, v := range s.Variables {
		vars[v.Name] = v.Value
	}
	assert.Equal(t, "geoNET", vars["csharp_libname"])
	assert.Equal(t, "1.4.2", vars["version"])
}

func TestSummaryMsgpackRoundTrip(t *testing.T) {
	s := summarize(t)
	data, err := msgpack.Marshal(s)
	require.NoError(t, err)

	var back Module
	require.NoError(t, msgpack.Unmarshal(data, &back))
	assert.Equal(t, s.Name, back.Name)
	assert.Equal(t, s.Classes, back.Classes)
	assert.Equal(t, s.Enums, back.Enums)
}
