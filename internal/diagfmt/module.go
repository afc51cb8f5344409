package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"bridgec/internal/export"
)

// FormatModulePretty печатает сводку модуля в виде дерева.
func FormatModulePretty(w io.Writer, m *export.Module) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "module %s %s (%s)\n", m.Name, m.Version, m.CaseStyle)
	for _, imp := range m.Imports {
		fmt.Fprintf(&sb, "  import %q\n", imp)
	}
	for _, e := range m.Enums {
		kind := "enum"
		if e.Flags {
			kind = "flags"
		}
		fmt.Fprintf(&sb, "  %s %s\n", kind, e.Name)
		for _, mem := range e.Members {
			fmt.Fprintf(&sb, "    %s = %d\n", mem.Name, mem.Value)
		}
	}
	for _, s := range m.Structs {
		fmt.Fprintf(&sb, "  struct %s\n", s.Name)
		for _, f := range s.Fields {
			fmt.Fprintf(&sb, "    %s %s\n", f.Type, f.Name)
		}
	}
	for _, d := range m.Delegates {
		fmt.Fprintf(&sb, "  delegate %s %s(%s)\n", d.Return, d.Name, paramList(d.Params))
	}
	for _, c := range m.Classes {
		sb.WriteString("  ")
		if c.Static {
			sb.WriteString("static ")
		}
		fmt.Fprintf(&sb, "class %s\n", c.Name)
		for _, f := range c.Functions {
			fmt.Fprintf(&sb, "    %s\n", functionLine(&f))
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func functionLine(f *export.Function) string {
	var sb strings.Builder
	switch {
	case f.Ctor:
		sb.WriteString("ctor ")
	case f.Static:
		sb.WriteString("static ")
	}
	if !f.Ctor {
		sb.WriteString(f.Return + " ")
	}
	fmt.Fprintf(&sb, "%s(%s)", f.Name, paramList(f.Params))
	if f.Const {
		sb.WriteString(" const")
	}
	fmt.Fprintf(&sb, " -> %s", f.CName)
	if f.Property != "" {
		fmt.Fprintf(&sb, " [property %s]", f.Property)
	}
	return sb.String()
}

func paramList(params []export.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.Type+" "+p.Name)
	}
	return strings.Join(parts, ", ")
}

// FormatModuleJSON выводит сводку модуля в JSON.
func FormatModuleJSON(w io.Writer, m *export.Module) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}
