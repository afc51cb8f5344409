package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"bridgec/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new interface project",
	Long: `Initialize a new project by creating a manifest (bridgec.toml) and a
starter interface file. If [path|name] is omitted, initializes the current
directory. If a non-existing name is provided, a directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

const starterInterface = `module %s;

// A sample class.
class Greeter {
	ctor Greeter();
	func string Greet(string name) const;
}
`

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err = os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := projectName(filepath.Base(target))
	manifestPath := filepath.Join(target, project.ManifestName)
	if err := project.New(name).Write(manifestPath); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("project already initialized: %s exists", manifestPath)
		}
		return err
	}

	created := []string{manifestPath}
	entry := filepath.Join(target, name+".bdl")
	if _, err := os.Stat(entry); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(entry, []byte(fmt.Sprintf(starterInterface, name)), 0o644); err != nil { // #nosec G306 -- source file
			return err
		}
		created = append(created, entry)
	}

	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); !quiet {
		for _, p := range created {
			fmt.Fprintln(cmd.OutOrStdout(), "created", p)
		}
	}
	return nil
}

// projectName превращает имя каталога в идентификатор модуля.
func projectName(dir string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(dir) {
		switch {
		case r == '-' || r == ' ' || r == '.':
			b.WriteRune('_')
		case r < 128:
			b.WriteRune(r)
		}
	}
	name := b.String()
	if !project.IsValidModuleIdent(name) {
		name = "bridge_project"
	}
	return name
}
