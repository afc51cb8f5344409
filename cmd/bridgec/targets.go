package main

import (
	"fmt"
	"os"
	"path/filepath"

	"bridgec/internal/driver"
	"bridgec/internal/project"
	"bridgec/internal/sema"
)

// targets — набор файлов для check/dump и общие настройки компиляции.
type targets struct {
	args     []string
	baseDir  string
	files    []string
	watch    []string
	settings sema.Settings
	manifest *project.Manifest
}

// resolveTargets разбирает аргумент команды: файл, каталог или (без аргумента)
// проект, найденный вверх от текущего каталога по bridgec.toml.
func resolveTargets(args []string) (*targets, error) {
	if len(args) == 0 {
		m, ok, err := project.Load(".")
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("no input given and no %s found", project.ManifestName)
		}
		files, err := m.Inputs()
		if err != nil {
			return nil, err
		}
		return &targets{args: args, baseDir: m.Root, files: files, watch: []string{m.Root}, settings: m.Settings(""), manifest: m}, nil
	}

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	t := &targets{args: args, watch: []string{path}}
	if info.IsDir() {
		t.baseDir = path
		if t.files, err = driver.ListInterfaceFiles(path); err != nil {
			return nil, err
		}
	} else {
		t.baseDir = filepath.Dir(path)
		t.files = []string{path}
	}

	// настройки проекта применяются и к явно указанным файлам внутри него
	m, ok, err := project.Load(t.baseDir)
	if err != nil {
		return nil, err
	}
	if ok {
		t.manifest = m
		t.settings = m.Settings("")
	}
	return t, nil
}
