package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var languageSeeds = []string{
	"module m;",
	"module m;\nset version \"1.2.3\";\nset cpp_casestyle \"camel\";",
	"module m;\nenum E { A, B = -3, C, }",
	"module m;\nstruct S { int array a; string b; }",
	"module m;\nclass C { ctor C(); func void F(int x) const; static func int G(); get set bool P; }",
	"module m;\nclass U static { static func void Run(); }",
	"module m;\ndelegate int array D(string s);",
	"module m;\n// doc\n// @param x value\n[[abstract_impl]]\nclass C;",
	"module m;\nimport \"other.bdl\";",
	"module m;\nstruct S { S self; }",
	"module m;\nclass C { func int array array F(); }",
	"module m;\nset \"unterminated",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.bdl файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".bdl" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clamp(src, maxSeedBytes))
		return nil
	})
}

func clamp(src []byte, limit int) []byte {
	if len(src) <= limit {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:limit]...)
}
