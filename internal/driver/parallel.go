package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"bridgec/internal/buildpipeline"
	"bridgec/internal/diag"
	"bridgec/internal/observ"
	"bridgec/internal/source"
)

// Ext is the interface file extension.
const Ext = ".bdl"

// ListInterfaceFiles возвращает отсортированный список всех *.bdl файлов в директории
func ListInterfaceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, Ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// CompileFiles компилирует файлы параллельно. Каждый файл — отдельный модуль
// со своим Builder; общий только FileSet, заполненный до старта горутин.
// Результаты идут в порядке files.
func CompileFiles(ctx context.Context, baseDir string, files []string, opts Options) (*source.FileSet, []*Result, error) {
	fileSet := source.NewFileSetWithBase(baseDir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = id
		buildpipeline.Emit(opts.Sink, buildpipeline.Event{File: fileSet.Get(id).Path, Stage: buildpipeline.StageLoad, Status: buildpipeline.StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]*Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if loadErr, failed := loadErrors[path]; failed {
				r := &Result{Path: path, FileSet: fileSet, Bag: diag.NewBag(opts.maxDiagnostics()), Timer: observ.NewTimer()}
				r.fail(diag.Errorf(diag.IOLoadFileError, source.CodeRange{}, "failed to load file: %v", loadErr))
				emit(opts, r, buildpipeline.StageLoad, buildpipeline.StatusError, 0, r.Err)
				results[i] = r
				return nil
			}
			r, err := compileFile(gctx, fileSet, fileSet.Get(fileIDs[path]), opts)
			results[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// CompileDir compiles every interface file under dir.
func CompileDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []*Result, error) {
	files, err := ListInterfaceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	return CompileFiles(ctx, dir, files, opts)
}

// MergeBags собирает диагностики всех результатов в один отсортированный Bag.
func MergeBags(results []*Result, maxDiagnostics int) *diag.Bag {
	total := 0
	for _, r := range results {
		if r != nil {
			total += r.Bag.Len()
		}
	}
	bag := diag.NewBag(max(total, maxDiagnostics, 1))
	for _, r := range results {
		if r != nil {
			bag.Merge(r.Bag)
		}
	}
	bag.Sort()
	return bag
}
