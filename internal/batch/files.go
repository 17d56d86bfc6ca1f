package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"devtoolbox/internal/model"
	"devtoolbox/internal/tool"
)

// fileReadConcurrency caps parallel file reads at the input boundary
const fileReadConcurrency = 4

// FileItem is one file-backed input. A non-empty Reject means the file
// failed boundary validation and must become an invalid item, never an
// aborted batch.
type FileItem struct {
	Input  model.GenericInput
	Reject string
}

// LoadFileInputs reads the given paths concurrently and validates each
// against the tool's accepted extensions and size ceiling. Results keep
// the order of paths.
func LoadFileInputs(ctx context.Context, ft tool.FileTool, paths []string, settings model.Settings) ([]FileItem, error) {
	items := make([]FileItem, len(paths))

	maxBytes := ft.MaxFileSizeMB() * 1024 * 1024
	if settings.MaxFileSizeMB > 0 && settings.MaxFileSizeMB*1024*1024 < maxBytes {
		maxBytes = settings.MaxFileSizeMB * 1024 * 1024
	}

	accepted := make(map[string]bool)
	for _, ext := range ft.Extensions() {
		accepted[ext] = true
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fileReadConcurrency)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			name := filepath.Base(path)
			items[i] = FileItem{Input: model.GenericInput{"filename": name, "path": path}}

			ext := strings.ToLower(filepath.Ext(name))
			if !accepted[ext] {
				items[i].Reject = fmt.Sprintf("unsupported file extension: %s", ext)
				return nil
			}

			info, err := os.Stat(path)
			if err != nil {
				items[i].Reject = fmt.Sprintf("cannot stat file: %v", err)
				return nil
			}
			if info.Size() > maxBytes {
				items[i].Reject = fmt.Sprintf("file exceeds %dMB size limit", maxBytes/(1024*1024))
				return nil
			}

			data, err := os.ReadFile(path)
			if err != nil {
				items[i].Reject = fmt.Sprintf("cannot read file: %v", err)
				return nil
			}

			items[i].Input["data"] = data
			items[i].Input["size"] = info.Size()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
