package tsconfig

import (
	"fmt"
	"path/filepath"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/project"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/ports"
	"github.com/spf13/afero"
)

// FileName is the configuration file looked up when none is given.
const FileName = "tsconfig.json"

// FileFinder locates the nearest tsconfig.json by walking up from a directory.
type FileFinder struct {
	fs afero.Fs
}

// NewFileFinder creates a new FileFinder.
func NewFileFinder(fs afero.Fs) ports.ConfigFileFinder {
	if fs == nil {
		panic("fs cannot be nil")
	}
	return &FileFinder{fs: fs}
}

// Find implements the ports.ConfigFileFinder interface.
func (f *FileFinder) Find(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", startDir, err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if isFile(f.fs, candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s in %s or any parent directory", project.ErrConfigNotFound, FileName, startDir)
		}
		dir = parent
	}
}

func isFile(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && !info.IsDir()
}
