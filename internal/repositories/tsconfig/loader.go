/*
Package tsconfig reads the alias configuration out of tsconfig.json files.

Files may contain comments and trailing commas. The "extends" chain is
followed; options of the extending file override those of its bases, and
"baseUrl" is relative to the file that declares it.
*/
package tsconfig

import (
	"fmt"
	"path/filepath"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/project"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/resolution"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/ports"
	"github.com/spf13/afero"
)

// Loader implements the ports.ProjectConfigLoader interface for tsconfig files.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a new Loader reading from fs.
func NewLoader(fs afero.Fs) ports.ProjectConfigLoader {
	if fs == nil {
		panic("fs cannot be nil")
	}
	return &Loader{fs: fs}
}

// Load reads configPath and its bases. A directory stands for the
// tsconfig.json inside it. A missing file, an extends cycle, a missing
// compilerOptions section or a missing baseUrl is an error.
func (l *Loader) Load(configPath string) (project.Config, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return project.Config{}, fmt.Errorf("failed to resolve %s: %w", configPath, err)
	}
	if info, err := l.fs.Stat(absPath); err == nil && info.IsDir() {
		absPath = filepath.Join(absPath, FileName)
	}

	opts, err := l.loadChain(absPath, map[string]bool{})
	if err != nil {
		return project.Config{}, err
	}
	if !opts.declared {
		return project.Config{}, fmt.Errorf("%s: %w", absPath, project.ErrCompilerOptionsMissing)
	}
	if deref(opts.baseDirectory) == "" {
		return project.Config{}, fmt.Errorf("%s: %w", absPath, project.ErrBaseDirectoryMissing)
	}

	return project.Config{
		ConfigPath:    absPath,
		BaseDirectory: *opts.baseDirectory,
		Paths:         deref(opts.paths).Clone(),
		ModuleOptions: resolution.NewModuleOptions(deref(opts.allowJS), deref(opts.resolveJSONModule), deref(opts.moduleSuffixes)),
	}, nil
}
