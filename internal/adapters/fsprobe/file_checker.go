package fsprobe

import (
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/ports"
	"github.com/spf13/afero"
)

// FileChecker implements the ports.FileChecker interface on an afero.Fs.
type FileChecker struct {
	fs afero.Fs
}

// NewFileChecker creates a new FileChecker. Use afero.NewOsFs() for the real
// filesystem.
func NewFileChecker(fs afero.Fs) ports.FileChecker {
	if fs == nil {
		panic("fs cannot be nil")
	}
	return &FileChecker{fs: fs}
}

// Exists reports whether a file or directory exists at path. Stat errors other
// than "not exist" count as absent.
func (c *FileChecker) Exists(path string) bool {
	ok, err := afero.Exists(c.fs, path)
	return err == nil && ok
}
