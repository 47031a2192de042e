/*
Package project defines the loaded alias configuration of a project, as
produced by a configuration loader and consumed by the mapping compiler and
the resolver.
*/
package project

import (
	"errors"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/alias"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/resolution"
)

// Configuration errors. They abort construction; they are never logged and
// swallowed, since zero mappings would silently hide a misconfiguration.
var (
	ErrConfigNotFound         = errors.New("config is not found")
	ErrCompilerOptionsMissing = errors.New("'compilerOptions' is missing")
	ErrBaseDirectoryMissing   = errors.New("option 'compilerOptions.paths' cannot be used without specifying 'compilerOptions.baseUrl'")
	ErrExtendsCycle           = errors.New("circular 'extends' chain")
)

// Config is the alias configuration of one project.
type Config struct {
	ConfigPath    string // absolute path of the file the table was read from
	BaseDirectory string // absolute root relative targets are resolved against
	Paths         alias.PathTable
	ModuleOptions resolution.ModuleOptions
}
