package ports

import "github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/resolution"

/*
ModuleResolver is the module-resolution probe: it decides whether a candidate
path names an importable module (extensions, index files, package entry
points). Implementations own any cache they use and must be safe for
concurrent calls.
*/
type ModuleResolver interface {
	// TryResolveModule returns the resolved module file and true, or false
	// when the candidate is not a module.
	TryResolveModule(candidatePath, importerPath string, opts resolution.ModuleOptions) (string, bool)
}
