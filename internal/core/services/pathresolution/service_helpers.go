package pathresolution

import (
	"path/filepath"
	"strings"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/alias"
)

const dependencyDirectory = "node_modules"

/*
selectMapping scans the mappings in stored order and picks the winner:
  - an exact (wildcard-free) match wins immediately, wherever it appears;
  - otherwise the wildcard match with the strictly longest prefix wins, so the
    first one in table order wins a tie.

Wildcard matches never stop the scan, since a later exact match or a longer
prefix still overrides them.
*/
func (s *service) selectMapping(specifier string) (alias.Mapping, bool) {
	best := -1
	for i, mapping := range s.mappings {
		if !mapping.Alias.Matches(specifier) {
			continue
		}
		if !mapping.Alias.HasWildcard {
			return mapping, true
		}
		if best == -1 || len(mapping.Alias.Prefix) > len(s.mappings[best].Alias.Prefix) {
			best = i
		}
	}
	if best == -1 {
		return alias.Mapping{}, false
	}
	return s.mappings[best], true
}

/*
probe validates one absolute candidate. The steps run strictly in this order:
 1. a candidate inside a node_modules directory is trusted as-is;
 2. the module-resolution probe, authoritative when it answers;
 3. plain existence, for assets such as styles or fonts.
*/
func (s *service) probe(candidate, importerPath string) (string, bool) {
	if inDependencyDirectory(candidate) {
		return candidate, true
	}
	if resolved, ok := s.moduleResolver.TryResolveModule(candidate, importerPath, s.config.ModuleOptions); ok {
		return resolved, true
	}
	if s.fileChecker.Exists(candidate) {
		return candidate, true
	}
	return "", false
}

// isPathSpecifier reports whether specifier names a file by path rather than a
// module. Path aliases never apply to relative or absolute specifiers.
func isPathSpecifier(specifier string) bool {
	if specifier == "." || specifier == ".." ||
		strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../") {
		return true
	}
	return strings.HasPrefix(specifier, "/") || filepath.IsAbs(specifier)
}

// absoluteCandidate resolves candidate against baseDirectory.
func absoluteCandidate(baseDirectory, candidate string) string {
	if filepath.IsAbs(candidate) {
		return filepath.Clean(candidate)
	}
	return filepath.Join(baseDirectory, candidate)
}

// inDependencyDirectory reports whether path has a node_modules segment.
func inDependencyDirectory(path string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if segment == dependencyDirectory {
			return true
		}
	}
	return false
}
