package tsconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/alias"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/project"
	"github.com/spf13/afero"
	"github.com/tailscale/hujson"
)

type rawConfig struct {
	Extends         json.RawMessage     `json:"extends"`
	CompilerOptions *rawCompilerOptions `json:"compilerOptions"`
}

// Pointer fields distinguish "absent" from the zero value so that a base
// file's setting survives when the extending file does not mention it.
type rawCompilerOptions struct {
	BaseURL           *string          `json:"baseUrl"`
	Paths             *alias.PathTable `json:"paths"`
	AllowJS           *bool            `json:"allowJs"`
	ResolveJSONModule *bool            `json:"resolveJsonModule"`
	ModuleSuffixes    *[]string        `json:"moduleSuffixes"`
}

// mergedOptions is the effective option set of a chain of files. A nil field
// was not set by any file so far.
type mergedOptions struct {
	declared          bool // some file in the chain has compilerOptions
	baseDirectory     *string
	paths             *alias.PathTable
	allowJS           *bool
	resolveJSONModule *bool
	moduleSuffixes    *[]string
}

// overlay returns lower with every option set in upper replaced.
func overlay(lower, upper mergedOptions) mergedOptions {
	lower.declared = lower.declared || upper.declared
	if upper.baseDirectory != nil {
		lower.baseDirectory = upper.baseDirectory
	}
	if upper.paths != nil {
		lower.paths = upper.paths
	}
	if upper.allowJS != nil {
		lower.allowJS = upper.allowJS
	}
	if upper.resolveJSONModule != nil {
		lower.resolveJSONModule = upper.resolveJSONModule
	}
	if upper.moduleSuffixes != nil {
		lower.moduleSuffixes = upper.moduleSuffixes
	}
	return lower
}

// loadChain loads path after its bases. visiting holds the files on the
// current extends path.
func (l *Loader) loadChain(path string, visiting map[string]bool) (mergedOptions, error) {
	if visiting[path] {
		return mergedOptions{}, fmt.Errorf("%w: %s is extended by itself", project.ErrExtendsCycle, path)
	}
	visiting[path] = true
	defer delete(visiting, path)

	raw, err := l.readConfig(path)
	if err != nil {
		return mergedOptions{}, err
	}

	bases, err := parseExtends(raw.Extends)
	if err != nil {
		return mergedOptions{}, fmt.Errorf("%s: %w", path, err)
	}

	var merged mergedOptions
	for _, base := range bases {
		basePath, err := l.resolveExtends(base, filepath.Dir(path))
		if err != nil {
			return mergedOptions{}, fmt.Errorf("%s: %w", path, err)
		}
		baseOpts, err := l.loadChain(basePath, visiting)
		if err != nil {
			return mergedOptions{}, err
		}
		merged = overlay(merged, baseOpts)
	}

	if raw.CompilerOptions != nil {
		merged = overlay(merged, ownOptions(raw.CompilerOptions, filepath.Dir(path)))
	}
	return merged, nil
}

func (l *Loader) readConfig(path string) (rawConfig, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return rawConfig{}, fmt.Errorf("%w: %s", project.ErrConfigNotFound, path)
		}
		return rawConfig{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	data, err = hujson.Standardize(data)
	if err != nil {
		return rawConfig{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var raw rawConfig
	if len(bytes.TrimSpace(data)) == 0 {
		return raw, nil
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return rawConfig{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return raw, nil
}

// parseExtends accepts a string or an array of strings.
func parseExtends(data json.RawMessage) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	var single string
	if err := json.Unmarshal(trimmed, &single); err == nil {
		return []string{single}, nil
	}
	var list []string
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, fmt.Errorf("'extends' must be a string or an array of strings")
	}
	return list, nil
}

// resolveExtends maps an extends entry to a file path. Relative and absolute
// entries are taken as files, with ".json" appended when missing. Anything
// else is a package looked up in node_modules from dir upwards.
func (l *Loader) resolveExtends(entry, dir string) (string, error) {
	if entry == "" {
		return "", fmt.Errorf("'extends' entry is empty")
	}

	if filepath.IsAbs(entry) || strings.HasPrefix(entry, "./") || strings.HasPrefix(entry, "../") ||
		entry == "." || entry == ".." {
		path := entry
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		if !strings.HasSuffix(path, ".json") {
			path += ".json"
		}
		return path, nil
	}

	for current := dir; ; {
		pkgPath := filepath.Join(current, "node_modules", filepath.FromSlash(entry))
		for _, candidate := range packageCandidates(pkgPath) {
			if isFile(l.fs, candidate) {
				return candidate, nil
			}
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return "", fmt.Errorf("%w: cannot find base config '%s'", project.ErrConfigNotFound, entry)
}

func packageCandidates(pkgPath string) []string {
	if strings.HasSuffix(pkgPath, ".json") {
		return []string{pkgPath}
	}
	return []string{pkgPath + ".json", filepath.Join(pkgPath, FileName)}
}

// ownOptions converts the options a single file declares. baseUrl becomes
// absolute against dir.
func ownOptions(raw *rawCompilerOptions, dir string) mergedOptions {
	opts := mergedOptions{
		declared:          true,
		paths:             raw.Paths,
		allowJS:           raw.AllowJS,
		resolveJSONModule: raw.ResolveJSONModule,
		moduleSuffixes:    raw.ModuleSuffixes,
	}
	if raw.BaseURL != nil {
		base := *raw.BaseURL
		if !filepath.IsAbs(base) {
			base = filepath.Join(dir, base)
		}
		base = filepath.Clean(base)
		opts.baseDirectory = &base
	}
	return opts
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
