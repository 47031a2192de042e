package moduleresolution

import (
	"encoding/json"
	"path/filepath"
	"slices"
	"strings"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/resolution"
	"github.com/spf13/afero"
)

// sourceExtensions lists the TypeScript sources a JavaScript extension in an
// import may stand for.
var sourceExtensions = map[string][]string{
	".js":  {".ts", ".tsx"},
	".jsx": {".tsx"},
	".mjs": {".mts"},
	".cjs": {".cts"},
}

type packageManifest struct {
	Types   string `json:"types"`
	Typings string `json:"typings"`
	Main    string `json:"main"`
}

// loadAsFile tries, in order: TypeScript sources for a JavaScript extension,
// the path itself when its extension is accepted, then path + suffix + extension
// for every configured module suffix and extension.
func (r *NodeResolver) loadAsFile(path string, opts resolution.ModuleOptions) (string, bool) {
	ext := filepath.Ext(path)
	if replacements, ok := sourceExtensions[ext]; ok {
		stem := strings.TrimSuffix(path, ext)
		for _, replacement := range replacements {
			if found, ok := r.tryWithSuffixes(stem, replacement, opts); ok {
				return found, true
			}
		}
	}

	if r.acceptsExtension(path, opts) && r.isFile(path) {
		return path, true
	}

	for _, extension := range opts.Extensions {
		if found, ok := r.tryWithSuffixes(path, extension, opts); ok {
			return found, true
		}
	}
	return "", false
}

// maxEntryDepth bounds package.json entries that point at further directories.
const maxEntryDepth = 8

// loadAsDirectory resolves a directory through its package.json entry points
// ("types", "typings", "main") and then its index file.
func (r *NodeResolver) loadAsDirectory(dir string, opts resolution.ModuleOptions, depth int) (string, bool) {
	if depth > maxEntryDepth || !r.isDir(dir) {
		return "", false
	}

	if manifest, ok := r.readManifest(filepath.Join(dir, "package.json")); ok {
		for _, entry := range []string{manifest.Types, manifest.Typings, manifest.Main} {
			if entry == "" {
				continue
			}
			entryPath := filepath.Join(dir, entry)
			if found, ok := r.loadAsFile(entryPath, opts); ok {
				return found, true
			}
			if r.isFile(entryPath) {
				return entryPath, true
			}
			if entryPath != dir {
				if found, ok := r.loadAsDirectory(entryPath, opts, depth+1); ok {
					return found, true
				}
			}
		}
	}

	return r.loadAsFile(filepath.Join(dir, "index"), opts)
}

func (r *NodeResolver) tryWithSuffixes(stem, extension string, opts resolution.ModuleOptions) (string, bool) {
	suffixes := opts.ModuleSuffixes
	if len(suffixes) == 0 {
		suffixes = []string{""}
	}
	for _, suffix := range suffixes {
		candidate := stem + suffix + extension
		if r.isFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func (r *NodeResolver) acceptsExtension(path string, opts resolution.ModuleOptions) bool {
	if strings.HasSuffix(path, ".d.ts") {
		return slices.Contains(opts.Extensions, ".d.ts")
	}
	ext := filepath.Ext(path)
	if ext == ".json" {
		return opts.ResolveJSONModule
	}
	return ext != "" && slices.Contains(opts.Extensions, ext)
}

func (r *NodeResolver) readManifest(path string) (packageManifest, bool) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return packageManifest{}, false
	}
	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return packageManifest{}, false
	}
	return manifest, true
}

func (r *NodeResolver) isFile(path string) bool {
	info, err := r.fs.Stat(path)
	return err == nil && !info.IsDir()
}

func (r *NodeResolver) isDir(path string) bool {
	ok, err := afero.DirExists(r.fs, path)
	return err == nil && ok
}
