package moduleresolution

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/resolution"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/ports"
	"github.com/spf13/afero"
)

/*
NodeResolver is a TypeScript-flavoured node module resolver: given a candidate
path it tries the candidate with the configured extensions, TypeScript sources
behind JavaScript extensions, package.json entry points and index files.
Results are cached per candidate and options; the cache is safe for concurrent
use.
*/
type NodeResolver struct {
	fs    afero.Fs
	cache sync.Map // cacheKey -> cacheEntry
}

type cacheEntry struct {
	path string
	ok   bool
}

// NewNodeResolver creates a new NodeResolver reading from fs.
func NewNodeResolver(fs afero.Fs) ports.ModuleResolver {
	if fs == nil {
		panic("fs cannot be nil")
	}
	return &NodeResolver{fs: fs}
}

// TryResolveModule implements the ports.ModuleResolver interface. A relative
// candidate is taken relative to the importer's directory.
func (r *NodeResolver) TryResolveModule(candidatePath, importerPath string, opts resolution.ModuleOptions) (string, bool) {
	path := candidatePath
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(importerPath), path)
	}
	path = filepath.Clean(path)

	key := cacheKey(path, opts)
	if cached, ok := r.cache.Load(key); ok {
		entry := cached.(cacheEntry)
		return entry.path, entry.ok
	}

	resolved, ok := r.loadAsFile(path, opts)
	if !ok {
		resolved, ok = r.loadAsDirectory(path, opts, 0)
	}
	r.cache.Store(key, cacheEntry{path: resolved, ok: ok})
	return resolved, ok
}

func cacheKey(path string, opts resolution.ModuleOptions) string {
	var b strings.Builder
	b.WriteString(path)
	b.WriteByte(0)
	b.WriteString(strings.Join(opts.Extensions, ","))
	b.WriteByte(0)
	b.WriteString(strings.Join(opts.ModuleSuffixes, ","))
	if opts.ResolveJSONModule {
		b.WriteString("\x00json")
	}
	return b.String()
}
