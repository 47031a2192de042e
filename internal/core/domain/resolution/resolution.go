/*
Package resolution defines the per-call entities of alias resolution: the
request a host issues, the result handed back, and the options forwarded to
the module-resolution probe.
*/
package resolution

import "fmt"

// Request is one module specifier to resolve. It is never persisted.
type Request struct {
	Specifier     string // the string the importing module wrote
	ImporterPath  string // absolute path of the file containing the import
	BaseDirectory string // root for relative targets; empty means the configured one
}

/*
Result is either an absolute path (Matched is true) or "no match". No match is
the expected, common outcome and tells the host to fall back to its own
default resolution.
*/
type Result struct {
	Matched   bool
	Path      string // resolved absolute path
	Alias     string // raw alias pattern of the mapping that produced Path
	Candidate string // expanded target the path was probed from
}

// NoMatch is the abstaining result.
func NoMatch() Result {
	return Result{}
}

// Description renders the message a bundler hook attaches when it restarts
// resolution with the aliased path.
func (r Result) Description(specifier string) string {
	if !r.Matched {
		return ""
	}
	return fmt.Sprintf("aliased with mapping '%s': '%s' to '%s'", specifier, r.Alias, r.Path)
}

// ModuleOptions are the active compiler options forwarded to the
// module-resolution probe.
type ModuleOptions struct {
	Extensions        []string // tried in order when a candidate has no usable extension
	ModuleSuffixes    []string // tried before each extension, "" means none
	ResolveJSONModule bool
}

var (
	typeScriptExtensions = []string{".ts", ".tsx", ".d.ts"}
	javaScriptExtensions = []string{".js", ".jsx"}
)

// NewModuleOptions derives probe options from compiler flags.
func NewModuleOptions(allowJS, resolveJSONModule bool, moduleSuffixes []string) ModuleOptions {
	extensions := append([]string{}, typeScriptExtensions...)
	if allowJS {
		extensions = append(extensions, javaScriptExtensions...)
	}
	suffixes := []string{""}
	if len(moduleSuffixes) > 0 {
		suffixes = append([]string{}, moduleSuffixes...)
	}
	return ModuleOptions{
		Extensions:        extensions,
		ModuleSuffixes:    suffixes,
		ResolveJSONModule: resolveJSONModule,
	}
}

// DefaultModuleOptions are the options of a configuration that sets no
// module-resolution flags.
func DefaultModuleOptions() ModuleOptions {
	return NewModuleOptions(false, false, nil)
}
