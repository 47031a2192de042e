/*
Package alias defines the core domain entities for path aliases: the compiled
alias pattern, the mapping that owns an ordered list of target templates, and
the raw path table both are compiled from.
*/
package alias

import "strings"

// Wildcard is the single capture character allowed in patterns and targets.
const Wildcard = "*"

/*
Pattern is the compiled form of one path table key, e.g. "@app/*" or "@app".
A Pattern is immutable value data; it is computed once by the mapping compiler.
*/
type Pattern struct {
	Raw         string
	HasWildcard bool
	Prefix      string // text before the wildcard, empty without one
	Suffix      string // text after the wildcard, empty without one
}

// Matches reports whether specifier is matched by the pattern.
// Patterns without a wildcard only match their raw string exactly.
func (p Pattern) Matches(specifier string) bool {
	if !p.HasWildcard {
		return specifier == p.Raw
	}
	return len(specifier) >= len(p.Prefix)+len(p.Suffix) &&
		strings.HasPrefix(specifier, p.Prefix) &&
		strings.HasSuffix(specifier, p.Suffix)
}

// Capture returns the part of specifier matched by the wildcard.
// It must only be called with a specifier for which Matches returned true.
func (p Pattern) Capture(specifier string) string {
	if !p.HasWildcard {
		return ""
	}
	return specifier[len(p.Prefix) : len(specifier)-len(p.Suffix)]
}

/*
Mapping is one compiled path table entry: an alias pattern together with its
non-empty, ordered list of target templates. Target order is the fallback
priority used when probing candidates.
*/
type Mapping struct {
	Alias   Pattern
	Targets []string
}

// Expand builds the candidate for target, substituting capture for the
// target's wildcard when the alias has one.
func (m Mapping) Expand(target, capture string) string {
	if !m.Alias.HasWildcard {
		return target
	}
	return strings.Replace(target, Wildcard, capture, 1)
}

// Clone returns a deep copy so callers can never reach the compiled targets.
func (m Mapping) Clone() Mapping {
	targets := make([]string, len(m.Targets))
	copy(targets, m.Targets)
	return Mapping{Alias: m.Alias, Targets: targets}
}

// Discarded describes a pattern or target the compiler refused.
// Target is empty when the whole alias entry was dropped.
type Discarded struct {
	Pattern string
	Target  string
	Reason  string
}

// CompiledTable is the output of compiling a PathTable.
type CompiledTable struct {
	Mappings  []Mapping
	Discarded []Discarded
}
