package pattern

// AnalyzedPattern holds the results of analyzing an alias pattern or a
// target template string.
type AnalyzedPattern struct {
	Original        string
	WildcardCount   int
	WildcardIndex   int    // byte index of the wildcard, -1 without one
	Prefix          string // text before the first wildcard
	Suffix          string // text after the first wildcard
	ValidPosition   bool   // the wildcard (if any) sits in an accepted position
	TypeDeclaration bool   // names a .d.ts file or sits under an @types segment
}

// HasWildcard reports whether the pattern contains a wildcard at all.
func (p AnalyzedPattern) HasWildcard() bool {
	return p.WildcardCount > 0
}
