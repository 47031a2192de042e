package patternanalysis

import (
	"path/filepath"
	"strings"
)

const (
	typeDeclarationSuffix  = ".d.ts"
	typeDeclarationSegment = "@types"
)

/*
isAcceptedWildcardPosition checks where the wildcard sits relative to path
separators. Accepted positions are:
 1. the bare wildcard "*",
 2. a trailing "/*" segment (e.g. "@app/*"),
 3. an internal "/*" + "/" segment (e.g. "@app/*" + "/index").

Anything else, such as "@app*" or "*.css", is rejected.
*/
func (a *BasicAnalyzer) isAcceptedWildcardPosition(patternStr string) bool {
	normalized := filepath.ToSlash(patternStr)
	return normalized == "*" ||
		strings.HasSuffix(normalized, "/*") ||
		strings.Contains(normalized, "/*/")
}

// isTypeDeclarationPath reports whether the path names type declarations only:
// a ".d.ts" file or anything under an "@types" segment.
func (a *BasicAnalyzer) isTypeDeclarationPath(patternStr string) bool {
	normalized := filepath.ToSlash(patternStr)
	if strings.HasSuffix(normalized, typeDeclarationSuffix) {
		return true
	}
	for _, segment := range strings.Split(normalized, "/") {
		if segment == typeDeclarationSegment {
			return true
		}
	}
	return false
}
