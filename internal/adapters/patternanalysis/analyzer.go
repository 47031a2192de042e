package patternanalysis

import (
	"strings"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/alias"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/pattern"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/ports"
)

// BasicAnalyzer provides a simple implementation of pattern analysis.
type BasicAnalyzer struct{}

// NewBasicAnalyzer creates a new BasicAnalyzer.
func NewBasicAnalyzer() ports.PatternAnalyzer {
	return &BasicAnalyzer{}
}

// Analyze breaks down an alias pattern or target template into its components.
func (a *BasicAnalyzer) Analyze(patternStr string) pattern.AnalyzedPattern {
	wildcardIndex := strings.Index(patternStr, alias.Wildcard)
	if wildcardIndex == -1 {
		return pattern.AnalyzedPattern{
			Original:        patternStr,
			WildcardCount:   0,
			WildcardIndex:   -1,
			ValidPosition:   true, // Nothing to misplace.
			TypeDeclaration: a.isTypeDeclarationPath(patternStr),
		}
	}

	wildcardCount := strings.Count(patternStr, alias.Wildcard)

	return pattern.AnalyzedPattern{
		Original:        patternStr,
		WildcardCount:   wildcardCount,
		WildcardIndex:   wildcardIndex,
		Prefix:          patternStr[:wildcardIndex],
		Suffix:          patternStr[wildcardIndex+len(alias.Wildcard):],
		ValidPosition:   wildcardCount == 1 && a.isAcceptedWildcardPosition(patternStr),
		TypeDeclaration: a.isTypeDeclarationPath(patternStr),
	}
}
