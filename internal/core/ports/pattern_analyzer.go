package ports

import "github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/pattern"

/*
PatternAnalyzer defines the contract for a service that analyzes an alias
pattern or target template string.
This is a driven port, representing a domain capability.
*/
type PatternAnalyzer interface {
	Analyze(patternStr string) pattern.AnalyzedPattern
}
