package testutil

import (
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/pattern"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/ports"
)

// MockPatternAnalyzer is a mock implementation of ports.PatternAnalyzer.
type MockPatternAnalyzer struct {
	// AnalyzeFunc allows you to set a custom function for the Analyze method.
	AnalyzeFunc func(patternStr string) pattern.AnalyzedPattern
	// AnalyzeCalls keeps track of the arguments passed to Analyze.
	AnalyzeCalls []string
}

// NewMockPatternAnalyzer creates a new MockPatternAnalyzer.
func NewMockPatternAnalyzer() *MockPatternAnalyzer {
	return &MockPatternAnalyzer{
		AnalyzeCalls: make([]string, 0),
	}
}

// Analyze implements the ports.PatternAnalyzer interface.
// It calls AnalyzeFunc if it's set, otherwise reports a valid pattern without wildcard.
func (m *MockPatternAnalyzer) Analyze(patternStr string) pattern.AnalyzedPattern {
	m.AnalyzeCalls = append(m.AnalyzeCalls, patternStr)
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(patternStr)
	}
	return pattern.AnalyzedPattern{Original: patternStr, WildcardIndex: -1, ValidPosition: true}
}

// Ensure MockPatternAnalyzer satisfies the PatternAnalyzer interface.
var _ ports.PatternAnalyzer = (*MockPatternAnalyzer)(nil)
