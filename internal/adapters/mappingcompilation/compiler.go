package mappingcompilation

import (
	"fmt"
	"strings"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/alias"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/diagnostic"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/ports"
)

// Compiler turns a raw path table into validated, ordered mappings.
type Compiler struct {
	analyzer    ports.PatternAnalyzer
	diagnostics ports.DiagnosticSink
}

// NewCompiler creates a new Compiler.
// It panics if analyzer or diagnostics is nil.
func NewCompiler(analyzer ports.PatternAnalyzer, diagnostics ports.DiagnosticSink) ports.MappingCompiler {
	if analyzer == nil {
		panic("analyzer cannot be nil")
	}
	if diagnostics == nil {
		panic("diagnostics cannot be nil")
	}
	return &Compiler{analyzer: analyzer, diagnostics: diagnostics}
}

// Compile validates every entry of table, in table order. Dropped patterns and
// targets are reported as warnings and in the Discarded list; they never
// reach the returned mappings.
func (c *Compiler) Compile(table alias.PathTable) alias.CompiledTable {
	compiled := alias.CompiledTable{Mappings: make([]alias.Mapping, 0, len(table))}

	if len(table) == 0 {
		c.diagnostics.Emit(diagnostic.LevelWarn, "typescript compilerOptions.paths are empty.")
		return compiled
	}

	for _, entry := range table {
		mapping, discarded, ok := c.compileEntry(entry)
		compiled.Discarded = append(compiled.Discarded, discarded...)
		if ok {
			compiled.Mappings = append(compiled.Mappings, mapping)
		}
	}

	for _, mapping := range compiled.Mappings {
		c.diagnostics.Emit(diagnostic.LevelDebug, fmt.Sprintf("pattern: '%s' targets: '%s'",
			mapping.Alias.Raw, strings.Join(mapping.Targets, ",")))
	}
	return compiled
}
