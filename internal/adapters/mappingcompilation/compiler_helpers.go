package mappingcompilation

import (
	"fmt"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/alias"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/diagnostic"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/pattern"
)

// Reasons recorded for discarded patterns and targets.
const (
	ReasonTooManyWildcards = "can have at most one '*' character"
	ReasonInvalidWildcard  = "has a '*' in an invalid position"
	ReasonTypeDeclaration  = "names type declarations"
	ReasonNoUsableTargets  = "has no usable targets"
)

// compileEntry applies the validation rules to one path table entry, in order:
// wildcard count, wildcard position, target filtering, empty target list.
// It returns false when the entry is dropped.
func (c *Compiler) compileEntry(entry alias.PathEntry) (alias.Mapping, []alias.Discarded, bool) {
	analyzed := c.analyzer.Analyze(entry.Pattern)

	if analyzed.WildcardCount > 1 {
		c.warn(fmt.Sprintf("path pattern '%s' can have at most one '*' character.", entry.Pattern))
		return alias.Mapping{}, []alias.Discarded{{Pattern: entry.Pattern, Reason: ReasonTooManyWildcards}}, false
	}
	if !analyzed.ValidPosition {
		c.warn(fmt.Sprintf("path pattern '%s' is not valid.", entry.Pattern))
		return alias.Mapping{}, []alias.Discarded{{Pattern: entry.Pattern, Reason: ReasonInvalidWildcard}}, false
	}

	targets, discarded := c.filterTargets(entry)
	if len(targets) == 0 {
		c.warn(fmt.Sprintf("path pattern '%s' has no usable targets and is ignored.", entry.Pattern))
		discarded = append(discarded, alias.Discarded{Pattern: entry.Pattern, Reason: ReasonNoUsableTargets})
		return alias.Mapping{}, discarded, false
	}

	return alias.Mapping{Alias: buildPattern(analyzed), Targets: targets}, discarded, true
}

// filterTargets drops type-declaration targets and targets with a malformed
// wildcard. Order and duplicates of the remaining targets are preserved.
func (c *Compiler) filterTargets(entry alias.PathEntry) ([]string, []alias.Discarded) {
	targets := make([]string, 0, len(entry.Targets))
	var discarded []alias.Discarded

	for _, target := range entry.Targets {
		analyzed := c.analyzer.Analyze(target)
		switch {
		case analyzed.TypeDeclaration:
			c.warn(fmt.Sprintf("type defined %s is ignored.", target))
			discarded = append(discarded, alias.Discarded{Pattern: entry.Pattern, Target: target, Reason: ReasonTypeDeclaration})
		case analyzed.WildcardCount > 1:
			c.warn(fmt.Sprintf("target pattern '%s' can have at most one '*' character.", target))
			discarded = append(discarded, alias.Discarded{Pattern: entry.Pattern, Target: target, Reason: ReasonTooManyWildcards})
		case !analyzed.ValidPosition:
			c.warn(fmt.Sprintf("target pattern '%s' is not valid.", target))
			discarded = append(discarded, alias.Discarded{Pattern: entry.Pattern, Target: target, Reason: ReasonInvalidWildcard})
		default:
			targets = append(targets, target)
		}
	}
	return targets, discarded
}

// buildPattern derives the immutable alias pattern from an analyzed key.
// The bare wildcard gets an empty prefix and suffix.
func buildPattern(analyzed pattern.AnalyzedPattern) alias.Pattern {
	if !analyzed.HasWildcard() {
		return alias.Pattern{Raw: analyzed.Original}
	}
	return alias.Pattern{
		Raw:         analyzed.Original,
		HasWildcard: true,
		Prefix:      analyzed.Prefix,
		Suffix:      analyzed.Suffix,
	}
}

func (c *Compiler) warn(message string) {
	c.diagnostics.Emit(diagnostic.LevelWarn, message)
}
