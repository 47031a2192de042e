package ports

import (
	"context"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/resolution"
)

// PathResolutionService defines the contract for resolving aliased module
// specifiers against compiled mappings.
type PathResolutionService interface {
	// Resolve returns the first candidate of the best matching mapping that
	// probes successfully, or resolution.NoMatch(). It never fails.
	Resolve(req resolution.Request) resolution.Result

	// ResolveAll resolves requests concurrently. Results are returned in the
	// order of requests; the only error is the context's.
	ResolveAll(ctx context.Context, requests []resolution.Request) ([]resolution.Result, error)
}
