package pathresolution

import (
	"context"
	"fmt"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/alias"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/diagnostic"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/resolution"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Config carries the project-wide settings of a resolver instance.
type Config struct {
	BaseDirectory string                   // absolute root used when a request names none
	ModuleOptions resolution.ModuleOptions // forwarded to the module-resolution probe
	Concurrency   int                      // upper bound of ResolveAll workers, <1 means 1
}

/*
service matches specifiers against compiled mappings. Everything it holds is
set at construction and only read afterwards, so a single instance can serve
concurrent Resolve calls without locking.
*/
type service struct {
	mappings       []alias.Mapping
	config         Config
	moduleResolver ports.ModuleResolver
	fileChecker    ports.FileChecker
	diagnostics    ports.DiagnosticSink
}

// NewService creates a new path resolution service over compiled mappings.
// It panics if moduleResolver, fileChecker or diagnostics are nil.
func NewService(
	mappings []alias.Mapping,
	cfg Config,
	mr ports.ModuleResolver,
	fc ports.FileChecker,
	ds ports.DiagnosticSink,
) ports.PathResolutionService {
	if mr == nil {
		panic("moduleResolver cannot be nil")
	}
	if fc == nil {
		panic("fileChecker cannot be nil")
	}
	if ds == nil {
		panic("diagnostics cannot be nil")
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}

	owned := make([]alias.Mapping, len(mappings))
	for i, m := range mappings {
		owned[i] = m.Clone()
	}

	return &service{
		mappings:       owned,
		config:         cfg,
		moduleResolver: mr,
		fileChecker:    fc,
		diagnostics:    ds,
	}
}

// Resolve selects the best mapping for req.Specifier and probes its targets
// in declared order. It returns resolution.NoMatch() when nothing applies.
func (s *service) Resolve(req resolution.Request) resolution.Result {
	if req.Specifier == "" || req.ImporterPath == "" || len(s.mappings) == 0 {
		return resolution.NoMatch()
	}
	if isPathSpecifier(req.Specifier) {
		return resolution.NoMatch()
	}

	mapping, ok := s.selectMapping(req.Specifier)
	if !ok {
		return resolution.NoMatch()
	}

	baseDirectory := req.BaseDirectory
	if baseDirectory == "" {
		baseDirectory = s.config.BaseDirectory
	}

	capture := mapping.Alias.Capture(req.Specifier)
	for _, target := range mapping.Targets {
		candidate := absoluteCandidate(baseDirectory, mapping.Expand(target, capture))
		resolved, found := s.probe(candidate, req.ImporterPath)
		if !found {
			s.diagnostics.Emit(diagnostic.LevelDebug, fmt.Sprintf("pattern '%s': candidate %s not found", mapping.Alias.Raw, candidate))
			continue
		}
		s.diagnostics.Emit(diagnostic.LevelInfo, fmt.Sprintf("%s -> %s", req.Specifier, resolved))
		return resolution.Result{
			Matched:   true,
			Path:      resolved,
			Alias:     mapping.Alias.Raw,
			Candidate: candidate,
		}
	}

	s.diagnostics.Emit(diagnostic.LevelDebug, fmt.Sprintf("pattern '%s' matched '%s' but no target resolved", mapping.Alias.Raw, req.Specifier))
	return resolution.NoMatch()
}

// ResolveAll resolves requests concurrently, bounded by Config.Concurrency.
// Every request is resolved exactly as Resolve would; results keep the order
// of requests.
func (s *service) ResolveAll(ctx context.Context, requests []resolution.Request) ([]resolution.Result, error) {
	results := make([]resolution.Result, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Concurrency)
	for i, req := range requests {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.Resolve(req)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolving %d specifiers: %w", len(requests), err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("resolving %d specifiers: %w", len(requests), err)
	}
	return results, nil
}
