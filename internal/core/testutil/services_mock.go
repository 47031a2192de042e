package testutil

import (
	"context"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/alias"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/project"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/resolution"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/ports"
)

// MockPathResolutionService is a mock implementation of ports.PathResolutionService.
type MockPathResolutionService struct {
	ResolveFunc func(req resolution.Request) resolution.Result
}

func (m *MockPathResolutionService) Resolve(req resolution.Request) resolution.Result {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(req)
	}
	return resolution.NoMatch()
}

// ResolveAll resolves sequentially through Resolve.
func (m *MockPathResolutionService) ResolveAll(ctx context.Context, requests []resolution.Request) ([]resolution.Result, error) {
	results := make([]resolution.Result, 0, len(requests))
	for _, req := range requests {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results = append(results, m.Resolve(req))
	}
	return results, nil
}

// MockMappingInspectionService is a mock implementation of ports.MappingInspectionService.
type MockMappingInspectionService struct {
	ProjectValue   project.Config
	MappingsValue  []alias.Mapping
	DiscardedValue []alias.Discarded
}

func (m *MockMappingInspectionService) Project() project.Config      { return m.ProjectValue }
func (m *MockMappingInspectionService) Mappings() []alias.Mapping    { return m.MappingsValue }
func (m *MockMappingInspectionService) Discarded() []alias.Discarded { return m.DiscardedValue }

var (
	_ ports.PathResolutionService    = (*MockPathResolutionService)(nil)
	_ ports.MappingInspectionService = (*MockMappingInspectionService)(nil)
)
