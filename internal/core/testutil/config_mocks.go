package testutil

import (
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/alias"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/project"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/ports"
)

// MockProjectConfigLoader is a mock implementation of ports.ProjectConfigLoader.
type MockProjectConfigLoader struct {
	LoadFunc  func(configPath string) (project.Config, error)
	LoadCalls []string
}

var _ ports.ProjectConfigLoader = (*MockProjectConfigLoader)(nil)

func (m *MockProjectConfigLoader) Load(configPath string) (project.Config, error) {
	m.LoadCalls = append(m.LoadCalls, configPath)
	if m.LoadFunc != nil {
		return m.LoadFunc(configPath)
	}
	return project.Config{}, nil
}

// MockMappingCompiler is a mock implementation of ports.MappingCompiler.
type MockMappingCompiler struct {
	CompileFunc  func(table alias.PathTable) alias.CompiledTable
	CompileCalls []alias.PathTable
}

var _ ports.MappingCompiler = (*MockMappingCompiler)(nil)

func (m *MockMappingCompiler) Compile(table alias.PathTable) alias.CompiledTable {
	m.CompileCalls = append(m.CompileCalls, table)
	if m.CompileFunc != nil {
		return m.CompileFunc(table)
	}
	return alias.CompiledTable{}
}
