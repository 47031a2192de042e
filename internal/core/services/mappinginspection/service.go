package mappinginspection

import (
	"fmt"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/alias"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/project"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/ports"
)

type service struct {
	project  project.Config
	compiled alias.CompiledTable
}

/*
NewService loads the configuration at configPath and compiles its path table.
It panics if loader or compiler is nil. Configuration errors are returned as
is; warnings about discarded entries go to the compiler's diagnostics.
*/
func NewService(loader ports.ProjectConfigLoader, compiler ports.MappingCompiler, configPath string) (ports.MappingInspectionService, error) {
	if loader == nil {
		panic("loader cannot be nil")
	}
	if compiler == nil {
		panic("compiler cannot be nil")
	}

	cfg, err := loader.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load project configuration: %w", err)
	}
	return &service{
		project:  cfg,
		compiled: compiler.Compile(cfg.Paths),
	}, nil
}

// Project returns the loaded configuration.
func (s *service) Project() project.Config {
	cfg := s.project
	cfg.Paths = cfg.Paths.Clone()
	return cfg
}

// Mappings returns a copy of the compiled mappings in table order.
func (s *service) Mappings() []alias.Mapping {
	out := make([]alias.Mapping, len(s.compiled.Mappings))
	for i, m := range s.compiled.Mappings {
		out[i] = m.Clone()
	}
	return out
}

// Discarded returns the patterns and targets the compiler dropped.
func (s *service) Discarded() []alias.Discarded {
	return append([]alias.Discarded{}, s.compiled.Discarded...)
}
