package mappinginspection

import (
	"errors"
	"testing"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/alias"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/project"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/resolution"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProject = project.Config{
	ConfigPath:    "/project/tsconfig.json",
	BaseDirectory: "/project",
	Paths: alias.PathTable{
		{Pattern: "@app/*", Targets: []string{"src/app/*"}},
		{Pattern: "bad/*/*", Targets: []string{"src/*"}},
	},
	ModuleOptions: resolution.DefaultModuleOptions(),
}

var testCompiled = alias.CompiledTable{
	Mappings: []alias.Mapping{
		{
			Alias:   alias.Pattern{Raw: "@app/*", HasWildcard: true, Prefix: "@app/"},
			Targets: []string{"src/app/*"},
		},
	},
	Discarded: []alias.Discarded{
		{Pattern: "bad/*/*", Reason: "at most one wildcard"},
	},
}

func newLoader() *testutil.MockProjectConfigLoader {
	return &testutil.MockProjectConfigLoader{
		LoadFunc: func(string) (project.Config, error) { return testProject, nil },
	}
}

func newCompiler() *testutil.MockMappingCompiler {
	return &testutil.MockMappingCompiler{
		CompileFunc: func(alias.PathTable) alias.CompiledTable { return testCompiled },
	}
}

func TestNewService_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "loader cannot be nil", func() {
		_, _ = NewService(nil, newCompiler(), "tsconfig.json")
	})
	assert.PanicsWithValue(t, "compiler cannot be nil", func() {
		_, _ = NewService(newLoader(), nil, "tsconfig.json")
	})
}

func TestNewService_LoadsAndCompiles(t *testing.T) {
	loader := newLoader()
	compiler := newCompiler()

	svc, err := NewService(loader, compiler, "/project/tsconfig.json")

	require.NoError(t, err)
	assert.Equal(t, []string{"/project/tsconfig.json"}, loader.LoadCalls)
	require.Len(t, compiler.CompileCalls, 1)
	assert.Equal(t, testProject.Paths, compiler.CompileCalls[0])
	assert.Equal(t, testProject, svc.Project())
	assert.Equal(t, testCompiled.Mappings, svc.Mappings())
	assert.Equal(t, testCompiled.Discarded, svc.Discarded())
}

func TestNewService_LoadError(t *testing.T) {
	loader := &testutil.MockProjectConfigLoader{
		LoadFunc: func(string) (project.Config, error) {
			return project.Config{}, project.ErrBaseDirectoryMissing
		},
	}
	compiler := newCompiler()

	svc, err := NewService(loader, compiler, "/project/tsconfig.json")

	assert.Nil(t, svc)
	assert.True(t, errors.Is(err, project.ErrBaseDirectoryMissing))
	assert.Empty(t, compiler.CompileCalls, "nothing is compiled after a configuration error")
}

func TestService_ReturnsCopies(t *testing.T) {
	svc, err := NewService(newLoader(), newCompiler(), "/project/tsconfig.json")
	require.NoError(t, err)

	mappings := svc.Mappings()
	mappings[0].Targets[0] = "changed"
	discarded := svc.Discarded()
	discarded[0].Pattern = "changed"
	cfg := svc.Project()
	cfg.Paths[0].Targets[0] = "changed"

	assert.Equal(t, "src/app/*", svc.Mappings()[0].Targets[0])
	assert.Equal(t, "bad/*/*", svc.Discarded()[0].Pattern)
	assert.Equal(t, "src/app/*", svc.Project().Paths[0].Targets[0])
}
