package main

import (
	"context"
	"testing"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/adapters/pathtable"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/diagnostic"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/project"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/resolution"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/repositories/settings"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/repositories/tsconfig"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rootTSConfig = `{
	// shared aliases
	"compilerOptions": {
		"baseUrl": ".",
		"paths": {
			"~/*": ["src/*"],
			"@app/*": ["src/app/*", "lib/app/*"],
			"@app/config": ["src/config/index.ts"],
			"@types/*": ["types/*.d.ts"],
			"bad/*/*": ["src/*"],
		},
	},
}`

func newProjectFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/repo/tsconfig.json":                rootTSConfig,
		"/repo/paths.yaml":                   "baseUrl: .\npaths:\n  \"#/*\": src/*\n",
		"/repo/src/app/main.ts":              "",
		"/repo/lib/app/legacy.ts":            "",
		"/repo/src/config/index.ts":          "",
		"/repo/src/util/strings.tsx":         "",
		"/repo/packages/web/src/entry.ts":    "",
		"/repo/node_modules/lodash/index.js": "",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	return fs
}

func TestBuildServices_EndToEnd(t *testing.T) {
	fs := newProjectFs(t)
	s := settings.Settings{Verbosity: diagnostic.Suppressed, Concurrency: 2, WorkingDir: "/repo/packages/web"}

	services, err := buildServices(fs, s)
	require.NoError(t, err)

	cfg := services.Inspection.Project()
	assert.Equal(t, "/repo/tsconfig.json", cfg.ConfigPath, "the nearest tsconfig.json is discovered")
	assert.Equal(t, "/repo", cfg.BaseDirectory)
	assert.Len(t, services.Inspection.Mappings(), 3)
	assert.Len(t, services.Inspection.Discarded(), 3)

	importer := "/repo/packages/web/src/entry.ts"
	tests := []struct {
		specifier string
		want      string
		wantOK    bool
	}{
		{"@app/main", "/repo/src/app/main.ts", true},
		{"@app/legacy", "/repo/lib/app/legacy.ts", true},
		{"@app/config", "/repo/src/config/index.ts", true},
		{"~/util/strings", "/repo/src/util/strings.tsx", true},
		{"~/config", "/repo/src/config/index.ts", true},
		{"@app/missing", "", false},
		{"lodash", "", false},
	}

	requests := make([]resolution.Request, len(tests))
	for i, tt := range tests {
		requests[i] = resolution.Request{Specifier: tt.specifier, ImporterPath: importer}
	}
	results, err := services.Resolution.ResolveAll(context.Background(), requests)
	require.NoError(t, err)

	for i, tt := range tests {
		t.Run(tt.specifier, func(t *testing.T) {
			assert.Equal(t, tt.wantOK, results[i].Matched)
			assert.Equal(t, tt.want, results[i].Path)
		})
	}
}

func TestBuildServices_YAMLPathTable(t *testing.T) {
	fs := newProjectFs(t)
	s := settings.Settings{Project: "/repo/paths.yaml", Verbosity: diagnostic.Suppressed, Concurrency: 1, WorkingDir: "/repo"}

	services, err := buildServices(fs, s)
	require.NoError(t, err)

	result := services.Resolution.Resolve(resolution.Request{Specifier: "#/app/main", ImporterPath: "/repo/src/index.ts"})
	assert.True(t, result.Matched)
	assert.Equal(t, "/repo/src/app/main.ts", result.Path)
}

func TestBuildServices_ConfigurationErrors(t *testing.T) {
	s := settings.Settings{Verbosity: diagnostic.Suppressed, Concurrency: 1, WorkingDir: "/elsewhere"}

	_, err := buildServices(afero.NewMemMapFs(), s)

	assert.ErrorIs(t, err, project.ErrConfigNotFound)
}

func TestConfigLoaderFor(t *testing.T) {
	fs := afero.NewMemMapFs()

	tests := []struct {
		configPath string
		wantYAML   bool
	}{
		{"/repo/tsconfig.json", false},
		{"/repo/tsconfig.base.json", false},
		{"/repo/paths.yaml", true},
		{"/repo/PATHS.YML", true},
	}

	for _, tt := range tests {
		t.Run(tt.configPath, func(t *testing.T) {
			loader := configLoaderFor(fs, tt.configPath)

			_, isYAML := loader.(*pathtable.YAMLProvider)
			_, isTSConfig := loader.(*tsconfig.Loader)
			assert.Equal(t, tt.wantYAML, isYAML)
			assert.Equal(t, !tt.wantYAML, isTSConfig)
		})
	}
}
