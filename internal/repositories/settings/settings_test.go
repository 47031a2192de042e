package settings

import (
	"runtime"
	"testing"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/diagnostic"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workingDir = "/work"

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP(KeyProject, "p", "", "")
	flags.String(KeyLogLevel, "warn", "")
	flags.Int(KeyConcurrency, 4, "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"TSPATHS_PROJECT", "TS_NODE_PROJECT", "TSPATHS_LOG_LEVEL", "TSPATHS_CONCURRENCY"} {
		t.Setenv(name, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	s, err := Load(afero.NewMemMapFs(), nil, workingDir)

	require.NoError(t, err)
	assert.Equal(t, "", s.Project)
	assert.Equal(t, diagnostic.WarningsOnly, s.Verbosity)
	assert.Equal(t, runtime.GOMAXPROCS(0), s.Concurrency)
	assert.Equal(t, workingDir, s.WorkingDir)
	assert.Empty(t, s.SourceFile)
}

func TestLoad_SettingsFile(t *testing.T) {
	clearEnv(t)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/.tspaths.yaml", []byte("project: web/tsconfig.json\nlog-level: debug\nconcurrency: 2\n"), 0o644))

	s, err := Load(fs, nil, workingDir)

	require.NoError(t, err)
	assert.Equal(t, "/work/web/tsconfig.json", s.Project)
	assert.Equal(t, diagnostic.Verbose, s.Verbosity)
	assert.Equal(t, 2, s.Concurrency)
	assert.Equal(t, "/work/.tspaths.yaml", s.SourceFile)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("TS_NODE_PROJECT", "/abs/tsconfig.json")
	t.Setenv("TSPATHS_LOG_LEVEL", "none")

	s, err := Load(afero.NewMemMapFs(), nil, workingDir)

	require.NoError(t, err)
	assert.Equal(t, "/abs/tsconfig.json", s.Project)
	assert.Equal(t, diagnostic.Suppressed, s.Verbosity)
}

func TestLoad_FlagsOverrideFileAndEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("TSPATHS_LOG_LEVEL", "none")
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/.tspaths.yaml", []byte("project: from-file.json\n"), 0o644))

	s, err := Load(fs, newFlags(t, "-p", "tsconfig.app.json", "--log-level", "debug", "--concurrency", "8"), workingDir)

	require.NoError(t, err)
	assert.Equal(t, "/work/tsconfig.app.json", s.Project)
	assert.Equal(t, diagnostic.Verbose, s.Verbosity)
	assert.Equal(t, 8, s.Concurrency)
}

func TestLoad_UnchangedFlagsKeepFileValues(t *testing.T) {
	clearEnv(t)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/.tspaths.yaml", []byte("log-level: debug\n"), 0o644))

	s, err := Load(fs, newFlags(t), workingDir)

	require.NoError(t, err)
	assert.Equal(t, diagnostic.Verbose, s.Verbosity)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown log level", []string{"--log-level", "trace"}, "unknown log level 'trace'"},
		{"zero concurrency", []string{"--concurrency", "0"}, ErrInvalidConcurrency.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			_, err := Load(afero.NewMemMapFs(), newFlags(t, tt.args...), workingDir)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
