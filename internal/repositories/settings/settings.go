/*
Package settings loads the tool's own settings from, in increasing order of
precedence: built-in defaults, a .tspaths.yaml file in the working directory,
TSPATHS_* environment variables (TS_NODE_PROJECT for the project) and
command-line flags.
*/
package settings

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/diagnostic"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys, shared with the command-line flags of the same name.
const (
	KeyProject     = "project"
	KeyLogLevel    = "log-level"
	KeyConcurrency = "concurrency"
)

const (
	// FileName is the optional settings file looked up in the working directory.
	FileName  = ".tspaths.yaml"
	envPrefix = "TSPATHS"
)

// ErrInvalidConcurrency is returned for a concurrency below one.
var ErrInvalidConcurrency = errors.New("concurrency must be at least 1")

// Settings are the effective tool settings.
type Settings struct {
	Project     string `mapstructure:"project"` // tsconfig or YAML path table; empty means discover
	LogLevel    string `mapstructure:"log-level"`
	Concurrency int    `mapstructure:"concurrency"`

	Verbosity  diagnostic.Verbosity `mapstructure:"-"`
	WorkingDir string               `mapstructure:"-"`
	SourceFile string               `mapstructure:"-"` // settings file that was read, if any
}

// Load resolves the settings for workingDir. flags may be nil.
func Load(fs afero.Fs, flags *pflag.FlagSet, workingDir string) (Settings, error) {
	v := viper.New()
	v.SetFs(fs)

	v.SetDefault(KeyProject, "")
	v.SetDefault(KeyLogLevel, diagnostic.WarningsOnly.String())
	v.SetDefault(KeyConcurrency, runtime.GOMAXPROCS(0))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(KeyProject, envPrefix+"_PROJECT", "TS_NODE_PROJECT"); err != nil {
		return Settings{}, fmt.Errorf("failed to bind environment: %w", err)
	}

	sourceFile := ""
	settingsPath := filepath.Join(workingDir, FileName)
	if ok, _ := afero.Exists(fs, settingsPath); ok {
		v.SetConfigFile(settingsPath)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("failed to read settings file %s: %w", settingsPath, err)
		}
		sourceFile = settingsPath
	}

	if flags != nil {
		for _, key := range []string{KeyProject, KeyLogLevel, KeyConcurrency} {
			if flag := flags.Lookup(key); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return Settings{}, fmt.Errorf("failed to bind flag --%s: %w", key, err)
				}
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	s.WorkingDir = workingDir
	s.SourceFile = sourceFile

	verbosity, err := diagnostic.ParseVerbosity(s.LogLevel)
	if err != nil {
		return Settings{}, err
	}
	s.Verbosity = verbosity

	if s.Concurrency < 1 {
		return Settings{}, fmt.Errorf("%w, got %d", ErrInvalidConcurrency, s.Concurrency)
	}
	if s.Project != "" && !filepath.IsAbs(s.Project) {
		s.Project = filepath.Join(workingDir, s.Project)
	}
	return s, nil
}
