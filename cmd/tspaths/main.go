package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/adapters/diagnostics"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/adapters/fsprobe"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/adapters/mappingcompilation"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/adapters/moduleresolution"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/adapters/pathtable"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/adapters/patternanalysis"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/ports"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/services/mappinginspection"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/services/pathresolution"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/handlers/cli"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/handlers/ui"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/repositories/settings"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/repositories/tsconfig"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

// Version is set at build time
var Version = "dev"

func main() {
	fs := afero.NewOsFs()

	workingDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error determining working directory: %v\n", err)
		os.Exit(1)
	}

	loadSettings := func(flags *pflag.FlagSet) (settings.Settings, error) {
		return settings.Load(fs, flags, workingDir)
	}
	newServices := func(s settings.Settings) (*cli.Services, error) {
		return buildServices(fs, s)
	}

	rootCmd := cli.NewRootCommand(Version, loadSettings, newServices)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

// buildServices wires the adapters for one run. The configuration file is
// loaded and compiled here, so configuration errors stop the command.
func buildServices(fs afero.Fs, s settings.Settings) (*cli.Services, error) {
	sink := diagnostics.NewLogSink(os.Stderr, s.Verbosity)

	configPath := s.Project
	if configPath == "" {
		found, err := tsconfig.NewFileFinder(fs).Find(s.WorkingDir)
		if err != nil {
			return nil, err
		}
		configPath = found
	}

	compiler := mappingcompilation.NewCompiler(patternanalysis.NewBasicAnalyzer(), sink)
	inspection, err := mappinginspection.NewService(configLoaderFor(fs, configPath), compiler, configPath)
	if err != nil {
		return nil, err
	}

	cfg := inspection.Project()
	resolution := pathresolution.NewService(
		inspection.Mappings(),
		pathresolution.Config{
			BaseDirectory: cfg.BaseDirectory,
			ModuleOptions: cfg.ModuleOptions,
			Concurrency:   s.Concurrency,
		},
		moduleresolution.NewNodeResolver(fs),
		fsprobe.NewFileChecker(fs),
		sink,
	)

	return &cli.Services{Inspection: inspection, Resolution: resolution}, nil
}

// configLoaderFor picks the YAML path table loader for .yaml/.yml files and
// the tsconfig loader for anything else.
func configLoaderFor(fs afero.Fs, configPath string) ports.ProjectConfigLoader {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return pathtable.NewYAMLProvider(fs)
	default:
		return tsconfig.NewLoader(fs)
	}
}
