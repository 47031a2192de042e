/*
Package pathtable loads an alias configuration from a standalone YAML file,
for projects that keep their path table outside tsconfig.json:

	baseUrl: .
	paths:
	  "@app/*": [src/app/*]
	  "~/*": src/*
	allowJs: true
	moduleSuffixes: [.ios, ""]
*/
package pathtable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/alias"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/project"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/resolution"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/ports"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type document struct {
	BaseURL           string          `yaml:"baseUrl"`
	Paths             alias.PathTable `yaml:"paths"`
	AllowJS           bool            `yaml:"allowJs"`
	ResolveJSONModule bool            `yaml:"resolveJsonModule"`
	ModuleSuffixes    []string        `yaml:"moduleSuffixes"`
}

// YAMLProvider implements the ProjectConfigLoader interface by reading a
// YAML path table.
type YAMLProvider struct {
	fs afero.Fs
}

// NewYAMLProvider creates a new YAMLProvider reading from fs.
func NewYAMLProvider(fs afero.Fs) ports.ProjectConfigLoader {
	if fs == nil {
		panic("fs cannot be nil")
	}
	return &YAMLProvider{fs: fs}
}

// Load reads and validates the YAML file at configPath. baseUrl is taken
// relative to the file's directory.
func (p *YAMLProvider) Load(configPath string) (project.Config, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return project.Config{}, fmt.Errorf("failed to resolve %s: %w", configPath, err)
	}

	data, err := afero.ReadFile(p.fs, absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return project.Config{}, fmt.Errorf("%w: %s", project.ErrConfigNotFound, absPath)
		}
		return project.Config{}, fmt.Errorf("failed to read path table %s: %w", absPath, err)
	}

	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return project.Config{}, fmt.Errorf("failed to unmarshal path table from %s: %w", absPath, err)
	}

	if doc.BaseURL == "" {
		return project.Config{}, fmt.Errorf("%s: %w", absPath, project.ErrBaseDirectoryMissing)
	}
	baseDir := doc.BaseURL
	if !filepath.IsAbs(baseDir) {
		baseDir = filepath.Join(filepath.Dir(absPath), baseDir)
	}

	return project.Config{
		ConfigPath:    absPath,
		BaseDirectory: filepath.Clean(baseDir),
		Paths:         doc.Paths,
		ModuleOptions: resolution.NewModuleOptions(doc.AllowJS, doc.ResolveJSONModule, doc.ModuleSuffixes),
	}, nil
}
