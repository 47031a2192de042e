package ports

import "github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/project"

// ProjectConfigLoader defines the interface for sourcing a project's alias
// configuration, like a tsconfig.json file.
type ProjectConfigLoader interface {
	// Load reads the configuration at configPath. Missing or malformed files
	// and a missing base directory are errors.
	Load(configPath string) (project.Config, error)
}
