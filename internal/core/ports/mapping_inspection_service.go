package ports

import (
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/alias"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/project"
)

// MappingInspectionService gives read-only access to a project's compiled
// alias configuration.
type MappingInspectionService interface {
	Project() project.Config
	Mappings() []alias.Mapping
	Discarded() []alias.Discarded
}
