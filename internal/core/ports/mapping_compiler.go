package ports

import "github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/alias"

/*
MappingCompiler defines the contract for turning a raw path table into
validated, ordered mappings.
This is a driven port, representing a domain capability.
*/
type MappingCompiler interface {
	// Compile validates every entry of table. Invalid patterns and targets are
	// dropped and reported in CompiledTable.Discarded; surviving mappings keep
	// the key order of table.
	Compile(table alias.PathTable) alias.CompiledTable
}
