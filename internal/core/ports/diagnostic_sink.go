package ports

import "github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/diagnostic"

// DiagnosticSink receives diagnostics. Sinks decide themselves which levels
// they emit.
type DiagnosticSink interface {
	Emit(level diagnostic.Level, message string)
}
