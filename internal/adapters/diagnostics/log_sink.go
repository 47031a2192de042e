/*
Package diagnostics provides ports.DiagnosticSink implementations: a sink that
writes through a charmbracelet logger, filtered by verbosity, and a sink that
discards everything.
*/
package diagnostics

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/diagnostic"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/ports"
)

// Prefix is prepended to every diagnostic line.
const Prefix = "ts-paths-resolve"

// LogSink emits diagnostics allowed by its verbosity to a charmbracelet logger.
type LogSink struct {
	logger    *log.Logger
	verbosity diagnostic.Verbosity
}

// NewLogSink creates a sink writing to w. The logger itself accepts every
// level; filtering is done by verbosity.
func NewLogSink(w io.Writer, verbosity diagnostic.Verbosity) ports.DiagnosticSink {
	if w == nil {
		panic("writer cannot be nil")
	}
	logger := log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  log.DebugLevel,
	})
	return &LogSink{logger: logger, verbosity: verbosity}
}

// Emit implements the ports.DiagnosticSink interface.
func (s *LogSink) Emit(level diagnostic.Level, message string) {
	if !s.verbosity.Allows(level) {
		return
	}
	switch level {
	case diagnostic.LevelWarn:
		s.logger.Warn(message)
	case diagnostic.LevelInfo:
		s.logger.Info(message)
	default:
		s.logger.Debug(message)
	}
}

// NopSink drops every diagnostic.
type NopSink struct{}

// Emit implements the ports.DiagnosticSink interface.
func (NopSink) Emit(diagnostic.Level, string) {}

var _ ports.DiagnosticSink = NopSink{}
