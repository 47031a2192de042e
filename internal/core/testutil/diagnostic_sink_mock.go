package testutil

import (
	"strings"
	"sync"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/diagnostic"
	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/ports"
)

// Diagnostic is one message captured by a RecordingSink.
type Diagnostic struct {
	Level   diagnostic.Level
	Message string
}

// RecordingSink is a ports.DiagnosticSink that keeps every message.
type RecordingSink struct {
	mu      sync.Mutex
	entries []Diagnostic
}

// Emit implements ports.DiagnosticSink.
func (s *RecordingSink) Emit(level diagnostic.Level, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, Diagnostic{Level: level, Message: message})
}

// Entries returns the captured messages of the given level.
func (s *RecordingSink) Entries(level diagnostic.Level) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, e := range s.entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

// Contains reports whether any message of the given level contains substr.
func (s *RecordingSink) Contains(level diagnostic.Level, substr string) bool {
	for _, msg := range s.Entries(level) {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

var _ ports.DiagnosticSink = (*RecordingSink)(nil)
