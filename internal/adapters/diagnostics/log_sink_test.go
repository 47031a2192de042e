package diagnostics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/core/domain/diagnostic"
)

func TestLogSink_FiltersByVerbosity(t *testing.T) {
	tests := []struct {
		name      string
		verbosity diagnostic.Verbosity
		wantWarn  bool
		wantInfo  bool
		wantDebug bool
	}{
		{"suppressed", diagnostic.Suppressed, false, false, false},
		{"warnings only", diagnostic.WarningsOnly, true, false, false},
		{"verbose", diagnostic.Verbose, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			sink := NewLogSink(&buf, tt.verbosity)

			sink.Emit(diagnostic.LevelWarn, "warn-message")
			sink.Emit(diagnostic.LevelInfo, "info-message")
			sink.Emit(diagnostic.LevelDebug, "debug-message")

			out := buf.String()
			if got := strings.Contains(out, "warn-message"); got != tt.wantWarn {
				t.Errorf("warn emitted = %v, want %v (output %q)", got, tt.wantWarn, out)
			}
			if got := strings.Contains(out, "info-message"); got != tt.wantInfo {
				t.Errorf("info emitted = %v, want %v (output %q)", got, tt.wantInfo, out)
			}
			if got := strings.Contains(out, "debug-message"); got != tt.wantDebug {
				t.Errorf("debug emitted = %v, want %v (output %q)", got, tt.wantDebug, out)
			}
		})
	}
}

func TestLogSink_Prefix(t *testing.T) {
	var buf bytes.Buffer
	NewLogSink(&buf, diagnostic.WarningsOnly).Emit(diagnostic.LevelWarn, "paths are empty")

	if !strings.Contains(buf.String(), Prefix) {
		t.Errorf("output %q does not carry prefix %q", buf.String(), Prefix)
	}
}

func TestNopSink(t *testing.T) {
	// Must not panic.
	NopSink{}.Emit(diagnostic.LevelWarn, "ignored")
}
