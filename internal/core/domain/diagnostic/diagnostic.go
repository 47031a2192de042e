/*
Package diagnostic defines diagnostic levels and the verbosity setting that
decides which of them are emitted. Verbosity never affects resolution results.
*/
package diagnostic

import (
	"fmt"
	"strings"
)

// Level classifies a single diagnostic message.
type Level int

const (
	LevelWarn  Level = iota // discarded patterns and targets, empty tables
	LevelInfo               // successful resolutions
	LevelDebug              // compiled mappings and match traces
)

func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Verbosity is the three-level diagnostics setting.
type Verbosity int

const (
	Suppressed Verbosity = iota
	WarningsOnly
	Verbose
)

// Allows reports whether a message at level should be emitted.
func (v Verbosity) Allows(level Level) bool {
	switch v {
	case Suppressed:
		return false
	case WarningsOnly:
		return level == LevelWarn
	default:
		return true
	}
}

func (v Verbosity) String() string {
	switch v {
	case Suppressed:
		return "none"
	case WarningsOnly:
		return "warn"
	default:
		return "debug"
	}
}

// ParseVerbosity accepts the textual log levels "none", "warn" and "debug".
func ParseVerbosity(name string) (Verbosity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "silent", "suppressed":
		return Suppressed, nil
	case "", "warn", "warning", "warnings":
		return WarningsOnly, nil
	case "debug", "verbose":
		return Verbose, nil
	default:
		return WarningsOnly, fmt.Errorf("unknown log level '%s' (expected none, warn or debug)", name)
	}
}
