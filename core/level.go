package core

import (
	"fmt"
	"strings"
)

// Level represents the severity level of a log message
type Level int8

const (
	// TraceLevel for the finest-grained diagnostic output
	TraceLevel Level = iota + 1
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
)

var allLevels = [...]Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel}

// AllLevels returns the five levels in severity order, TraceLevel first.
func AllLevels() []Level {
	out := make([]Level, len(allLevels))
	copy(out, allLevels[:])
	return out
}

// Valid reports whether l is one of the five defined levels.
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= ErrorLevel
}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level. Matching is case-insensitive
// and "WARNING" is accepted as an alias for WarnLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	default:
		return 0, fmt.Errorf("%w: unknown level %q", ErrInvalidArgument, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: cannot marshal level %d", ErrInvalidArgument, int8(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
