package backend

import (
	"fmt"

	"github.com/philipp01105/logfacade/core"
)

// Adapter binds one logger name to a backend-native logger.
type Adapter interface {
	// Enabled reports whether a message at level would currently be emitted
	Enabled(level core.Level) bool

	// Log emits msg at level. A nil err selects the backend's text-only
	// entry point. Backend failures are returned unchanged.
	Log(level core.Level, msg any, err error) error
}

// Backend is a logging framework the registry can select.
type Backend interface {
	// Name identifies the backend, e.g. "zap" or "slog"
	Name() string

	// Probe reports whether the backend can be used in this process
	Probe() error

	// Adapter returns a fresh adapter for the named logger
	Adapter(name string) (Adapter, error)
}

// Syncer is an optional interface for backends that buffer output.
type Syncer interface {
	Sync() error
}

// Text converts a message to the text handed to a backend.
func Text(msg any) string {
	if s, ok := msg.(string); ok {
		return s
	}
	return fmt.Sprint(msg)
}
