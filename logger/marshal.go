package logger

import (
	"fmt"

	"github.com/philipp01105/logfacade/core"
)

// Ref is the persisted form of a Logger: its name and nothing else.
type Ref string

// Ref returns the persisted form of l.
func (l *Logger) Ref() Ref {
	return Ref(l.name)
}

// Resolve looks the logger up in the default registry, the same path as
// GetLogger.
func (r Ref) Resolve() (*Logger, error) {
	return GetLogger(string(r))
}

// MarshalText implements encoding.TextMarshaler. Only the name is
// written; the backend binding never leaves the process.
func (l *Logger) MarshalText() ([]byte, error) {
	if l.name == "" {
		return nil, fmt.Errorf("%w: cannot marshal an unnamed logger", core.ErrInvalidArgument)
	}
	return []byte(l.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The receiver is
// rebound to the live logger the default registry holds for the name.
func (l *Logger) UnmarshalText(text []byte) error {
	live, err := Ref(text).Resolve()
	if err != nil {
		return err
	}
	*l = *live
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (l *Logger) MarshalBinary() ([]byte, error) {
	return l.MarshalText()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (l *Logger) UnmarshalBinary(data []byte) error {
	return l.UnmarshalText(data)
}
