package logger

import (
	"fmt"

	"github.com/philipp01105/logfacade/backend"
	"github.com/philipp01105/logfacade/core"
)

// Logger is a named logger bound to one backend adapter (immutable).
//
// Loggers are obtained from a Registry. The zero Logger is not bound to
// any backend, and calling its dispatch methods panics.
type Logger struct {
	name    string
	adapter backend.Adapter
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// IsEnabled reports whether a message at level would be emitted
func (l *Logger) IsEnabled(level Level) (bool, error) {
	if level == 0 {
		return false, fmt.Errorf("%w: level is unset", core.ErrInvalidArgument)
	}
	return l.bound().Enabled(level), nil
}

// IsTraceEnabled reports whether TRACE messages would be emitted
func (l *Logger) IsTraceEnabled() bool { return l.bound().Enabled(core.TraceLevel) }

// IsDebugEnabled reports whether DEBUG messages would be emitted
func (l *Logger) IsDebugEnabled() bool { return l.bound().Enabled(core.DebugLevel) }

// IsInfoEnabled reports whether INFO messages would be emitted
func (l *Logger) IsInfoEnabled() bool { return l.bound().Enabled(core.InfoLevel) }

// IsWarnEnabled reports whether WARN messages would be emitted
func (l *Logger) IsWarnEnabled() bool { return l.bound().Enabled(core.WarnLevel) }

// IsErrorEnabled reports whether ERROR messages would be emitted
func (l *Logger) IsErrorEnabled() bool { return l.bound().Enabled(core.ErrorLevel) }

// Log logs a message at the specified level
func (l *Logger) Log(level Level, msg any) error {
	if level == 0 {
		return fmt.Errorf("%w: level is unset", core.ErrInvalidArgument)
	}
	return l.bound().Log(level, msg, nil)
}

// LogErr logs a message with an associated error at the specified level.
// A nil err is the same as calling Log.
//
// Every dispatch method calls the adapter directly, so backends that
// record the caller see the same call depth from each of them.
func (l *Logger) LogErr(level Level, msg any, err error) error {
	if level == 0 {
		return fmt.Errorf("%w: level is unset", core.ErrInvalidArgument)
	}
	return l.bound().Log(level, msg, err)
}

// Trace logs a trace message
func (l *Logger) Trace(msg any) error { return l.bound().Log(core.TraceLevel, msg, nil) }

// TraceErr logs a trace message with an associated error
func (l *Logger) TraceErr(msg any, err error) error { return l.bound().Log(core.TraceLevel, msg, err) }

// Debug logs a debug message
func (l *Logger) Debug(msg any) error { return l.bound().Log(core.DebugLevel, msg, nil) }

// DebugErr logs a debug message with an associated error
func (l *Logger) DebugErr(msg any, err error) error { return l.bound().Log(core.DebugLevel, msg, err) }

// Info logs an info message
func (l *Logger) Info(msg any) error { return l.bound().Log(core.InfoLevel, msg, nil) }

// InfoErr logs an info message with an associated error
func (l *Logger) InfoErr(msg any, err error) error { return l.bound().Log(core.InfoLevel, msg, err) }

// Warn logs a warning message
func (l *Logger) Warn(msg any) error { return l.bound().Log(core.WarnLevel, msg, nil) }

// WarnErr logs a warning message with an associated error
func (l *Logger) WarnErr(msg any, err error) error { return l.bound().Log(core.WarnLevel, msg, err) }

// Error logs an error message
func (l *Logger) Error(msg any) error { return l.bound().Log(core.ErrorLevel, msg, nil) }

// ErrorErr logs an error message with an associated error
func (l *Logger) ErrorErr(msg any, err error) error { return l.bound().Log(core.ErrorLevel, msg, err) }

// bound returns the adapter, panicking for the zero Logger.
func (l *Logger) bound() backend.Adapter {
	if l.adapter == nil {
		panic(core.InvariantError{Op: "Logger dispatch", Detail: fmt.Sprintf("logger %q is not bound to a backend", l.name)})
	}
	return l.adapter
}
