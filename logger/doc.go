// Package logger is the public API of logfacade. Most users only need to
// import this package.
//
// A Logger is a name bound to one backend adapter. Loggers are obtained
// by name from a Registry, which picks a backend once and then hands out
// the same *Logger for every lookup of the same name:
//
//	log := logger.MustGetLogger("app.server")
//	if log.IsDebugEnabled() {
//	    log.Debug(expensiveDump())
//	}
//	log.ErrorErr("request failed", err)
//
// The process-wide registry built by Default prefers zap and falls back
// to log/slog. Building with the nozap tag leaves zap out of the binary,
// in which case slog is always used. The environment variables read by
// package config select the backend and thresholds.
//
// Every logging method returns the backend's error unchanged. An unset
// Level is rejected with core.ErrInvalidArgument. The zero Logger is not
// bound to a backend and panics when used.
//
// A Logger marshals to its name only. Unmarshaling resolves the name
// through the default registry, so a restored logger is the live one and
// never a stale copy of a backend handle.
package logger
