// Package core defines the shared types used across logfacade.
//
// It provides the Level type, a closed set of five severities ordered
// from TraceLevel to ErrorLevel, and the error taxonomy shared by the
// facade and its backends.
//
// The zero Level is deliberately not a severity. It stands for an
// absent level, and every public entry point rejects it with
// ErrInvalidArgument. A non-zero value outside the closed set that
// reaches a backend's level translation is a programming error and
// panics with an InvariantError.
package core
