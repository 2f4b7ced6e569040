// Package slogbackend is the baseline backend, built on the standard
// library's log/slog. It is always available and is the fallback when no
// richer backend can be initialized.
//
// slog has no trace level, so TRACE maps to LevelTrace (slog.Level(-8)),
// which the built-in handlers render as "TRACE". Each adapter carries a
// "logger" attribute with its name and is gated by a per-name threshold.
package slogbackend
