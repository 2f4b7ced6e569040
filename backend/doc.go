// Package backend defines the strategy interfaces the facade dispatches
// through, and the helpers shared by the built-in backends.
//
// A Backend is one logging framework. It is probed once, and if its
// probe succeeds it produces one Adapter per logger name. An Adapter
// translates the five facade levels to the framework's native levels
// and forwards enablement checks and log calls to the framework's named
// logger for that name.
//
// Built-in backends:
//
//   - slogbackend wraps log/slog and is always available.
//   - zapbackend wraps go.uber.org/zap and is preferred when it can be
//     initialized.
//
// Both backends keep their thresholds in a Thresholds table keyed by
// dotted logger name, so "app.db" inherits from "app" unless it has a
// threshold of its own.
package backend
