// Package zapbackend is the full-featured backend, built on
// go.uber.org/zap.
//
// The backend builds its zap core lazily on the first Probe. A build
// failure, such as an unknown encoding or an output path that cannot be
// opened, makes the probe fail so the registry falls back to the
// baseline backend.
//
// zap has no trace level; TRACE maps to TraceLevel, one step below
// zapcore.DebugLevel, and LevelEncoder renders it as "trace". Adapters
// write entries straight to the core so that write errors reach the
// caller instead of zap's ErrorOutput.
package zapbackend
