// Package config holds the declarative configuration of the default
// registry: which backend to prefer, the level thresholds, and the
// output settings of each backend.
//
// Configuration is read from an optional YAML file and then overridden
// by environment variables:
//
//	LOGFACADE_CONFIG   path of a YAML file
//	LOGFACADE_BACKEND  auto, zap or slog
//	LOGFACADE_LEVEL    root threshold, e.g. debug
//
// A minimal file:
//
//	backend: auto
//	level: info
//	levels:
//	  app.db: debug
//	zap:
//	  encoding: console
package config
