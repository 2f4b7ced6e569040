package logger

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sync"

	"github.com/philipp01105/logfacade/backend"
	"github.com/philipp01105/logfacade/backend/slogbackend"
	"github.com/philipp01105/logfacade/config"
	"github.com/philipp01105/logfacade/core"
)

// Factory builds a backend from configuration.
type Factory func(cfg config.Config) (backend.Backend, error)

type provider struct {
	name    string
	factory Factory
}

var (
	providersMu sync.Mutex
	providers   []provider

	defaultRegistry *Registry
	defaultMu       sync.RWMutex
)

// RegisterBackend makes an optional backend available to the default
// registry. Registered backends are preferred over slog in registration
// order. It is meant to be called from init functions.
func RegisterBackend(name string, f Factory) {
	providersMu.Lock()
	defer providersMu.Unlock()
	providers = append(providers, provider{name: name, factory: f})
}

// NewDefaultRegistry builds a registry from cfg: the registered backends
// in order, then slog as the fallback. A backend named in cfg.Backend is
// the only candidate.
func NewDefaultRegistry(cfg config.Config) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	providersMu.Lock()
	registered := append([]provider(nil), providers...)
	providersMu.Unlock()

	var candidates []backend.Backend
	for _, p := range registered {
		if cfg.Backend != "" && cfg.Backend != config.BackendAuto && cfg.Backend != p.name {
			continue
		}
		b, err := p.factory(cfg)
		if err != nil {
			return nil, fmt.Errorf("backend %s: %w", p.name, err)
		}
		candidates = append(candidates, b)
	}

	switch cfg.Backend {
	case "", config.BackendAuto, config.BackendSlog:
		candidates = append(candidates, newSlogBackend(cfg))
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: backend %q is not linked into this binary", core.ErrNoBackend, cfg.Backend)
	}
	return NewRegistry(candidates...), nil
}

// newSlogBackend defers opening the output to the first Probe, so a
// file output is left alone when a richer backend is selected.
func newSlogBackend(cfg config.Config) *slogbackend.Backend {
	output := cfg.Slog.Output
	return slogbackend.New(slogbackend.Options{
		Open:   func() (io.Writer, error) { return openOutput(output) },
		Format: slogbackend.Format(cfg.Slog.Format),
		Level:  cfg.Level,
		Levels: cfg.Levels,
	})
}

func openOutput(output string) (io.Writer, error) {
	switch output {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	default:
		return os.OpenFile(output, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	}
}

// Default returns the process-wide registry, building it from the
// environment on first use. If the environment is invalid, the returned
// registry reports that error from every lookup.
func Default() *Registry {
	defaultMu.RLock()
	r := defaultRegistry
	defaultMu.RUnlock()
	if r != nil {
		return r
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultRegistry == nil {
		defaultRegistry = newEnvRegistry()
	}
	return defaultRegistry
}

func newEnvRegistry() *Registry {
	cfg, err := config.FromEnv()
	if err == nil {
		var r *Registry
		if r, err = NewDefaultRegistry(cfg); err == nil {
			return r
		}
	}
	r := NewRegistry()
	r.initErr = err
	return r
}

// SetDefault sets the process-wide registry. Loggers already handed out
// keep their binding.
func SetDefault(r *Registry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = r
}

// Package-level convenience functions using the default registry

// GetLogger returns the process-wide logger for name
func GetLogger(name string) (*Logger, error) {
	return Default().Logger(name)
}

// MustGetLogger is like GetLogger but panics on error
func MustGetLogger(name string) *Logger {
	l, err := GetLogger(name)
	if err != nil {
		panic(err)
	}
	return l
}

// GetLoggerFor returns the process-wide logger named after the type of v
func GetLoggerFor(v any) (*Logger, error) {
	return Default().LoggerFor(v)
}

// For returns the process-wide logger named after T
func For[T any]() (*Logger, error) {
	return Default().Logger(TypeName(reflect.TypeOf((*T)(nil)).Elem()))
}
