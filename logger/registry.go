package logger

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/sync/singleflight"

	"github.com/philipp01105/logfacade/backend"
	"github.com/philipp01105/logfacade/core"
)

// Registry selects one backend and caches one Logger per name.
//
// The backend is chosen on first use: the first candidate whose Probe
// succeeds wins, and the choice never changes afterwards. Registry is
// safe for concurrent use. Concurrent lookups of a new name construct a
// single adapter, and no registry lock is held while the backend runs.
type Registry struct {
	candidates []backend.Backend
	initErr    error

	selectOnce sync.Once
	selected   backend.Backend
	selectErr  error

	mu      sync.RWMutex
	loggers map[string]*Logger
	group   singleflight.Group
}

// NewRegistry creates a registry over candidates, in order of preference.
// The last candidate is normally a backend whose probe never fails.
func NewRegistry(candidates ...backend.Backend) *Registry {
	return &Registry{
		candidates: candidates,
		loggers:    make(map[string]*Logger),
	}
}

// Backend returns the selected backend, probing the candidates on the
// first call only.
func (r *Registry) Backend() (backend.Backend, error) {
	r.selectOnce.Do(func() {
		if r.initErr != nil {
			r.selectErr = r.initErr
			return
		}
		var errs error
		for _, b := range r.candidates {
			err := b.Probe()
			if err == nil {
				r.selected = b
				return
			}
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", b.Name(), err))
		}
		if errs != nil {
			r.selectErr = fmt.Errorf("%w: %w", core.ErrNoBackend, errs)
		} else {
			r.selectErr = core.ErrNoBackend
		}
	})
	return r.selected, r.selectErr
}

// Logger returns the logger for name, creating it on first use.
func (r *Registry) Logger(name string) (*Logger, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: logger name is empty", core.ErrInvalidArgument)
	}
	if l := r.cached(name); l != nil {
		return l, nil
	}

	v, err, _ := r.group.Do(name, func() (any, error) {
		// A previous flight for name may have finished since the fast path
		if l := r.cached(name); l != nil {
			return l, nil
		}
		b, err := r.Backend()
		if err != nil {
			return nil, err
		}
		a, err := b.Adapter(name)
		if err != nil {
			return nil, fmt.Errorf("logger %q: %w", name, err)
		}

		l := &Logger{name: name, adapter: a}
		r.mu.Lock()
		if existing, ok := r.loggers[name]; ok {
			l = existing
		} else {
			r.loggers[name] = l
		}
		r.mu.Unlock()
		return l, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Logger), nil
}

// LoggerFor returns the logger named after the type of v. A reflect.Type
// is used directly; pointer types are dereferenced.
func (r *Registry) LoggerFor(v any) (*Logger, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: type is nil", core.ErrInvalidArgument)
	}
	t, ok := v.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(v)
	}
	return r.Logger(TypeName(t))
}

// Names returns the names of all cached loggers, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Sync flushes the selected backend if it buffers output. A registry
// whose backend was never selected has nothing to flush.
func (r *Registry) Sync() error {
	r.mu.RLock()
	used := len(r.loggers) > 0
	r.mu.RUnlock()
	if !used {
		return nil
	}

	b, err := r.Backend()
	if err != nil {
		return err
	}
	if s, ok := b.(backend.Syncer); ok {
		return s.Sync()
	}
	return nil
}

func (r *Registry) cached(name string) *Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loggers[name]
}

// TypeName returns the qualified name used for a type's logger: the
// package import path and the type name joined by a dot, e.g.
// "github.com/acme/app/store.Repo". Pointer types are dereferenced and
// unnamed types use their Go syntax.
func TypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
