package slogbackend

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/philipp01105/logfacade/backend"
	"github.com/philipp01105/logfacade/core"
)

// Name is the backend name reported to the registry.
const Name = "slog"

// LevelTrace is the native level TRACE translates to.
const LevelTrace = slog.Level(-8)

// NameKey is the attribute key carrying the logger name.
const NameKey = "logger"

// Format selects the built-in slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Options configures a Backend.
type Options struct {
	// Writer receives formatted records (default: os.Stderr).
	Writer io.Writer
	// Open, when set, supplies the writer on the first Probe instead of
	// Writer, so an output file is only opened if slog is selected.
	Open func() (io.Writer, error)
	// Format selects text or JSON output (default: text).
	Format Format
	// Level is the root threshold (default: InfoLevel).
	Level core.Level
	// Levels holds per-name thresholds.
	Levels map[string]core.Level
	// Handler, when set, replaces the built-in handler and Writer/Format
	// are ignored.
	Handler slog.Handler
}

// Backend produces slog-backed adapters that share one handler.
type Backend struct {
	once       sync.Once
	open       func() (io.Writer, error)
	format     Format
	handler    slog.Handler
	err        error
	thresholds *backend.Thresholds[slog.Level]
}

// New creates a slog backend.
func New(opts Options) *Backend {
	root := opts.Level
	if root == 0 {
		root = core.InfoLevel
	}
	b := &Backend{
		open:       opts.Open,
		format:     opts.Format,
		handler:    opts.Handler,
		thresholds: backend.NewThresholds(Translate(root)),
	}
	if b.handler == nil && b.open == nil {
		w := opts.Writer
		if w == nil {
			w = os.Stderr
		}
		b.handler = newHandler(w, opts.Format)
	}
	for name, l := range opts.Levels {
		b.thresholds.Set(name, Translate(l))
	}
	return b
}

// Name implements backend.Backend.
func (b *Backend) Name() string { return Name }

// Probe implements backend.Backend. The baseline is always available
// unless its Open function fails; the result is memoized.
func (b *Backend) Probe() error {
	b.once.Do(func() {
		if b.handler != nil {
			return
		}
		w, err := b.open()
		if err != nil {
			b.err = fmt.Errorf("slogbackend: open output: %w", err)
			return
		}
		b.handler = newHandler(w, b.format)
	})
	return b.err
}

// Adapter implements backend.Backend.
func (b *Backend) Adapter(name string) (backend.Adapter, error) {
	if err := b.Probe(); err != nil {
		return nil, err
	}
	return &adapter{
		name:       name,
		handler:    b.handler.WithAttrs([]slog.Attr{slog.String(NameKey, name)}),
		thresholds: b.thresholds,
	}, nil
}

// SetLevel sets the threshold for name and its descendants. An empty
// name sets the root threshold.
func (b *Backend) SetLevel(name string, level core.Level) error {
	if !level.Valid() {
		return core.ErrInvalidArgument
	}
	b.thresholds.Set(name, Translate(level))
	return nil
}

// Translate maps a facade level to its slog level. It panics for a level
// outside the closed set.
func Translate(level core.Level) slog.Level {
	switch level {
	case core.TraceLevel:
		return LevelTrace
	case core.DebugLevel:
		return slog.LevelDebug
	case core.InfoLevel:
		return slog.LevelInfo
	case core.WarnLevel:
		return slog.LevelWarn
	case core.ErrorLevel:
		return slog.LevelError
	default:
		core.UnknownLevel("slogbackend.Translate", level)
		return 0
	}
}

func newHandler(w io.Writer, format Format) slog.Handler {
	ho := &slog.HandlerOptions{
		Level:       LevelTrace,
		ReplaceAttr: replaceLevel,
	}
	if format == FormatJSON {
		return slog.NewJSONHandler(w, ho)
	}
	return slog.NewTextHandler(w, ho)
}

// replaceLevel renders LevelTrace as "TRACE" instead of "DEBUG-4".
func replaceLevel(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey && len(groups) == 0 {
		if l, ok := a.Value.Any().(slog.Level); ok && l == LevelTrace {
			a.Value = slog.StringValue("TRACE")
		}
	}
	return a
}

type adapter struct {
	name       string
	handler    slog.Handler
	thresholds *backend.Thresholds[slog.Level]
}

func (a *adapter) Enabled(level core.Level) bool {
	return a.enabled(Translate(level))
}

func (a *adapter) enabled(native slog.Level) bool {
	return a.thresholds.Enabled(a.name, native) && a.handler.Enabled(context.Background(), native)
}

func (a *adapter) Log(level core.Level, msg any, err error) error {
	native := Translate(level)
	if !a.enabled(native) {
		return nil
	}

	r := slog.NewRecord(time.Now(), native, backend.Text(msg), 0)
	if err != nil {
		r.AddAttrs(slog.Any("error", err))
	}
	return a.handler.Handle(context.Background(), r)
}
