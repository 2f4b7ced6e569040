package zapbackend

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logfacade/backend"
	"github.com/philipp01105/logfacade/core"
)

// Name is the backend name reported to the registry.
const Name = "zap"

// TraceLevel is the native level TRACE translates to.
const TraceLevel = zapcore.DebugLevel - 1

// callerSkip drops the adapter and the facade method from caller and
// stack information, so records point at the code calling the Logger.
const callerSkip = 2

// Options configures a Backend.
type Options struct {
	// Config is built on the first Probe (default: NewConfig()).
	Config *zap.Config
	// Core, when set, is used as is and Config is ignored.
	Core zapcore.Core
	// ZapOptions are applied when the logger is built, after the options
	// implied by Config.
	ZapOptions []zap.Option
	// Level is the root threshold (default: InfoLevel).
	Level core.Level
	// Levels holds per-name thresholds.
	Levels map[string]core.Level
}

// Backend produces zap-backed adapters that share one core.
type Backend struct {
	config     zap.Config
	options    []zap.Option
	once       sync.Once
	core       zapcore.Core
	base       *zap.Logger
	err        error
	thresholds *backend.Thresholds[zapcore.Level]
}

// NewConfig returns the production config with sampling off, the level
// opened down to TraceLevel and LevelEncoder installed. Thresholds are
// applied per name by the backend, not by the config.
func NewConfig() zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(TraceLevel)
	cfg.Sampling = nil
	cfg.EncoderConfig.EncodeLevel = LevelEncoder
	return cfg
}

// New creates a zap backend. Nothing is built until Probe.
func New(opts Options) *Backend {
	cfg := NewConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}

	root := opts.Level
	if root == 0 {
		root = core.InfoLevel
	}
	b := &Backend{
		config:     cfg,
		options:    append(append([]zap.Option(nil), opts.ZapOptions...), zap.AddCallerSkip(callerSkip)),
		core:       opts.Core,
		thresholds: backend.NewThresholds(Translate(root)),
	}
	for name, l := range opts.Levels {
		b.thresholds.Set(name, Translate(l))
	}
	return b
}

// Name implements backend.Backend.
func (b *Backend) Name() string { return Name }

// Probe implements backend.Backend. The logger is built at most once.
func (b *Backend) Probe() error {
	b.once.Do(func() {
		if b.core != nil {
			b.base = zap.New(b.core, b.options...)
			return
		}
		l, err := b.config.Build(b.options...)
		if err != nil {
			b.err = fmt.Errorf("zapbackend: build logger: %w", err)
			return
		}
		b.base = l
	})
	return b.err
}

// Adapter implements backend.Backend. Each adapter owns a named child of
// the built logger whose core is gated by the name's threshold.
func (b *Backend) Adapter(name string) (backend.Adapter, error) {
	if err := b.Probe(); err != nil {
		return nil, err
	}
	var lc *levelCore
	l := b.base.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		lc = &levelCore{Core: c, name: name, thresholds: b.thresholds}
		return lc
	})).Named(name)
	return &adapter{logger: l, core: lc}, nil
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

// Sync implements backend.Syncer.
func (b *Backend) Sync() error {
	if b.Probe() != nil {
		return nil
	}
	return b.base.Sync()
}

// Translate maps a facade level to its zap level. It panics for a level
// outside the closed set.
func Translate(level core.Level) zapcore.Level {
	switch level {
	case core.TraceLevel:
		return TraceLevel
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		core.UnknownLevel("zapbackend.Translate", level)
		return 0
	}
}

// LevelEncoder is zapcore.LowercaseLevelEncoder extended with "trace".
func LevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	if l == TraceLevel {
		enc.AppendString("trace")
		return
	}
	zapcore.LowercaseLevelEncoder(l, enc)
}

type adapter struct {
	logger *zap.Logger
	core   zapcore.Core
}

func (a *adapter) Enabled(level core.Level) bool {
	return a.core.Enabled(Translate(level))
}

func (a *adapter) Log(level core.Level, msg any, err error) error {
	native := Translate(level)
	if !a.core.Enabled(native) {
		return nil
	}

	ce := a.logger.Check(native, backend.Text(msg))
	if ce == nil {
		return nil
	}
	var fields []zapcore.Field
	if err != nil {
		fields = []zapcore.Field{zap.Error(err)}
	}
	// ce.Entry carries the caller and stack the logger's options asked
	// for. CheckedEntry.Write only reports failures to ErrorOutput, so
	// the entry goes to the core directly and its error is returned.
	return a.core.Write(ce.Entry, fields)
}
