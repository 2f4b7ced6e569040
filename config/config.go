package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/philipp01105/logfacade/core"
)

// Backend choices
const (
	BackendAuto = "auto"
	BackendZap  = "zap"
	BackendSlog = "slog"
)

// Environment variables read by FromEnv
const (
	EnvConfig  = "LOGFACADE_CONFIG"
	EnvBackend = "LOGFACADE_BACKEND"
	EnvLevel   = "LOGFACADE_LEVEL"
)

// Config is the complete configuration of the default registry.
type Config struct {
	// Backend is auto, zap or slog. Auto prefers zap and falls back to slog.
	Backend string `yaml:"backend"`
	// Level is the root threshold.
	Level core.Level `yaml:"level"`
	// Levels holds thresholds per dotted logger name.
	Levels map[string]core.Level `yaml:"levels"`
	Slog   SlogConfig            `yaml:"slog"`
	Zap    ZapConfig             `yaml:"zap"`
}

// SlogConfig configures the baseline backend.
type SlogConfig struct {
	// Format is text or json.
	Format string `yaml:"format"`
	// Output is stderr, stdout or a file path.
	Output string `yaml:"output"`
}

// ZapConfig configures the zap backend.
type ZapConfig struct {
	// Encoding is json or console.
	Encoding         string   `yaml:"encoding"`
	OutputPaths      []string `yaml:"output_paths"`
	ErrorOutputPaths []string `yaml:"error_output_paths"`
	Development      bool     `yaml:"development"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Backend: BackendAuto,
		Level:   core.InfoLevel,
		Slog: SlogConfig{
			Format: "text",
			Output: "stderr",
		},
		Zap: ZapConfig{
			Encoding:         "json",
			OutputPaths:      []string{"stderr"},
			ErrorOutputPaths: []string{"stderr"},
		},
	}
}

// Parse decodes YAML on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv builds the configuration from the environment.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if path, ok := lookup(EnvConfig); ok && path != "" {
		loaded, err := Load(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	return overrideLookup(cfg, lookup)
}

// OverrideFromEnv applies the backend and level variables to cfg. It is
// for callers that load the file themselves; EnvConfig is not read.
func OverrideFromEnv(cfg Config) (Config, error) {
	return overrideLookup(cfg, os.LookupEnv)
}

func overrideLookup(cfg Config, lookup func(string) (string, bool)) (Config, error) {
	if b, ok := lookup(EnvBackend); ok && b != "" {
		cfg.Backend = b
	}
	if s, ok := lookup(EnvLevel); ok && s != "" {
		l, err := core.ParseLevel(s)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvLevel, err)
		}
		cfg.Level = l
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Backend {
	case "", BackendAuto, BackendZap, BackendSlog:
	default:
		return fmt.Errorf("config: %w: unknown backend %q", core.ErrInvalidArgument, c.Backend)
	}
	if !c.Level.Valid() {
		return fmt.Errorf("config: %w: root level is unset", core.ErrInvalidArgument)
	}
	for name, l := range c.Levels {
		if name == "" {
			return fmt.Errorf("config: %w: empty logger name in levels", core.ErrInvalidArgument)
		}
		if !l.Valid() {
			return fmt.Errorf("config: %w: invalid level for %q", core.ErrInvalidArgument, name)
		}
	}
	switch c.Slog.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("config: %w: unknown slog format %q", core.ErrInvalidArgument, c.Slog.Format)
	}
	switch c.Zap.Encoding {
	case "", "json", "console":
	default:
		return fmt.Errorf("config: %w: unknown zap encoding %q", core.ErrInvalidArgument, c.Zap.Encoding)
	}
	return nil
}
