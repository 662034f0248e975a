package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/dshills/mapstorm/internal/config/loader"
	"github.com/dshills/mapstorm/internal/engine"
	"github.com/dshills/mapstorm/internal/logging"
	"github.com/dshills/mapstorm/internal/tools"
)

// Config holds every mapstorm setting.
type Config struct {
	History HistoryConfig `mapstructure:"history"`
	Logging LoggingConfig `mapstructure:"logging"`
	Tools   ToolsConfig   `mapstructure:"tools"`
	Script  ScriptConfig  `mapstructure:"script"`

	// Path is the file the settings were read from, if any.
	Path string `mapstructure:"-"`
}

// HistoryConfig contains undo history settings.
type HistoryConfig struct {
	MaxEntries int `mapstructure:"max_entries"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// ToolsConfig contains map tool settings.
type ToolsConfig struct {
	Default string `mapstructure:"default"`
}

// ScriptConfig contains Lua script settings.
type ScriptConfig struct {
	// InstructionLimit caps map module calls per run; 0 disables the cap.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// Default returns the built-in settings.
func Default() *Config {
	cfg, _ := Decode(defaultConfig())
	return cfg
}

func defaultConfig() map[string]any {
	return map[string]any{
		"history": map[string]any{
			"max_entries": engine.DefaultMaxUndoEntries,
		},
		"logging": map[string]any{
			"level": "info",
		},
		"tools": map[string]any{
			"default": tools.NameAdd,
		},
		"script": map[string]any{
			"instruction_limit": 1_000_000,
		},
	}
}

// LogLevel returns the parsed logging level.
func (c *Config) LogLevel() slog.Level {
	return logging.ParseLevel(c.Logging.Level)
}

// Option configures loading and watching.
type Option func(*options)

type options struct {
	fs        loader.FileSystem
	environ   []string
	useOSEnv  bool
	envPrefix string
	debounce  time.Duration
	logger    *slog.Logger
}

func newOptions(opts []Option) *options {
	o := &options{
		fs:        loader.DefaultFS(),
		useOSEnv:  true,
		envPrefix: loader.DefaultEnvPrefix,
		debounce:  100 * time.Millisecond,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithFileSystem reads the config file through fsys.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(o *options) {
		if fsys != nil {
			o.fs = fsys
		}
	}
}

// WithEnviron reads overrides from a KEY=value list instead of the
// process environment.
func WithEnviron(environ []string) Option {
	return func(o *options) {
		o.environ = environ
		o.useOSEnv = false
	}
}

// WithEnvPrefix changes the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithDebounce sets how long Watch waits for writes to settle.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.debounce = d
		}
	}
}

// WithLogger sets the logger used by Watch.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Load reads settings from path and the environment over the defaults.
// An empty path or a missing file leaves the file layer empty.
func Load(path string, opts ...Option) (*Config, error) {
	return load(path, newOptions(opts))
}

func load(path string, o *options) (*Config, error) {
	merged := defaultConfig()

	if path != "" {
		file, err := loader.NewTOMLLoaderWithFS(o.fs, path).Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, file)
	}

	env := loader.NewEnvLoader(o.envPrefix)
	if !o.useOSEnv {
		env = loader.NewEnvLoaderWithEnviron(o.envPrefix, o.environ)
	}
	envCfg, err := env.Load()
	if err != nil {
		return nil, err
	}
	merged = loader.DeepMerge(merged, envCfg)

	cfg, err := Decode(merged)
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode converts a raw settings map into a Config.
// Numbers given as strings are converted; unknown keys are ignored.
func Decode(raw map[string]any) (*Config, error) {
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating config decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &cfg, nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if c.History.MaxEntries <= 0 {
		return &ValidationError{Key: "history.max_entries", Value: c.History.MaxEntries, Message: "must be positive"}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Key: "logging.level", Value: c.Logging.Level, Message: "must be debug, info, warn or error"}
	}
	switch c.Tools.Default {
	case tools.NameAdd, tools.NameSelect, tools.NameDelete:
	default:
		return &ValidationError{Key: "tools.default", Value: c.Tools.Default, Message: "unknown tool"}
	}
	if c.Script.InstructionLimit < 0 {
		return &ValidationError{Key: "script.instruction_limit", Value: c.Script.InstructionLimit, Message: "must not be negative"}
	}
	return nil
}
