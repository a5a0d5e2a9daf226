package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/rebind/internal/logging"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "REBIND_"

// Config is the application configuration.
type Config struct {
	Bindings BindingsConfig `toml:"bindings"`
	Window   WindowConfig   `toml:"window"`
	State    StateConfig    `toml:"state"`
	Log      LogConfig      `toml:"log"`

	// Source is the file the configuration was read from, if any.
	Source string `toml:"-"`
}

// BindingsConfig locates the bindings file.
type BindingsConfig struct {
	// Path is resolved relative to the configuration file.
	Path string `toml:"path"`

	// Format overrides detection by extension: yaml, toml or lua.
	Format string `toml:"format"`

	// Watch reloads the bindings when the file changes.
	Watch bool `toml:"watch"`

	// DebounceMS coalesces bursts of file events.
	DebounceMS int `toml:"debounce_ms"`
}

// Debounce returns DebounceMS as a duration.
func (b BindingsConfig) Debounce() time.Duration {
	return time.Duration(b.DebounceMS) * time.Millisecond
}

// WindowConfig is the initial window size handed to the remapper.
type WindowConfig struct {
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
}

// StateConfig tunes the state store.
type StateConfig struct {
	// Retention in seconds before released states are pruned; 0 keeps them.
	Retention float64 `toml:"retention"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Bindings: BindingsConfig{DebounceMS: 100},
		Window:   WindowConfig{Width: 1024, Height: 768},
		Log:      LogConfig{Level: "info", Format: "text", Output: "stderr"},
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error; the defaults are used.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := decode(path, data, &cfg); err != nil {
				return Config{}, err
			}
			cfg.Source = path
			cfg.resolvePaths(filepath.Dir(path))
		case errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("%w: %s: %v", ErrReadFailed, path, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadReader reads TOML from r over the defaults. Environment overrides
// are not applied.
func LoadReader(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	cfg := Default()
	if err := decode("<reader>", data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(source string, data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return perr
	}
	return nil
}

func (c *Config) resolvePaths(dir string) {
	if c.Bindings.Path != "" && !filepath.IsAbs(c.Bindings.Path) {
		c.Bindings.Path = filepath.Join(dir, c.Bindings.Path)
	}
}

// ApplyEnv applies REBIND_* overrides using lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	str("BINDINGS", &c.Bindings.Path)
	str("BINDINGS_FORMAT", &c.Bindings.Format)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	str("LOG_OUTPUT", &c.Log.Output)

	if v, ok := lookup(EnvPrefix + "WATCH"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &ValidationError{Path: EnvPrefix + "WATCH", Message: "not a boolean", Value: v}
		}
		c.Bindings.Watch = b
	}
	for name, dst := range map[string]*uint32{
		"WINDOW_WIDTH":  &c.Window.Width,
		"WINDOW_HEIGHT": &c.Window.Height,
	} {
		if v, ok := lookup(EnvPrefix + name); ok {
			n, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				return &ValidationError{Path: EnvPrefix + name, Message: "not an unsigned integer", Value: v}
			}
			*dst = uint32(n)
		}
	}
	if v, ok := lookup(EnvPrefix + "STATE_RETENTION"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return &ValidationError{Path: EnvPrefix + "STATE_RETENTION", Message: "not a number", Value: v}
		}
		c.State.Retention = f
	}
	return nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	switch strings.ToLower(c.Bindings.Format) {
	case "", "yaml", "yml", "toml", "lua":
	default:
		return &ValidationError{Path: "bindings.format", Message: "must be yaml, toml or lua", Value: c.Bindings.Format}
	}
	if c.Bindings.DebounceMS < 0 {
		return &ValidationError{Path: "bindings.debounce_ms", Message: "must not be negative", Value: c.Bindings.DebounceMS}
	}
	if c.Window.Width == 0 || c.Window.Height == 0 {
		return &ValidationError{Path: "window", Message: "size must be non-zero", Value: fmt.Sprintf("%dx%d", c.Window.Width, c.Window.Height)}
	}
	if c.State.Retention < 0 {
		return &ValidationError{Path: "state.retention", Message: "must not be negative", Value: c.State.Retention}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return &ValidationError{Path: "log.level", Message: err.Error(), Value: c.Log.Level}
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return &ValidationError{Path: "log.format", Message: err.Error(), Value: c.Log.Format}
	}
	return nil
}

// Logging converts the log section into a logging.Config. Validate must
// have passed.
func (c Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level, _ = logging.ParseLevel(c.Log.Level)
	cfg.Format, _ = logging.ParseFormat(c.Log.Format)
	if c.Log.Output != "" {
		cfg.Output = c.Log.Output
	}
	return cfg
}
