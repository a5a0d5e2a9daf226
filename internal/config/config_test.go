package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/rebind/internal/logging"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Window, cfg.Window)
	assert.Empty(t, cfg.Source)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "rebind.toml", `
[bindings]
path = "bindings.yaml"
watch = true
debounce_ms = 250

[window]
width = 800
height = 600

[state]
retention = 30.0

[log]
level = "debug"
format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, filepath.Join(dir, "bindings.yaml"), cfg.Bindings.Path)
	assert.True(t, cfg.Bindings.Watch)
	assert.Equal(t, int64(250), cfg.Bindings.Debounce().Milliseconds())
	assert.Equal(t, WindowConfig{Width: 800, Height: 600}, cfg.Window)
	assert.Equal(t, 30.0, cfg.State.Retention)

	lc := cfg.Logging()
	assert.Equal(t, logging.LevelDebug, lc.Level)
	assert.Equal(t, logging.FormatJSON, lc.Format)
	assert.Equal(t, "stderr", lc.Output)
}

func TestLoadKeepsAbsoluteBindingsPath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "elsewhere.lua")
	path := writeFile(t, t.TempDir(), "rebind.toml", "[bindings]\npath = \""+filepath.ToSlash(abs)+"\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.ToSlash(abs), filepath.ToSlash(cfg.Bindings.Path))
}

func TestLoadParseError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.toml", "[window]\nwidth = \n")

	_, err := Load(path)
	require.Error(t, err)
	var perr *ParseError
	require.True(t, errors.As(err, &perr), "got %T", err)
	assert.Equal(t, path, perr.Path)
	assert.Equal(t, 2, perr.Line)
}

func TestLoadUnknownField(t *testing.T) {
	path := writeFile(t, t.TempDir(), "extra.toml", "[window]\ndepth = 3\n")

	_, err := Load(path)
	var perr *ParseError
	assert.True(t, errors.As(err, &perr), "got %v", err)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("REBIND_BINDINGS", "/tmp/b.toml")
	t.Setenv("REBIND_WATCH", "true")
	t.Setenv("REBIND_WINDOW_WIDTH", "1920")
	t.Setenv("REBIND_STATE_RETENTION", "2.5")
	t.Setenv("REBIND_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/b.toml", cfg.Bindings.Path)
	assert.True(t, cfg.Bindings.Watch)
	assert.Equal(t, uint32(1920), cfg.Window.Width)
	assert.Equal(t, 2.5, cfg.State.Retention)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestApplyEnvErrors(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		field string
	}{
		{"watch", map[string]string{"REBIND_WATCH": "maybe"}, "REBIND_WATCH"},
		{"width", map[string]string{"REBIND_WINDOW_WIDTH": "-1"}, "REBIND_WINDOW_WIDTH"},
		{"retention", map[string]string{"REBIND_STATE_RETENTION": "soon"}, "REBIND_STATE_RETENTION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := cfg.ApplyEnv(func(k string) (string, bool) {
				v, ok := tt.env[k]
				return v, ok
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidationFailed)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Path)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"ok", func(*Config) {}, ""},
		{"format", func(c *Config) { c.Bindings.Format = "ron" }, "bindings.format"},
		{"debounce", func(c *Config) { c.Bindings.DebounceMS = -1 }, "bindings.debounce_ms"},
		{"window", func(c *Config) { c.Window.Height = 0 }, "window"},
		{"retention", func(c *Config) { c.State.Retention = -3 }, "state.retention"},
		{"level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.path == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.path, verr.Path)
		})
	}
}

func TestLoadReader(t *testing.T) {
	cfg, err := LoadReader(strings.NewReader("[bindings]\nformat = \"lua\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "lua", cfg.Bindings.Format)

	_, err = LoadReader(strings.NewReader("[bindings]\nformat = \"ron\"\n"))
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestParseErrorMessage(t *testing.T) {
	e := &ParseError{Path: "a.toml", Line: 3, Column: 7, Message: "boom"}
	assert.Equal(t, "parse error in a.toml at line 3, column 7: boom", e.Error())
	e = &ParseError{Path: "a.toml", Message: "boom"}
	assert.Equal(t, "parse error in a.toml: boom", e.Error())
}
