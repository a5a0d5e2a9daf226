package bindings

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a bindings file encoding.
type Format int

const (
	// FormatYAML also accepts JSON documents.
	FormatYAML Format = iota
	FormatTOML
	FormatLua
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatLua:
		return "lua"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses a format name. "yml" and "json" map to FormatYAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml", "json":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "lua":
		return FormatLua, nil
	}
	return 0, fmt.Errorf("unknown bindings format %q", s)
}

// FormatFromPath picks a format from the file extension, defaulting to YAML.
func FormatFromPath(path string) Format {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return FormatYAML
	}
	return f
}
