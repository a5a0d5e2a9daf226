package bindings

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decode turns source text into generic values.
func decode(data []byte, f Format, source string) (any, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	switch f {
	case FormatYAML:
		return decodeYAML(data)
	case FormatTOML:
		return decodeTOML(data)
	case FormatLua:
		return decodeLua(string(data), source)
	}
	return nil, fmt.Errorf("unsupported format %v", f)
}

func decodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	if v == nil {
		return map[string]any{}, nil
	}
	return v, nil
}

func decodeTOML(data []byte) (any, error) {
	var v map[string]any
	if err := toml.Unmarshal(data, &v); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("line %d, column %d: %w", row, col, err)
		}
		return nil, err
	}
	if v == nil {
		v = map[string]any{}
	}
	return v, nil
}
