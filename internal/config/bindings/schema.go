package bindings

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "https://github.com/dshills/rebind/bindings.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// Schema returns the raw JSON Schema that bindings documents must satisfy.
func Schema() []byte {
	return bytes.Clone(schemaJSON)
}

func compileSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft7
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// normalize converts decoder output into plain JSON values so the schema
// sees the same types regardless of the source encoding.
func normalize(v any) (any, []byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, nil, err
	}
	return out, data, nil
}

// validate checks a normalized document against the schema.
func validate(v any) error {
	s, err := compileSchema()
	if err != nil {
		return err
	}
	return s.Validate(v)
}
