package bindings

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/dshills/rebind/internal/input/action"
	"github.com/dshills/rebind/internal/input/binding"
)

// Result is a loaded bindings file.
type Result[A action.Action, C comparable] struct {
	Source      string
	Format      Format
	Contexts    []binding.Context[A, C]
	Diagnostics []Diagnostic
}

// Loader reads bindings files for one action vocabulary.
type Loader[A action.Action, C comparable] struct {
	parseAction  func(string) (A, bool)
	parseContext func(string) (C, bool)
	logger       *slog.Logger
}

// NewLoader creates a loader that resolves identifiers with the given
// parsers.
func NewLoader[A action.Action, C comparable](
	parseAction func(string) (A, bool),
	parseContext func(string) (C, bool),
) *Loader[A, C] {
	return &Loader[A, C]{
		parseAction:  parseAction,
		parseContext: parseContext,
		logger:       slog.New(slog.DiscardHandler),
	}
}

// SetLogger sets the logger used to report dropped bindings.
func (l *Loader[A, C]) SetLogger(logger *slog.Logger) {
	if logger != nil {
		l.logger = logger
	}
}

// LoadFile loads path, choosing the format from its extension.
func (l *Loader[A, C]) LoadFile(path string) (*Result[A, C], error) {
	return l.LoadFileFormat(path, FormatFromPath(path))
}

// LoadFileFormat loads path in the given format.
func (l *Loader[A, C]) LoadFileFormat(path string, f Format) (*Result[A, C], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, loadError(ErrFileNotFound, path, err)
		}
		return nil, loadError(ErrReadFailed, path, err)
	}
	return l.Parse(data, f, path)
}

// LoadReader reads everything from r and parses it.
func (l *Loader[A, C]) LoadReader(r io.Reader, f Format, source string) (*Result[A, C], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, loadError(ErrReadFailed, source, err)
	}
	return l.Parse(data, f, source)
}

// Parse decodes, validates and resolves data.
func (l *Loader[A, C]) Parse(data []byte, f Format, source string) (*Result[A, C], error) {
	doc, err := ParseDocument(data, f, source)
	if err != nil {
		return nil, err
	}

	ctxs, diags := Resolve(doc, l.parseAction, l.parseContext)
	for _, d := range diags {
		l.logger.Warn("binding dropped", "source", source, "context", d.Context, "index", d.Index, "reason", d.Reason)
	}
	l.logger.Debug("bindings loaded", "source", source, "format", f.String(), "contexts", len(ctxs), "dropped", len(diags))

	return &Result[A, C]{
		Source:      source,
		Format:      f,
		Contexts:    ctxs,
		Diagnostics: diags,
	}, nil
}

// ParseDocument decodes and schema-checks data without resolving
// identifiers.
func ParseDocument(data []byte, f Format, source string) (Document, error) {
	if !utf8.Valid(data) {
		return Document{}, loadError(ErrUTF8, source, nil)
	}

	v, err := decode(data, f, source)
	if err != nil {
		return Document{}, loadError(ErrParse, source, err)
	}
	norm, js, err := normalize(v)
	if err != nil {
		return Document{}, loadError(ErrParse, source, err)
	}
	if err := validate(norm); err != nil {
		return Document{}, loadError(ErrParse, source, err)
	}

	var doc Document
	if err := json.Unmarshal(js, &doc); err != nil {
		return Document{}, loadError(ErrParse, source, err)
	}
	return doc, nil
}
