package cli

import (
	"log/slog"

	"github.com/dshills/rebind/internal/config/bindings"
	"github.com/dshills/rebind/internal/demo"
	"github.com/dshills/rebind/internal/input/binding"
)

type demoContexts = []binding.Context[demo.Action, demo.ContextID]

func newLoader(logger *slog.Logger) *bindings.Loader[demo.Action, demo.ContextID] {
	l := bindings.NewLoader(demo.ParseAction, demo.ParseContextID)
	l.SetLogger(logger)
	return l
}

// loadBindings loads path, or returns the built-in contexts when path is
// empty. format overrides detection by extension when set.
func loadBindings(path, format string, logger *slog.Logger) (*bindings.Result[demo.Action, demo.ContextID], error) {
	if path == "" {
		return &bindings.Result[demo.Action, demo.ContextID]{
			Source:   "built-in",
			Contexts: demo.Contexts(),
		}, nil
	}

	f, err := bindingsFormat(path, format)
	if err != nil {
		return nil, err
	}
	res, err := newLoader(logger).LoadFileFormat(path, f)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load bindings", err)
	}
	return res, nil
}

func bindingsFormat(path, format string) (bindings.Format, error) {
	if format == "" {
		return bindings.FormatFromPath(path), nil
	}
	f, err := bindings.ParseFormat(format)
	if err != nil {
		return 0, NewExitError(ExitCommandError, err.Error())
	}
	return f, nil
}
