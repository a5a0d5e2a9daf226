package bindings

import (
	"fmt"
	"strings"

	"github.com/dshills/rebind/internal/input/action"
	"github.com/dshills/rebind/internal/input/binding"
	"github.com/dshills/rebind/internal/input/key"
	"github.com/dshills/rebind/internal/input/mouse"
	"github.com/dshills/rebind/internal/input/raw"
)

// Diagnostic records a context or binding dropped while resolving a
// document. Index is -1 when the whole context was dropped.
type Diagnostic struct {
	Context string
	Index   int
	Reason  string
}

func (d Diagnostic) String() string {
	if d.Index < 0 {
		return fmt.Sprintf("context %q dropped: %s", d.Context, d.Reason)
	}
	return fmt.Sprintf("context %q binding %d dropped: %s", d.Context, d.Index, d.Reason)
}

// Resolve converts a document into contexts using the application's
// identifier parsers. Entries that cannot be resolved are dropped and
// reported; the remaining bindings are sanitized and valid for
// registration.
func Resolve[A action.Action, C comparable](
	doc Document,
	parseAction func(string) (A, bool),
	parseContext func(string) (C, bool),
) ([]binding.Context[A, C], []Diagnostic) {
	var (
		out   []binding.Context[A, C]
		diags []Diagnostic
		seen  = make(map[C]bool)
	)

	for _, cd := range doc.Contexts {
		id, ok := parseContext(cd.ID)
		if !ok {
			diags = append(diags, Diagnostic{Context: cd.ID, Index: -1, Reason: "unknown context id"})
			continue
		}
		if seen[id] {
			diags = append(diags, Diagnostic{Context: cd.ID, Index: -1, Reason: "duplicate context id"})
			continue
		}
		seen[id] = true

		ctx := binding.Context[A, C]{ID: id}
		for i, bd := range cd.Bindings {
			b, reason := resolveBinding(bd, parseAction)
			if reason != "" {
				diags = append(diags, Diagnostic{Context: cd.ID, Index: i, Reason: reason})
				continue
			}
			b = b.Sanitize()
			if err := b.Validate(); err != nil {
				diags = append(diags, Diagnostic{Context: cd.ID, Index: i, Reason: err.Error()})
				continue
			}
			ctx.Bindings = append(ctx.Bindings, b)
		}
		out = append(out, ctx)
	}
	return out, diags
}

func resolveBinding[A action.Action](bd BindingDoc, parseAction func(string) (A, bool)) (binding.Binding[A], string) {
	var zero binding.Binding[A]

	kind, ok := rawKind(bd.Raw)
	if !ok {
		return zero, fmt.Sprintf("unknown raw pattern %q", bd.Raw)
	}

	p := binding.Pattern{Kind: kind}
	switch kind {
	case raw.KindKey:
		if name := strings.TrimSpace(bd.Key); name != "" && name != "*" {
			p.Key = key.FromName(name)
			if p.Key == key.KeyNone {
				return zero, fmt.Sprintf("unknown key %q", bd.Key)
			}
		}
	case raw.KindButton:
		if name := strings.TrimSpace(bd.Button); name != "" && name != "*" {
			p.Button = mouse.FromName(name)
			if p.Button == mouse.ButtonNone {
				return zero, fmt.Sprintf("unknown button %q", bd.Button)
			}
		}
	}

	a, ok := parseAction(bd.Action)
	if !ok {
		return zero, fmt.Sprintf("unknown action %q", bd.Action)
	}
	b := binding.New(p, a)

	if bd.State != "" {
		s, err := raw.ParseAction(bd.State)
		if err != nil {
			return zero, err.Error()
		}
		b = b.WithState(s)
	}

	var mods key.Modifier
	for _, name := range bd.Modifiers {
		m := key.ModifierFromName(name)
		if m == key.ModNone {
			return zero, fmt.Sprintf("unknown modifier %q", name)
		}
		mods = mods.With(m)
	}
	b = b.WithModifiers(mods)

	if bd.StateActive != "" {
		g, ok := parseAction(bd.StateActive)
		if !ok {
			return zero, fmt.Sprintf("unknown state_active action %q", bd.StateActive)
		}
		if g.Kind() != action.KindState {
			return zero, fmt.Sprintf("state_active action %q is not a state", bd.StateActive)
		}
		b = b.WithGuard(g)
	}
	return b, ""
}
