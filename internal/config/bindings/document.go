package bindings

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/rebind/internal/input/action"
	"github.com/dshills/rebind/internal/input/binding"
	"github.com/dshills/rebind/internal/input/key"
	"github.com/dshills/rebind/internal/input/mouse"
	"github.com/dshills/rebind/internal/input/raw"
)

// CurrentVersion is written by Encode.
const CurrentVersion = 1

// Document is the decoded form of a bindings file.
type Document struct {
	Version  int          `json:"version,omitempty" yaml:"version,omitempty"`
	Contexts []ContextDoc `json:"contexts" yaml:"contexts"`
}

// ContextDoc is one context entry.
type ContextDoc struct {
	ID       string       `json:"id" yaml:"id"`
	Bindings []BindingDoc `json:"bindings,omitempty" yaml:"bindings,omitempty"`
}

// BindingDoc is one binding entry. Key and Button are names; empty means
// any key or button.
type BindingDoc struct {
	Raw         string   `json:"raw" yaml:"raw"`
	Key         string   `json:"key,omitempty" yaml:"key,omitempty"`
	Button      string   `json:"button,omitempty" yaml:"button,omitempty"`
	State       string   `json:"state,omitempty" yaml:"state,omitempty"`
	Modifiers   []string `json:"modifiers,omitempty" yaml:"modifiers,omitempty,flow"`
	StateActive string   `json:"state_active,omitempty" yaml:"state_active,omitempty"`
	Action      string   `json:"action" yaml:"action"`
}

// FromContexts converts registered contexts back into a document. Actions
// and context ids are written with fmt's %v verb, so they should implement
// fmt.Stringer with the names their parsers accept.
func FromContexts[A action.Action, C comparable](ctxs []binding.Context[A, C]) Document {
	doc := Document{Version: CurrentVersion}
	for _, c := range ctxs {
		cd := ContextDoc{ID: fmt.Sprint(c.ID)}
		for _, b := range c.Bindings {
			cd.Bindings = append(cd.Bindings, bindingDoc(b))
		}
		doc.Contexts = append(doc.Contexts, cd)
	}
	return doc
}

func bindingDoc[A action.Action](b binding.Binding[A]) BindingDoc {
	bd := BindingDoc{
		Raw:    b.Pattern.Kind.String(),
		Action: fmt.Sprint(b.Action),
	}
	if b.Pattern.Key != key.KeyNone {
		bd.Key = strings.ToLower(b.Pattern.Key.String())
	}
	if b.Pattern.Button != mouse.ButtonNone {
		bd.Button = b.Pattern.Button.String()
	}
	if b.State != nil && b.Pattern.Kind.HasEdge() {
		bd.State = b.State.String()
	}
	for _, name := range b.Modifiers.Names() {
		bd.Modifiers = append(bd.Modifiers, strings.ToLower(name))
	}
	if b.Guard != nil {
		bd.StateActive = fmt.Sprint(*b.Guard)
	}
	return bd
}

// Encode writes doc as YAML.
func Encode(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode bindings: %w", err)
	}
	return enc.Close()
}

// rawKind maps a document raw name to a pattern variant.
func rawKind(s string) (raw.PayloadKind, bool) {
	k, err := raw.ParsePayloadKind(s)
	if err != nil || !k.HasEdge() && k != raw.KindMotion && k != raw.KindChar {
		return 0, false
	}
	return k, true
}
