package binding

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/rebind/internal/input/action"
	"github.com/dshills/rebind/internal/input/key"
	"github.com/dshills/rebind/internal/input/mouse"
	"github.com/dshills/rebind/internal/input/raw"
)

var (
	// ErrStateWithoutEdge is returned for a State binding on a pattern that
	// never reports press or release.
	ErrStateWithoutEdge = errors.New("state binding requires a key or button pattern")

	// ErrWindowPattern is returned for a pattern on a window event variant.
	ErrWindowPattern = errors.New("window events cannot be bound")

	// ErrRepeatState is returned when a binding requires the Repeat edge.
	ErrRepeatState = errors.New("required raw state must be press or release")

	// ErrGuardNotState is returned when the guard action is not a State action.
	ErrGuardNotState = errors.New("guard must be a state action")
)

// Pattern selects the raw events a binding applies to. A zero Key or
// Button matches any key or button.
type Pattern struct {
	Kind   raw.PayloadKind
	Key    key.Key
	Button mouse.Button
}

// KeyPattern matches key events for k, or any key when k is KeyNone.
func KeyPattern(k key.Key) Pattern {
	return Pattern{Kind: raw.KindKey, Key: k}
}

// ButtonPattern matches button events for b, or any button when b is ButtonNone.
func ButtonPattern(b mouse.Button) Pattern {
	return Pattern{Kind: raw.KindButton, Button: b}
}

// MotionPattern matches every cursor motion.
func MotionPattern() Pattern {
	return Pattern{Kind: raw.KindMotion}
}

// CharPattern matches every typed character.
func CharPattern() Pattern {
	return Pattern{Kind: raw.KindChar}
}

// String returns a compact form such as "key:Space" or "button:*".
func (p Pattern) String() string {
	switch p.Kind {
	case raw.KindKey:
		if p.Key == key.KeyNone {
			return "key:*"
		}
		return "key:" + p.Key.String()
	case raw.KindButton:
		if p.Button == mouse.ButtonNone {
			return "button:*"
		}
		return "button:" + p.Button.String()
	default:
		return p.Kind.String()
	}
}

// Binding maps one raw event pattern to an application action.
type Binding[A action.Action] struct {
	// Pattern is the raw event shape to match.
	Pattern Pattern

	// State is the required raw edge; nil accepts any.
	State *raw.Action

	// Modifiers must all be held; extra modifiers are allowed.
	Modifiers key.Modifier

	// Guard, when set, must be an active state for the binding to match.
	Guard *A

	// Action is emitted when the binding matches.
	Action A

	// Kind and Args are copied from Action at construction.
	Kind action.Kind
	Args []action.ArgKind
}

// New creates a binding for the given pattern and action.
func New[A action.Action](p Pattern, a A) Binding[A] {
	args := a.Args()
	return Binding[A]{
		Pattern: p,
		Action:  a,
		Kind:    a.Kind(),
		Args:    append([]action.ArgKind(nil), args...),
	}
}

// WithState sets the required raw edge.
func (b Binding[A]) WithState(s raw.Action) Binding[A] {
	b.State = &s
	return b
}

// WithModifiers sets the required modifiers.
func (b Binding[A]) WithModifiers(mods key.Modifier) Binding[A] {
	b.Modifiers = mods
	return b
}

// WithGuard requires g to be an active state.
func (b Binding[A]) WithGuard(g A) Binding[A] {
	b.Guard = &g
	return b
}

// Sanitize normalizes the edge requirement for the binding's kind.
// Action bindings without a required edge fire on Release; State bindings
// never carry one since both edges drive the state.
func (b Binding[A]) Sanitize() Binding[A] {
	switch b.Kind {
	case action.KindAction:
		if b.State == nil {
			return b.WithState(raw.Release)
		}
	case action.KindState:
		b.State = nil
	}
	return b
}

// Validate reports whether the binding can be registered.
func (b Binding[A]) Validate() error {
	switch b.Pattern.Kind {
	case raw.KindKey, raw.KindButton, raw.KindMotion, raw.KindChar:
	default:
		return fmt.Errorf("%s: %w", b.Pattern, ErrWindowPattern)
	}
	if b.State != nil && *b.State == raw.Repeat {
		return fmt.Errorf("%s: %w", b.Pattern, ErrRepeatState)
	}
	if b.Kind == action.KindState && !b.Pattern.Kind.HasEdge() {
		return fmt.Errorf("%s -> %v: %w", b.Pattern, b.Action, ErrStateWithoutEdge)
	}
	if b.Guard != nil && (*b.Guard).Kind() != action.KindState {
		return fmt.Errorf("%s -> %v: guard %v: %w", b.Pattern, b.Action, *b.Guard, ErrGuardNotState)
	}
	return nil
}

// String returns a description for logs and diagnostics.
func (b Binding[A]) String() string {
	var sb strings.Builder
	if !b.Modifiers.IsEmpty() {
		sb.WriteString(b.Modifiers.String())
		sb.WriteByte('+')
	}
	sb.WriteString(b.Pattern.String())
	if b.State != nil {
		sb.WriteByte(' ')
		sb.WriteString(b.State.String())
	}
	if b.Guard != nil {
		fmt.Fprintf(&sb, " [%v]", *b.Guard)
	}
	fmt.Fprintf(&sb, " -> %v (%s)", b.Action, b.Kind)
	return sb.String()
}

// StateReader exposes which State actions are currently active.
type StateReader[A comparable] interface {
	IsActive(a A) bool
}

// Match reports whether ev satisfies b given the current states. It has no
// side effects.
func Match[A action.Action](b Binding[A], ev raw.Event, states StateReader[A]) bool {
	if ev.Payload == nil || ev.Payload.Kind() != b.Pattern.Kind {
		return false
	}

	switch p := ev.Payload.(type) {
	case raw.Key:
		if b.Pattern.Key != key.KeyNone && b.Pattern.Key != p.Code {
			return false
		}
		if !edgeMatches(b.State, p.Action) || !p.Mods.Contains(b.Modifiers) {
			return false
		}
	case raw.Button:
		if b.Pattern.Button != mouse.ButtonNone && b.Pattern.Button != p.Button {
			return false
		}
		if !edgeMatches(b.State, p.Action) || !p.Mods.Contains(b.Modifiers) {
			return false
		}
	case raw.Motion, raw.Char:
	default:
		return false
	}

	if b.Guard != nil {
		return states != nil && states.IsActive(*b.Guard)
	}
	return true
}

// edgeMatches compares exactly: a required Press does not accept Repeat.
func edgeMatches(req *raw.Action, got raw.Action) bool {
	return req == nil || *req == got
}
