package remap

import (
	"fmt"
	"strings"

	"github.com/dshills/rebind/internal/input/action"
	"github.com/dshills/rebind/internal/input/key"
	"github.com/dshills/rebind/internal/input/mouse"
	"github.com/dshills/rebind/internal/input/raw"
)

// EventKind discriminates emitted events.
type EventKind uint8

const (
	// EventWindow events are derived from resize, focus and close payloads.
	EventWindow EventKind = iota
	// EventController events are produced by matched bindings.
	EventController
)

// WindowKind discriminates window events.
type WindowKind uint8

const (
	WindowResize WindowKind = iota
	WindowFocus
	WindowClose
)

// String returns the window event name.
func (k WindowKind) String() string {
	switch k {
	case WindowResize:
		return "resize"
	case WindowFocus:
		return "focus"
	case WindowClose:
		return "close"
	default:
		return fmt.Sprintf("WindowKind(%d)", k)
	}
}

// WindowEvent describes a change to the host window.
type WindowEvent struct {
	Kind    WindowKind
	Width   uint32
	Height  uint32
	Focused bool
}

// String returns a compact description.
func (w WindowEvent) String() string {
	switch w.Kind {
	case WindowResize:
		return fmt.Sprintf("Window.Resize(%d, %d)", w.Width, w.Height)
	case WindowFocus:
		return fmt.Sprintf("Window.Focus(%t)", w.Focused)
	default:
		return "Window.Close"
	}
}

// Transition is the change a State event reports.
type Transition uint8

const (
	// Activated is the false to true edge.
	Activated Transition = iota
	// Active means the state was already held.
	Active
	// Deactivated is the true to false edge.
	Deactivated
)

// String returns the transition name.
func (t Transition) String() string {
	switch t {
	case Activated:
		return "Activated"
	case Active:
		return "Active"
	case Deactivated:
		return "Deactivated"
	default:
		return fmt.Sprintf("Transition(%d)", t)
	}
}

// Arg is one extracted argument. Only the field selected by Kind is set.
type Arg[C comparable] struct {
	Kind     action.ArgKind
	Key      key.Key
	Value    rune
	Mods     key.Modifier
	Action   raw.Action
	Position mouse.Position
	Context  C
}

// String returns the argument as Kind(value).
func (a Arg[C]) String() string {
	switch a.Kind {
	case action.ArgKeyCode:
		return fmt.Sprintf("KeyCode(%s)", a.Key)
	case action.ArgValue:
		return fmt.Sprintf("Value(%q)", a.Value)
	case action.ArgModifiers:
		return fmt.Sprintf("Modifiers(%s)", a.Mods)
	case action.ArgAction:
		return fmt.Sprintf("Action(%s)", a.Action)
	case action.ArgCursorPosition:
		return fmt.Sprintf("CursorPosition(%.3f, %.3f)", a.Position.X, a.Position.Y)
	case action.ArgContextID:
		return fmt.Sprintf("ContextId(%v)", a.Context)
	default:
		return a.Kind.String()
	}
}

// ControllerEvent is the classified result of a matched binding.
type ControllerEvent[A action.Action, C comparable] struct {
	// Kind is the action kind that produced the event.
	Kind   action.Kind
	Action A

	// Transition and Duration are set for State events.
	Transition Transition
	Duration   float64

	// Delta is set for Range events.
	Delta mouse.Position

	Args []Arg[C]
}

// Arg returns the first argument of the given kind.
func (c ControllerEvent[A, C]) Arg(kind action.ArgKind) (Arg[C], bool) {
	for _, a := range c.Args {
		if a.Kind == kind {
			return a, true
		}
	}
	return Arg[C]{}, false
}

// String returns a compact description such as
// "State(Click, Activated, 0.000, [CursorPosition(0.100, 0.100)])".
func (c ControllerEvent[A, C]) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	joined := "[" + strings.Join(args, ", ") + "]"

	switch c.Kind {
	case action.KindState:
		return fmt.Sprintf("State(%v, %s, %.3f, %s)", c.Action, c.Transition, c.Duration, joined)
	case action.KindRange:
		return fmt.Sprintf("Range(%v, (%.3f, %.3f), %s)", c.Action, c.Delta.X, c.Delta.Y, joined)
	default:
		return fmt.Sprintf("Action(%v, %s)", c.Action, joined)
	}
}

// Event is one emitted event: either Window or Controller is meaningful,
// as selected by Kind.
type Event[A action.Action, C comparable] struct {
	Kind       EventKind
	Window     WindowEvent
	Controller ControllerEvent[A, C]
}

// IsClose reports whether the event is a window close request.
func (e Event[A, C]) IsClose() bool {
	return e.Kind == EventWindow && e.Window.Kind == WindowClose
}

// IsAction reports whether the event is a controller event for a.
func (e Event[A, C]) IsAction(a A) bool {
	return e.Kind == EventController && e.Controller.Action == a
}

// String returns a compact description.
func (e Event[A, C]) String() string {
	if e.Kind == EventWindow {
		return e.Window.String()
	}
	return "Controller." + e.Controller.String()
}

func windowEvent(ev raw.Event) (WindowEvent, bool) {
	switch p := ev.Payload.(type) {
	case raw.Resize:
		return WindowEvent{Kind: WindowResize, Width: p.Width, Height: p.Height}, true
	case raw.Focus:
		return WindowEvent{Kind: WindowFocus, Focused: p.Focused}, true
	case raw.Close:
		return WindowEvent{Kind: WindowClose}, true
	}
	return WindowEvent{}, false
}
