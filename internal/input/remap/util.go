package remap

import (
	"strings"

	"github.com/dshills/rebind/internal/input/action"
)

// StateTracker follows State events emitted by a Remapper so consumers can
// poll whether an action is held.
type StateTracker[A action.Action, C comparable] struct {
	states map[A]bool
}

// NewStateTracker creates an empty tracker.
func NewStateTracker[A action.Action, C comparable]() *StateTracker[A, C] {
	return &StateTracker[A, C]{states: make(map[A]bool)}
}

// Update folds a batch of emitted events into the tracker.
func (t *StateTracker[A, C]) Update(events []Event[A, C]) {
	for _, e := range events {
		if e.Kind != EventController || e.Controller.Kind != action.KindState {
			continue
		}
		t.states[e.Controller.Action] = e.Controller.Transition != Deactivated
	}
}

// IsActive reports whether the last State event for a left it held.
func (t *StateTracker[A, C]) IsActive(a A) bool {
	return t.states[a]
}

// Reset marks every action released.
func (t *StateTracker[A, C]) Reset() {
	clear(t.states)
}

// TextBuffer accumulates the Value arguments of a text action.
type TextBuffer[A action.Action, C comparable] struct {
	action A
	buf    strings.Builder
}

// NewTextBuffer creates a buffer collecting characters emitted for a.
func NewTextBuffer[A action.Action, C comparable](a A) *TextBuffer[A, C] {
	return &TextBuffer[A, C]{action: a}
}

// Update appends the characters carried by matching Action events.
func (t *TextBuffer[A, C]) Update(events []Event[A, C]) {
	for _, e := range events {
		if !e.IsAction(t.action) || e.Controller.Kind != action.KindAction {
			continue
		}
		for _, arg := range e.Controller.Args {
			if arg.Kind == action.ArgValue {
				t.buf.WriteRune(arg.Value)
			}
		}
	}
}

// Len returns the number of buffered bytes.
func (t *TextBuffer[A, C]) Len() int {
	return t.buf.Len()
}

// Consume returns the buffered text and empties the buffer.
func (t *TextBuffer[A, C]) Consume() string {
	s := t.buf.String()
	t.buf.Reset()
	return s
}
