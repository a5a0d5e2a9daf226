// Package action describes application actions to the remapping engine:
// how each action behaves (its Kind) and which arguments it wants extracted
// from the triggering event.
package action

import (
	"fmt"
	"strings"
)

// Kind selects how a matched binding is classified.
type Kind uint8

const (
	// KindAction fires once per matching edge.
	KindAction Kind = iota
	// KindState tracks a held on/off state with a duration.
	KindState
	// KindRange reports cursor movement deltas.
	KindRange
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindAction:
		return "action"
	case KindState:
		return "state"
	case KindRange:
		return "range"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// ParseKind parses a kind name (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "action":
		return KindAction, nil
	case "state":
		return KindState, nil
	case "range":
		return KindRange, nil
	}
	return 0, fmt.Errorf("unknown action kind %q", s)
}

// ArgKind names a value the engine can extract from a raw event.
type ArgKind uint8

const (
	// ArgKeyCode is the key code of a key event.
	ArgKeyCode ArgKind = iota
	// ArgValue is the character of a char event.
	ArgValue
	// ArgModifiers is the modifier mask of a key or button event.
	ArgModifiers
	// ArgAction is the raw press/release/repeat of a key or button event.
	ArgAction
	// ArgCursorPosition is the normalized cursor position.
	ArgCursorPosition
	// ArgContextID is the id of the context whose binding matched.
	ArgContextID
)

var argKindNames = [...]string{
	ArgKeyCode:        "KeyCode",
	ArgValue:          "Value",
	ArgModifiers:      "Modifiers",
	ArgAction:         "Action",
	ArgCursorPosition: "CursorPosition",
	ArgContextID:      "ContextId",
}

// String returns the argument kind name.
func (a ArgKind) String() string {
	if int(a) < len(argKindNames) {
		return argKindNames[a]
	}
	return fmt.Sprintf("ArgKind(%d)", a)
}

// ParseArgKind parses an argument kind name (case-insensitive).
func ParseArgKind(s string) (ArgKind, error) {
	s = strings.TrimSpace(s)
	for i, name := range argKindNames {
		if strings.EqualFold(name, s) {
			return ArgKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown argument kind %q", s)
}

// Action is the constraint for application action identifiers. Kind and
// Args are read once when a binding is created.
type Action interface {
	comparable
	Kind() Kind
	Args() []ArgKind
}
