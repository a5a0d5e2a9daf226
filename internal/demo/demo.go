// Package demo is the sample action vocabulary used by the rebind command:
// a small game with a modal UI layer.
package demo

import (
	"fmt"
	"strings"

	"github.com/dshills/rebind/internal/input/action"
	"github.com/dshills/rebind/internal/input/binding"
	"github.com/dshills/rebind/internal/input/key"
	"github.com/dshills/rebind/internal/input/mouse"
	"github.com/dshills/rebind/internal/input/raw"
)

// ContextID names the demo contexts.
type ContextID uint8

const (
	Default ContextID = iota
	UI
)

var contextNames = [...]string{
	Default: "Default",
	UI:      "UI",
}

func (c ContextID) String() string {
	if int(c) < len(contextNames) {
		return contextNames[c]
	}
	return fmt.Sprintf("ContextID(%d)", c)
}

// ParseContextID resolves a context name (case-insensitive).
func ParseContextID(s string) (ContextID, bool) {
	for i, name := range contextNames {
		if strings.EqualFold(name, s) {
			return ContextID(i), true
		}
	}
	return 0, false
}

// Action is every action the demo understands.
type Action uint8

const (
	// UI layer
	Close Action = iota
	Click
	Drag
	Text

	// Gameplay
	MoveForward
	FireAbility1
	RotateDirection
	InternalButton
	RotateCamera
	ToggleUI
	Jump
	ConfirmDialog

	actionCount
)

type actionMeta struct {
	name string
	kind action.Kind
	args []action.ArgKind
}

var actionTable = [...]actionMeta{
	Close:           {"Close", action.KindAction, nil},
	Click:           {"Click", action.KindState, []action.ArgKind{action.ArgCursorPosition}},
	Drag:            {"Drag", action.KindRange, nil},
	Text:            {"Text", action.KindAction, []action.ArgKind{action.ArgValue}},
	MoveForward:     {"MoveForward", action.KindState, nil},
	FireAbility1:    {"FireAbility1", action.KindAction, []action.ArgKind{action.ArgCursorPosition}},
	RotateDirection: {"RotateDirection", action.KindRange, nil},
	InternalButton:  {"InternalButton", action.KindState, nil},
	RotateCamera:    {"RotateCamera", action.KindRange, nil},
	ToggleUI:        {"ToggleUI", action.KindAction, nil},
	Jump:            {"Jump", action.KindAction, nil},
	ConfirmDialog:   {"ConfirmDialog", action.KindAction, []action.ArgKind{action.ArgContextID}},
}

// Kind implements action.Action.
func (a Action) Kind() action.Kind {
	return a.meta().kind
}

// Args implements action.Action.
func (a Action) Args() []action.ArgKind {
	return a.meta().args
}

func (a Action) String() string {
	if a < actionCount {
		return actionTable[a].name
	}
	return fmt.Sprintf("Action(%d)", a)
}

func (a Action) meta() actionMeta {
	if a < actionCount {
		return actionTable[a]
	}
	return actionMeta{kind: action.KindAction}
}

// ParseAction resolves an action name (case-insensitive).
func ParseAction(s string) (Action, bool) {
	for a := Action(0); a < actionCount; a++ {
		if strings.EqualFold(actionTable[a].name, s) {
			return a, true
		}
	}
	return 0, false
}

// Actions returns every action in declaration order.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// Contexts returns the built-in bindings used when no bindings file is
// configured.
func Contexts() []binding.Context[Action, ContextID] {
	return []binding.Context[Action, ContextID]{
		binding.NewContext(Default,
			binding.New(binding.KeyPattern(key.KeyEscape), Close),
			binding.New(binding.KeyPattern(key.KeyW), MoveForward),
			binding.New(binding.KeyPattern(key.KeySpace), Jump).WithState(raw.Press),
			binding.New(binding.KeyPattern(key.KeyTab), ToggleUI).WithState(raw.Press),
			binding.New(binding.ButtonPattern(mouse.ButtonRight), InternalButton),
			binding.New(binding.ButtonPattern(mouse.ButtonLeft), FireAbility1).WithModifiers(key.ModShift),
			binding.New(binding.MotionPattern(), RotateCamera).WithGuard(InternalButton),
			binding.New(binding.MotionPattern(), RotateDirection),
		),
		binding.NewContext(UI,
			binding.New(binding.KeyPattern(key.KeyEscape), ToggleUI),
			binding.New(binding.KeyPattern(key.KeyTab), ToggleUI).WithState(raw.Press),
			binding.New(binding.KeyPattern(key.KeySpace), ConfirmDialog).WithState(raw.Press),
			binding.New(binding.ButtonPattern(mouse.ButtonLeft), Click),
			binding.New(binding.MotionPattern(), Drag).WithGuard(Click),
			binding.New(binding.CharPattern(), Text),
		),
	}
}

// UIPriority is the priority the UI context is toggled at; lower wins.
const UIPriority = 0

// DefaultPriority is the priority of the gameplay context.
const DefaultPriority = 1
