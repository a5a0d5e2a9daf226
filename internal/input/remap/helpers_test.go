package remap

import (
	"github.com/dshills/rebind/internal/input/action"
	"github.com/dshills/rebind/internal/input/binding"
	"github.com/dshills/rebind/internal/input/key"
	"github.com/dshills/rebind/internal/input/mouse"
	"github.com/dshills/rebind/internal/input/raw"
)

type testAction int

const (
	actClose testAction = iota
	actClick
	actDrag
	actText
	actJump
	actConfirm
	actHold
	actAim
	actWhere
)

var testActionNames = [...]string{"Close", "Click", "Drag", "Text", "Jump", "ConfirmDialog", "Hold", "Aim", "Where"}

func (a testAction) String() string { return testActionNames[a] }

func (a testAction) Kind() action.Kind {
	switch a {
	case actClick, actHold:
		return action.KindState
	case actDrag:
		return action.KindRange
	default:
		return action.KindAction
	}
}

func (a testAction) Args() []action.ArgKind {
	switch a {
	case actClick:
		return []action.ArgKind{action.ArgCursorPosition}
	case actText:
		return []action.ArgKind{action.ArgValue}
	case actAim:
		return []action.ArgKind{action.ArgKeyCode, action.ArgCursorPosition}
	case actWhere:
		return []action.ArgKind{
			action.ArgContextID, action.ArgModifiers, action.ArgAction,
			action.ArgKeyCode, action.ArgValue, action.ArgCursorPosition,
		}
	}
	return nil
}

type remapper = Remapper[testAction, string]

func newRemapper(opts ...Option) *remapper {
	return New[testAction, string](opts...)
}

func ctx(id string, bindings ...binding.Binding[testAction]) binding.Context[testAction, string] {
	return binding.NewContext(id, bindings...)
}

func press(t float64, k key.Key) raw.Event {
	return raw.KeyEvent(t, k, raw.Press, key.ModNone)
}

func release(t float64, k key.Key) raw.Event {
	return raw.KeyEvent(t, k, raw.Release, key.ModNone)
}

func click(t float64, a raw.Action, x, y float64) raw.Event {
	return raw.ButtonEvent(t, mouse.ButtonLeft, mouse.Position{X: x, Y: y}, a, key.ModNone)
}

func controllers(events []Event[testAction, string]) []ControllerEvent[testAction, string] {
	var out []ControllerEvent[testAction, string]
	for _, e := range events {
		if e.Kind == EventController {
			out = append(out, e.Controller)
		}
	}
	return out
}
