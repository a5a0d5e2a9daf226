package remap

import (
	"fmt"

	"github.com/dshills/rebind/internal/input/action"
	"github.com/dshills/rebind/internal/input/binding"
	"github.com/dshills/rebind/internal/input/raw"
)

// stateChange is the single store mutation a classification may request.
type stateChange[A comparable] struct {
	action   A
	activate bool
	apply    bool
}

func (c stateChange[A]) commit(store *StateStore[A], now float64) {
	if !c.apply {
		return
	}
	if c.activate {
		store.Activate(c.action, now)
	} else {
		store.Deactivate(c.action, now)
	}
}

// classify builds the controller event for a matched binding. It reads the
// store but never writes it; the returned change is committed by the caller.
func classify[A action.Action, C comparable](
	b binding.Binding[A],
	ctx C,
	ev raw.Event,
	states *StateStore[A],
	frame FrameData,
) (ControllerEvent[A, C], stateChange[A]) {
	out := ControllerEvent[A, C]{
		Kind:   b.Kind,
		Action: b.Action,
		Args:   extractArgs(b.Args, ctx, ev, frame),
	}

	switch b.Kind {
	case action.KindAction:
		return out, stateChange[A]{}

	case action.KindState:
		info, _ := states.Get(b.Action)
		out.Duration = info.Duration(ev.Time)
		switch edgeOf(ev) {
		case raw.Press, raw.Repeat:
			if info.Active {
				out.Transition = Active
			} else {
				out.Transition = Activated
			}
			return out, stateChange[A]{action: b.Action, activate: true, apply: true}
		default:
			out.Transition = Deactivated
			return out, stateChange[A]{action: b.Action, apply: true}
		}

	case action.KindRange:
		if m, ok := ev.Payload.(raw.Motion); ok {
			out.Delta = frame.CursorDelta(m.Position())
		}
		return out, stateChange[A]{}
	}

	panic(fmt.Sprintf("remap: unknown action kind %v", b.Kind))
}

// edgeOf returns the raw edge of a key or button event. Registration rejects
// State bindings on other payloads, so reaching the panic is a bug.
func edgeOf(ev raw.Event) raw.Action {
	switch p := ev.Payload.(type) {
	case raw.Key:
		return p.Action
	case raw.Button:
		return p.Action
	}
	panic(fmt.Sprintf("remap: state binding matched %s payload", ev.Payload.Kind()))
}

// extractArgs pulls the wanted arguments from ev in declared order,
// omitting kinds the payload cannot supply. The cursor position always
// comes from the committed frame, never from the event itself.
func extractArgs[C comparable](wanted []action.ArgKind, ctx C, ev raw.Event, frame FrameData) []Arg[C] {
	if len(wanted) == 0 {
		return nil
	}
	args := make([]Arg[C], 0, len(wanted))
	for _, kind := range wanted {
		arg := Arg[C]{Kind: kind}
		switch kind {
		case action.ArgKeyCode:
			p, ok := ev.Payload.(raw.Key)
			if !ok {
				continue
			}
			arg.Key = p.Code
		case action.ArgValue:
			p, ok := ev.Payload.(raw.Char)
			if !ok {
				continue
			}
			arg.Value = p.Rune
		case action.ArgModifiers:
			switch p := ev.Payload.(type) {
			case raw.Key:
				arg.Mods = p.Mods
			case raw.Button:
				arg.Mods = p.Mods
			default:
				continue
			}
		case action.ArgAction:
			switch p := ev.Payload.(type) {
			case raw.Key:
				arg.Action = p.Action
			case raw.Button:
				arg.Action = p.Action
			default:
				continue
			}
		case action.ArgCursorPosition:
			if frame.Cursor == nil {
				continue
			}
			arg.Position = *frame.Cursor
		case action.ArgContextID:
			arg.Context = ctx
		default:
			continue
		}
		args = append(args, arg)
	}
	return args
}
