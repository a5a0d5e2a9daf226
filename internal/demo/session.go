package demo

import (
	"log/slog"
	"slices"

	"github.com/dshills/rebind/internal/input/action"
	"github.com/dshills/rebind/internal/input/binding"
	"github.com/dshills/rebind/internal/input/raw"
	"github.com/dshills/rebind/internal/input/remap"
)

// Session drives a remapper the way the demo game does. Default is active
// from the start and ToggleUI flips the UI layer. Losing focus forgets held
// states. Close (the action or the window event) ends the session.
type Session struct {
	remapper *remap.Remapper[Action, ContextID]
	states   *remap.StateTracker[Action, ContextID]
	text     *remap.TextBuffer[Action, ContextID]
	typed    []rune
	logger   *slog.Logger
	closed   bool
}

// maxTyped bounds the text kept for display.
const maxTyped = 256

// NewSession registers ctxs and activates the Default context.
func NewSession(ctxs []binding.Context[Action, ContextID], logger *slog.Logger, opts ...remap.Option) (*Session, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := remap.New[Action, ContextID](append([]remap.Option{remap.WithLogger(logger)}, opts...)...)
	if err := r.RegisterAll(ctxs...); err != nil {
		return nil, err
	}
	r.Activate(Default, DefaultPriority)

	return &Session{
		remapper: r,
		states:   remap.NewStateTracker[Action, ContextID](),
		text:     remap.NewTextBuffer[Action, ContextID](Text),
		logger:   logger,
	}, nil
}

// Remapper returns the underlying remapper.
func (s *Session) Remapper() *remap.Remapper[Action, ContextID] {
	return s.remapper
}

// Tick processes one batch and applies the demo's reactions to it.
func (s *Session) Tick(batch []raw.Event) []remap.Event[Action, ContextID] {
	out := s.remapper.Process(batch)

	blurred := false
	for _, ev := range out {
		switch {
		case ev.Kind == remap.EventWindow && ev.Window.Kind == remap.WindowFocus && !ev.Window.Focused:
			blurred = true
		case ev.IsClose(), ev.IsAction(Close):
			if !s.closed {
				s.logger.Info("session closed")
			}
			s.closed = true
		case ev.IsAction(ToggleUI):
			on := s.remapper.Toggle(UI, UIPriority)
			s.logger.Info("ui toggled", "active", on)
		}
	}

	s.states.Update(out)
	if blurred {
		// Releases that happen while unfocused are never reported.
		s.remapper.ResetStates()
		s.states.Reset()
		s.logger.Debug("focus lost, states reset")
	}
	s.text.Update(out)
	if s.text.Len() > 0 {
		s.typed = append(s.typed, []rune(s.text.Consume())...)
		if n := len(s.typed); n > maxTyped {
			s.typed = slices.Clone(s.typed[n-maxTyped:])
		}
	}
	return out
}

// Reload replaces the registered contexts. Contexts missing from ctxs are
// removed; Default is re-activated if it was dropped and comes back.
func (s *Session) Reload(ctxs []binding.Context[Action, ContextID]) error {
	if err := s.remapper.RegisterAll(ctxs...); err != nil {
		return err
	}

	keep := make(map[ContextID]bool, len(ctxs))
	for _, c := range ctxs {
		keep[c.ID] = true
	}
	for _, id := range s.remapper.Contexts() {
		if !keep[id] {
			s.remapper.RemoveContext(id)
		}
	}
	if !s.remapper.ContextActive(Default) {
		s.remapper.Activate(Default, DefaultPriority)
	}
	s.logger.Info("contexts reloaded", "contexts", len(ctxs))
	return nil
}

// Closed reports whether a close was requested.
func (s *Session) Closed() bool {
	return s.closed
}

// Held returns the State actions currently held, in declaration order.
func (s *Session) Held() []Action {
	var held []Action
	for _, a := range Actions() {
		if a.Kind() == action.KindState && s.states.IsActive(a) {
			held = append(held, a)
		}
	}
	return held
}

// Typed returns the text entered through the Text action so far.
func (s *Session) Typed() string {
	return string(s.typed)
}
