package remap

import (
	"context"
	"log/slog"

	"github.com/dshills/rebind/internal/input/action"
	"github.com/dshills/rebind/internal/input/binding"
	"github.com/dshills/rebind/internal/input/raw"
)

// Option configures a Remapper.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	retention float64
	width     float64
	height    float64
}

// WithLogger sets the logger. Matching decisions are logged at Debug.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStateRetention prunes released states older than seconds at the end
// of every tick. Zero disables pruning.
func WithStateRetention(seconds float64) Option {
	return func(o *options) {
		if seconds > 0 {
			o.retention = seconds
		}
	}
}

// WithWindowSize sets the initial window size.
func WithWindowSize(width, height float64) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// Remapper turns batches of raw events into window and controller events.
// It is not safe for concurrent use; one goroutine owns it.
type Remapper[A action.Action, C comparable] struct {
	registry  *Registry[A, C]
	active    ActiveStack[C]
	states    *StateStore[A]
	frame     FrameData
	retention float64
	logger    *slog.Logger
}

// New creates a Remapper with no contexts.
func New[A action.Action, C comparable](opts ...Option) *Remapper[A, C] {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return &Remapper[A, C]{
		registry:  NewRegistry[A, C](),
		states:    NewStateStore[A](),
		frame:     FrameData{Width: o.width, Height: o.height},
		retention: o.retention,
		logger:    o.logger,
	}
}

// Register sanitizes and validates ctx and inserts it, replacing any
// context with the same id. Nothing is changed on error.
func (r *Remapper[A, C]) Register(ctx binding.Context[A, C]) error {
	return r.RegisterAll(ctx)
}

// RegisterAll registers several contexts. Either all are registered or,
// on the first invalid binding, none are.
func (r *Remapper[A, C]) RegisterAll(ctxs ...binding.Context[A, C]) error {
	prepared := make([]binding.Context[A, C], 0, len(ctxs))
	for _, ctx := range ctxs {
		p, err := ctx.Prepared()
		if err != nil {
			return err
		}
		prepared = append(prepared, p)
	}
	for _, p := range prepared {
		r.registry.Put(p)
		r.logger.Debug("context registered", "context", p.ID, "bindings", len(p.Bindings))
	}
	return nil
}

// RemoveContext unregisters id and drops it from the active stack.
func (r *Remapper[A, C]) RemoveContext(id C) bool {
	r.active.Deactivate(id)
	return r.registry.Remove(id)
}

// Contexts returns the registered context ids in registration order.
func (r *Remapper[A, C]) Contexts() []C {
	return r.registry.IDs()
}

// Context returns the registered (sanitized) context for id.
func (r *Remapper[A, C]) Context(id C) (binding.Context[A, C], bool) {
	return r.registry.Get(id)
}

// Activate enables id at priority. Unknown ids are ignored. Activating an
// active context moves it to the new priority.
func (r *Remapper[A, C]) Activate(id C, priority uint32) bool {
	if !r.registry.Has(id) {
		r.logger.Debug("activate unknown context", "context", id)
		return false
	}
	r.active.Activate(id, priority)
	r.logger.Debug("context activated", "context", id, "priority", priority)
	return true
}

// Deactivate disables id and reports whether it was active.
func (r *Remapper[A, C]) Deactivate(id C) bool {
	if !r.active.Deactivate(id) {
		return false
	}
	r.logger.Debug("context deactivated", "context", id)
	return true
}

// Toggle deactivates id if active, else activates it at priority. Unknown
// ids are ignored. It returns whether id is active afterwards.
func (r *Remapper[A, C]) Toggle(id C, priority uint32) bool {
	if !r.registry.Has(id) {
		r.logger.Debug("toggle unknown context", "context", id)
		return false
	}
	on := r.active.Toggle(id, priority)
	r.logger.Debug("context toggled", "context", id, "active", on, "priority", priority)
	return on
}

// ContextActive reports whether id is on the active stack.
func (r *Remapper[A, C]) ContextActive(id C) bool {
	return r.active.Contains(id)
}

// ActiveContexts returns the active stack in scan order.
func (r *Remapper[A, C]) ActiveContexts() []ActiveContext[C] {
	return r.active.Entries()
}

// State returns the stored state of a State action.
func (r *Remapper[A, C]) State(a A) (StateInfo, bool) {
	return r.states.Get(a)
}

// StateActive reports whether a State action is held.
func (r *Remapper[A, C]) StateActive(a A) bool {
	return r.states.IsActive(a)
}

// ResetStates forgets every state entry without emitting events. Held
// actions read as inactive afterwards and their next press is Activated.
func (r *Remapper[A, C]) ResetStates() {
	r.states.Reset()
}

// Frame returns the frame data committed at the end of the last tick.
func (r *Remapper[A, C]) Frame() FrameData {
	return r.frame
}

// WindowSize returns the last known window size.
func (r *Remapper[A, C]) WindowSize() (width, height float64) {
	return r.frame.Width, r.frame.Height
}

// Process classifies one tick's batch. Window events come first, then
// controller events in batch order. State changes are visible to later
// events of the same batch; frame data is committed after the batch.
func (r *Remapper[A, C]) Process(batch []raw.Event) []Event[A, C] {
	var out []Event[A, C]
	for _, ev := range batch {
		if w, ok := windowEvent(ev); ok {
			out = append(out, Event[A, C]{Kind: EventWindow, Window: w})
		}
	}

	next := r.frame
	now := 0.0
	for _, ev := range batch {
		if !ev.IsWindow() {
			if c, ok := r.ProcessOne(ev); ok {
				out = append(out, Event[A, C]{Kind: EventController, Controller: c})
			}
		}
		next.observe(ev)
		if ev.Time > now {
			now = ev.Time
		}
	}
	r.frame = next

	if r.retention > 0 && len(batch) > 0 {
		if n := r.states.Prune(now, r.retention); n > 0 {
			r.logger.Debug("pruned states", "count", n)
		}
	}
	return out
}

// ProcessOne resolves a single event against the active contexts using the
// committed frame data. It returns the first match in priority order.
func (r *Remapper[A, C]) ProcessOne(ev raw.Event) (ControllerEvent[A, C], bool) {
	for _, entry := range r.active.entries {
		ctx, ok := r.registry.Get(entry.ID)
		if !ok {
			continue
		}
		for _, b := range ctx.Bindings {
			if !binding.Match(b, ev, binding.StateReader[A](r.states)) {
				continue
			}
			out, change := classify(b, ctx.ID, ev, r.states, r.frame)
			change.commit(r.states, ev.Time)
			if r.debug() {
				r.logger.Debug("binding matched", "context", ctx.ID, "binding", b.String(), "event", ev.String())
			}
			return out, true
		}
	}
	if r.debug() {
		r.logger.Debug("no binding matched", "event", ev.String())
	}
	return ControllerEvent[A, C]{}, false
}

func (r *Remapper[A, C]) debug() bool {
	return r.logger.Enabled(context.Background(), slog.LevelDebug)
}
