package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/rebind/internal/input/key"
	"github.com/dshills/rebind/internal/input/mouse"
	"github.com/dshills/rebind/internal/input/raw"
)

// DefaultHoldTimeout is how long a key is considered held after its last
// press or repeat.
const DefaultHoldTimeout = 500 * time.Millisecond

// Adapter converts tcell events for a single terminal. It is not safe for
// concurrent use.
type Adapter struct {
	epoch       time.Time
	now         func() time.Time
	holdTimeout time.Duration

	width, height int

	held     key.Key
	heldMods key.Modifier
	heldAt   time.Time

	buttons mouse.Mask
	cell    [2]int
	hasCell bool
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithClock sets the time source. Event times are seconds since the
// adapter was created.
func WithClock(now func() time.Time) Option {
	return func(a *Adapter) {
		a.now = now
	}
}

// WithHoldTimeout sets how long a key stays held without repeats.
func WithHoldTimeout(d time.Duration) Option {
	return func(a *Adapter) {
		if d > 0 {
			a.holdTimeout = d
		}
	}
}

// New creates an adapter for a terminal of the given size in cells.
func New(width, height int, opts ...Option) *Adapter {
	a := &Adapter{
		now:         time.Now,
		holdTimeout: DefaultHoldTimeout,
		width:       width,
		height:      height,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.epoch = a.now()
	return a
}

// Size returns the grid size used for normalization.
func (a *Adapter) Size() (int, int) {
	return a.width, a.height
}

// Held returns the key currently considered held, or KeyNone.
func (a *Adapter) Held() key.Key {
	return a.held
}

// Convert translates one tcell event. Unknown events yield nil.
func (a *Adapter) Convert(ev tcell.Event) []raw.Event {
	now := a.now()
	t := a.seconds(now)

	switch e := ev.(type) {
	case *tcell.EventKey:
		return a.convertKey(e, t, now)

	case *tcell.EventMouse:
		return a.convertMouse(e, t)

	case *tcell.EventResize:
		w, h := e.Size()
		a.width, a.height = w, h
		return []raw.Event{raw.ResizeEvent(t, uint32(max(w, 0)), uint32(max(h, 0)))}

	case *tcell.EventFocus:
		out := []raw.Event{raw.FocusEvent(t, e.Focused)}
		if !e.Focused {
			out = append(out, a.releaseAll(t)...)
		}
		return out
	}
	return nil
}

// Expire releases the held key if it has not repeated within the hold
// timeout. Call it once per tick.
func (a *Adapter) Expire() []raw.Event {
	if a.held == key.KeyNone {
		return nil
	}
	now := a.now()
	if now.Sub(a.heldAt) < a.holdTimeout {
		return nil
	}
	return a.releaseKey(a.seconds(now))
}

// Flush releases every held key and button.
func (a *Adapter) Flush() []raw.Event {
	return a.releaseAll(a.seconds(a.now()))
}

// Close returns the event for the terminal going away, preceded by the
// releases of anything still held.
func (a *Adapter) Close() []raw.Event {
	t := a.seconds(a.now())
	return append(a.releaseAll(t), raw.CloseEvent(t))
}

func (a *Adapter) seconds(now time.Time) float64 {
	return now.Sub(a.epoch).Seconds()
}

func (a *Adapter) convertKey(e *tcell.EventKey, t float64, now time.Time) []raw.Event {
	code, mods := convertKey(e)

	var out []raw.Event
	switch {
	case code == key.KeyNone:
		// Untranslatable keys still release the previous one.
		out = a.releaseKey(t)
	case code == a.held:
		a.heldAt = now
		out = append(out, raw.KeyEvent(t, code, raw.Repeat, mods))
	default:
		out = a.releaseKey(t)
		a.held, a.heldMods, a.heldAt = code, mods, now
		out = append(out, raw.KeyEvent(t, code, raw.Press, mods))
	}

	if printable(e) {
		out = append(out, raw.CharEvent(t, e.Rune()))
	}
	return out
}

func (a *Adapter) releaseKey(t float64) []raw.Event {
	if a.held == key.KeyNone {
		return nil
	}
	ev := raw.KeyEvent(t, a.held, raw.Release, a.heldMods)
	a.held, a.heldMods = key.KeyNone, key.ModNone
	return []raw.Event{ev}
}

func (a *Adapter) releaseAll(t float64) []raw.Event {
	out := a.releaseKey(t)
	_, released := a.buttons.Diff(0)
	pos := a.position()
	for _, b := range released {
		out = append(out, raw.ButtonEvent(t, b, pos, raw.Release, key.ModNone))
	}
	a.buttons = 0
	return out
}

func (a *Adapter) convertMouse(e *tcell.EventMouse, t float64) []raw.Event {
	var out []raw.Event

	x, y := e.Position()
	if !a.hasCell || a.cell != [2]int{x, y} {
		a.cell, a.hasCell = [2]int{x, y}, true
		p := a.position()
		out = append(out, raw.MotionEvent(t, p.X, p.Y))
	}

	next := convertButtons(e.Buttons())
	pressed, released := a.buttons.Diff(next)
	a.buttons = next

	mods := convertMod(e.Modifiers())
	pos := a.position()
	for _, b := range released {
		out = append(out, raw.ButtonEvent(t, b, pos, raw.Release, mods))
	}
	for _, b := range pressed {
		out = append(out, raw.ButtonEvent(t, b, pos, raw.Press, mods))
	}
	return out
}

// position returns the last cell, normalized to the grid, at the cell centre.
func (a *Adapter) position() mouse.Position {
	if !a.hasCell {
		return mouse.Position{}
	}
	return mouse.Normalize(float64(a.cell[0])+0.5, float64(a.cell[1])+0.5, float64(a.width), float64(a.height))
}

func convertButtons(b tcell.ButtonMask) mouse.Mask {
	var m mouse.Mask
	if b&tcell.ButtonPrimary != 0 {
		m |= mouse.MaskOf(mouse.ButtonLeft)
	}
	if b&tcell.ButtonSecondary != 0 {
		m |= mouse.MaskOf(mouse.ButtonRight)
	}
	if b&tcell.ButtonMiddle != 0 {
		m |= mouse.MaskOf(mouse.ButtonMiddle)
	}
	if b&tcell.Button4 != 0 {
		m |= mouse.MaskOf(mouse.ButtonBack)
	}
	if b&tcell.Button5 != 0 {
		m |= mouse.MaskOf(mouse.ButtonForward)
	}
	return m
}
