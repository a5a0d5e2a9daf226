package remap

import (
	"github.com/dshills/rebind/internal/input/mouse"
	"github.com/dshills/rebind/internal/input/raw"
)

// FrameData is the window size and cursor position known at the end of the
// previous tick.
type FrameData struct {
	Width  float64
	Height float64
	Cursor *mouse.Position
}

// CursorDelta returns pos minus the known cursor, or zero when no cursor
// has been seen yet.
func (f FrameData) CursorDelta(pos mouse.Position) mouse.Position {
	if f.Cursor == nil {
		return mouse.Position{}
	}
	return pos.Sub(*f.Cursor)
}

// observe folds one event into the pending frame for the next tick.
// Only pointer motion moves the cursor.
func (f *FrameData) observe(ev raw.Event) {
	switch p := ev.Payload.(type) {
	case raw.Motion:
		pos := p.Position()
		f.Cursor = &pos
	case raw.Resize:
		f.Width = float64(p.Width)
		f.Height = float64(p.Height)
	}
}
