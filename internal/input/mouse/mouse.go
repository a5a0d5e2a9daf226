package mouse

import (
	"math"
	"strings"
)

// Button represents a mouse button. ButtonNone doubles as the wildcard in
// binding patterns.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonBack is the back navigation button (mouse button 4).
	ButtonBack
	// ButtonForward is the forward navigation button (mouse button 5).
	ButtonForward

	buttonCount
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	default:
		return "none"
	}
}

// IsValid reports whether b names a real button.
func (b Button) IsValid() bool {
	return b > ButtonNone && b < buttonCount
}

var buttonNameMap = map[string]Button{
	"left":      ButtonLeft,
	"primary":   ButtonLeft,
	"button1":   ButtonLeft,
	"middle":    ButtonMiddle,
	"button3":   ButtonMiddle,
	"right":     ButtonRight,
	"secondary": ButtonRight,
	"button2":   ButtonRight,
	"back":      ButtonBack,
	"button4":   ButtonBack,
	"forward":   ButtonForward,
	"button5":   ButtonForward,
}

// FromName returns the button for a name (case-insensitive).
// Returns ButtonNone if the name is not recognized.
func FromName(name string) Button {
	if b, ok := buttonNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return b
	}
	return ButtonNone
}

// Position is a cursor position. Within the remapping engine positions are
// normalized to fractions of the window size.
type Position struct {
	X float64
	Y float64
}

// Sub returns p - other.
func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// Equal returns true if two positions are equal.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Length returns the Euclidean length of p treated as a vector.
func (p Position) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize divides a position in pixels or cells by the given extent.
// A zero extent yields zero on that axis.
func Normalize(x, y, width, height float64) Position {
	var p Position
	if width > 0 {
		p.X = x / width
	}
	if height > 0 {
		p.Y = y / height
	}
	return p
}

// Mask is a set of held buttons.
type Mask uint8

// MaskOf returns the mask bit for b.
func MaskOf(b Button) Mask {
	if !b.IsValid() {
		return 0
	}
	return 1 << (b - 1)
}

// Has reports whether b is held in m.
func (m Mask) Has(b Button) bool {
	bit := MaskOf(b)
	return bit != 0 && m&bit != 0
}

// Diff compares the previous mask m with next and returns the buttons that
// went down and the buttons that went up, each in button order.
func (m Mask) Diff(next Mask) (pressed, released []Button) {
	for b := ButtonLeft; b < buttonCount; b++ {
		was, is := m.Has(b), next.Has(b)
		switch {
		case !was && is:
			pressed = append(pressed, b)
		case was && !is:
			released = append(released, b)
		}
	}
	return pressed, released
}
