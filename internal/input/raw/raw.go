package raw

import (
	"fmt"
	"strings"

	"github.com/dshills/rebind/internal/input/key"
	"github.com/dshills/rebind/internal/input/mouse"
)

// Device identifies the class of device an event came from.
type Device uint8

const (
	// DeviceKeyboard is any keyboard.
	DeviceKeyboard Device = iota
	// DeviceMouse is a mouse or other pointer.
	DeviceMouse
	// DeviceWindow is the host window itself.
	DeviceWindow
)

// String returns the device name.
func (d Device) String() string {
	switch d {
	case DeviceKeyboard:
		return "keyboard"
	case DeviceMouse:
		return "mouse"
	case DeviceWindow:
		return "window"
	default:
		return fmt.Sprintf("Device(%d)", d)
	}
}

// ParseDevice parses a device name (case-insensitive).
func ParseDevice(s string) (Device, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "keyboard":
		return DeviceKeyboard, nil
	case "mouse":
		return DeviceMouse, nil
	case "window":
		return DeviceWindow, nil
	}
	return 0, fmt.Errorf("unknown device %q", s)
}

// Action is the edge a key or button reports.
type Action uint8

const (
	// Press is a key or button going down.
	Press Action = iota
	// Release is a key or button going up.
	Release
	// Repeat is an auto-repeat while a key is held.
	Repeat
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Press:
		return "press"
	case Release:
		return "release"
	case Repeat:
		return "repeat"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// ParseAction parses "press", "release" or "repeat" (case-insensitive).
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "press":
		return Press, nil
	case "release":
		return Release, nil
	case "repeat":
		return Repeat, nil
	}
	return 0, fmt.Errorf("unknown raw action %q", s)
}

// PayloadKind discriminates payload variants.
type PayloadKind uint8

const (
	KindKey PayloadKind = iota
	KindButton
	KindMotion
	KindChar
	KindResize
	KindFocus
	KindClose
)

var payloadKindNames = [...]string{
	KindKey:    "key",
	KindButton: "button",
	KindMotion: "motion",
	KindChar:   "char",
	KindResize: "resize",
	KindFocus:  "focus",
	KindClose:  "close",
}

// String returns the lowercase variant name.
func (k PayloadKind) String() string {
	if int(k) < len(payloadKindNames) {
		return payloadKindNames[k]
	}
	return fmt.Sprintf("PayloadKind(%d)", k)
}

// ParsePayloadKind is the inverse of PayloadKind.String.
func ParsePayloadKind(s string) (PayloadKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range payloadKindNames {
		if name == s {
			return PayloadKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown payload kind %q", s)
}

// IsWindow reports whether the variant describes the window rather than
// user input.
func (k PayloadKind) IsWindow() bool {
	return k == KindResize || k == KindFocus || k == KindClose
}

// HasEdge reports whether the variant carries a Press/Release action.
func (k PayloadKind) HasEdge() bool {
	return k == KindKey || k == KindButton
}

// Payload is the closed set of event variants.
type Payload interface {
	Kind() PayloadKind
	isPayload()
}

// Key is a keyboard key edge.
type Key struct {
	Code   key.Key
	Action Action
	Mods   key.Modifier
}

// Button is a mouse button edge at a normalized position.
type Button struct {
	Button mouse.Button
	Pos    mouse.Position
	Action Action
	Mods   key.Modifier
}

// Motion carries the normalized cursor position after a move.
type Motion struct {
	X float64
	Y float64
}

// Char is a typed character.
type Char struct {
	Rune rune
}

// Resize reports the new window size.
type Resize struct {
	Width  uint32
	Height uint32
}

// Focus reports the window gaining or losing focus.
type Focus struct {
	Focused bool
}

// Close reports a request to close the window.
type Close struct{}

func (Key) Kind() PayloadKind    { return KindKey }
func (Button) Kind() PayloadKind { return KindButton }
func (Motion) Kind() PayloadKind { return KindMotion }
func (Char) Kind() PayloadKind   { return KindChar }
func (Resize) Kind() PayloadKind { return KindResize }
func (Focus) Kind() PayloadKind  { return KindFocus }
func (Close) Kind() PayloadKind  { return KindClose }

func (Key) isPayload()    {}
func (Button) isPayload() {}
func (Motion) isPayload() {}
func (Char) isPayload()   {}
func (Resize) isPayload() {}
func (Focus) isPayload()  {}
func (Close) isPayload()  {}

// Position returns the motion target as a mouse.Position.
func (m Motion) Position() mouse.Position {
	return mouse.Position{X: m.X, Y: m.Y}
}

// Event is a normalized input event. Time is in seconds on a monotonic
// clock chosen by the producer.
type Event struct {
	Time     float64
	Device   Device
	DeviceID uint32
	Payload  Payload
}

// IsWindow reports whether the event is a window event.
func (e Event) IsWindow() bool {
	return e.Payload != nil && e.Payload.Kind().IsWindow()
}

// String returns a compact description for logs.
func (e Event) String() string {
	if e.Payload == nil {
		return fmt.Sprintf("%.3f %s <nil>", e.Time, e.Device)
	}
	switch p := e.Payload.(type) {
	case Key:
		if p.Mods.IsEmpty() {
			return fmt.Sprintf("%.3f key %s %s", e.Time, p.Code, p.Action)
		}
		return fmt.Sprintf("%.3f key %s+%s %s", e.Time, p.Mods, p.Code, p.Action)
	case Button:
		return fmt.Sprintf("%.3f button %s %s (%.3f,%.3f)", e.Time, p.Button, p.Action, p.Pos.X, p.Pos.Y)
	case Motion:
		return fmt.Sprintf("%.3f motion (%.3f,%.3f)", e.Time, p.X, p.Y)
	case Char:
		return fmt.Sprintf("%.3f char %q", e.Time, p.Rune)
	case Resize:
		return fmt.Sprintf("%.3f resize %dx%d", e.Time, p.Width, p.Height)
	case Focus:
		return fmt.Sprintf("%.3f focus %t", e.Time, p.Focused)
	case Close:
		return fmt.Sprintf("%.3f close", e.Time)
	}
	return fmt.Sprintf("%.3f %s", e.Time, e.Payload.Kind())
}

// KeyEvent builds a keyboard event.
func KeyEvent(t float64, code key.Key, action Action, mods key.Modifier) Event {
	return Event{Time: t, Device: DeviceKeyboard, Payload: Key{Code: code, Action: action, Mods: mods}}
}

// ButtonEvent builds a mouse button event.
func ButtonEvent(t float64, b mouse.Button, pos mouse.Position, action Action, mods key.Modifier) Event {
	return Event{Time: t, Device: DeviceMouse, Payload: Button{Button: b, Pos: pos, Action: action, Mods: mods}}
}

// MotionEvent builds a cursor motion event.
func MotionEvent(t, x, y float64) Event {
	return Event{Time: t, Device: DeviceMouse, Payload: Motion{X: x, Y: y}}
}

// CharEvent builds a character input event.
func CharEvent(t float64, r rune) Event {
	return Event{Time: t, Device: DeviceKeyboard, Payload: Char{Rune: r}}
}

// ResizeEvent builds a window resize event.
func ResizeEvent(t float64, width, height uint32) Event {
	return Event{Time: t, Device: DeviceWindow, Payload: Resize{Width: width, Height: height}}
}

// FocusEvent builds a window focus event.
func FocusEvent(t float64, focused bool) Event {
	return Event{Time: t, Device: DeviceWindow, Payload: Focus{Focused: focused}}
}

// CloseEvent builds a window close event.
func CloseEvent(t float64) Event {
	return Event{Time: t, Device: DeviceWindow, Payload: Close{}}
}
