package trace

import (
	"fmt"
	"strings"

	"github.com/dshills/rebind/internal/input/key"
	"github.com/dshills/rebind/internal/input/mouse"
	"github.com/dshills/rebind/internal/input/raw"
)

// wireEvent is the JSON form of raw.Event. Names are used instead of
// numeric codes so traces stay readable and survive enum reordering.
type wireEvent struct {
	Time     float64  `json:"t"`
	Device   string   `json:"device"`
	DeviceID uint32   `json:"device_id,omitempty"`
	Kind     string   `json:"kind"`
	Key      string   `json:"key,omitempty"`
	Button   string   `json:"button,omitempty"`
	Action   string   `json:"action,omitempty"`
	Mods     []string `json:"mods,omitempty"`
	X        *float64 `json:"x,omitempty"`
	Y        *float64 `json:"y,omitempty"`
	Rune     string   `json:"rune,omitempty"`
	Width    uint32   `json:"width,omitempty"`
	Height   uint32   `json:"height,omitempty"`
	Focused  *bool    `json:"focused,omitempty"`
}

func toWire(ev raw.Event) (wireEvent, error) {
	if ev.Payload == nil {
		return wireEvent{}, ErrNoPayload
	}
	w := wireEvent{
		Time:     ev.Time,
		Device:   ev.Device.String(),
		DeviceID: ev.DeviceID,
		Kind:     ev.Payload.Kind().String(),
	}

	switch p := ev.Payload.(type) {
	case raw.Key:
		w.Key = strings.ToLower(p.Code.String())
		w.Action = p.Action.String()
		w.Mods = modNames(p.Mods)
	case raw.Button:
		w.Button = p.Button.String()
		w.Action = p.Action.String()
		w.Mods = modNames(p.Mods)
		w.X, w.Y = ptr(p.Pos.X), ptr(p.Pos.Y)
	case raw.Motion:
		w.X, w.Y = ptr(p.X), ptr(p.Y)
	case raw.Char:
		w.Rune = string(p.Rune)
	case raw.Resize:
		w.Width, w.Height = p.Width, p.Height
	case raw.Focus:
		w.Focused = ptr(p.Focused)
	case raw.Close:
	}
	return w, nil
}

func fromWire(w wireEvent) (raw.Event, error) {
	dev, err := raw.ParseDevice(w.Device)
	if err != nil {
		return raw.Event{}, err
	}
	kind, err := raw.ParsePayloadKind(w.Kind)
	if err != nil {
		return raw.Event{}, err
	}

	ev := raw.Event{Time: w.Time, Device: dev, DeviceID: w.DeviceID}

	switch kind {
	case raw.KindKey:
		code := key.FromName(w.Key)
		if code == key.KeyNone {
			return raw.Event{}, fmt.Errorf("unknown key %q", w.Key)
		}
		act, err := raw.ParseAction(w.Action)
		if err != nil {
			return raw.Event{}, err
		}
		ev.Payload = raw.Key{Code: code, Action: act, Mods: parseMods(w.Mods)}
	case raw.KindButton:
		b := mouse.FromName(w.Button)
		if b == mouse.ButtonNone {
			return raw.Event{}, fmt.Errorf("unknown button %q", w.Button)
		}
		act, err := raw.ParseAction(w.Action)
		if err != nil {
			return raw.Event{}, err
		}
		ev.Payload = raw.Button{Button: b, Pos: mouse.Position{X: deref(w.X), Y: deref(w.Y)}, Action: act, Mods: parseMods(w.Mods)}
	case raw.KindMotion:
		if w.X == nil || w.Y == nil {
			return raw.Event{}, fmt.Errorf("motion without position")
		}
		ev.Payload = raw.Motion{X: *w.X, Y: *w.Y}
	case raw.KindChar:
		r := []rune(w.Rune)
		if len(r) != 1 {
			return raw.Event{}, fmt.Errorf("char must be one rune, got %q", w.Rune)
		}
		ev.Payload = raw.Char{Rune: r[0]}
	case raw.KindResize:
		ev.Payload = raw.Resize{Width: w.Width, Height: w.Height}
	case raw.KindFocus:
		ev.Payload = raw.Focus{Focused: deref(w.Focused)}
	case raw.KindClose:
		ev.Payload = raw.Close{}
	}
	return ev, nil
}

func modNames(m key.Modifier) []string {
	names := m.Names()
	for i := range names {
		names[i] = strings.ToLower(names[i])
	}
	return names
}

func parseMods(names []string) key.Modifier {
	var m key.Modifier
	for _, n := range names {
		m = m.With(key.ModifierFromName(n))
	}
	return m
}

func ptr[T any](v T) *T { return &v }

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
