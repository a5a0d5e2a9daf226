package raw

import (
	"strings"
	"testing"

	"github.com/dshills/rebind/internal/input/key"
	"github.com/dshills/rebind/internal/input/mouse"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		input   string
		want    Action
		wantErr bool
	}{
		{"press", Press, false},
		{"Release", Release, false},
		{" repeat ", Repeat, false},
		{"hold", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseAction(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAction(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseDevice(t *testing.T) {
	for _, d := range []Device{DeviceKeyboard, DeviceMouse, DeviceWindow} {
		got, err := ParseDevice(strings.ToUpper(d.String()))
		if err != nil || got != d {
			t.Errorf("ParseDevice(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := ParseDevice("joystick"); err == nil {
		t.Error("ParseDevice(joystick) should fail")
	}
}

func TestPayloadKindRoundTrip(t *testing.T) {
	for k := KindKey; k <= KindClose; k++ {
		got, err := ParsePayloadKind(k.String())
		if err != nil {
			t.Fatalf("ParsePayloadKind(%q): %v", k, err)
		}
		if got != k {
			t.Errorf("ParsePayloadKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if _, err := ParsePayloadKind("scroll"); err == nil {
		t.Error("ParsePayloadKind(scroll) should fail")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		ev     Event
		device Device
		kind   PayloadKind
		window bool
	}{
		{"key", KeyEvent(1, key.KeyA, Press, key.ModShift), DeviceKeyboard, KindKey, false},
		{"button", ButtonEvent(1, mouse.ButtonLeft, mouse.Position{}, Release, 0), DeviceMouse, KindButton, false},
		{"motion", MotionEvent(1, 0.5, 0.5), DeviceMouse, KindMotion, false},
		{"char", CharEvent(1, 'x'), DeviceKeyboard, KindChar, false},
		{"resize", ResizeEvent(1, 800, 600), DeviceWindow, KindResize, true},
		{"focus", FocusEvent(1, true), DeviceWindow, KindFocus, true},
		{"close", CloseEvent(1), DeviceWindow, KindClose, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.ev.Device != tt.device {
				t.Errorf("Device = %v, want %v", tt.ev.Device, tt.device)
			}
			if got := tt.ev.Payload.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
			if got := tt.ev.IsWindow(); got != tt.window {
				t.Errorf("IsWindow() = %v, want %v", got, tt.window)
			}
			if tt.ev.String() == "" {
				t.Error("String() should not be empty")
			}
		})
	}
}

func TestHasEdge(t *testing.T) {
	edged := map[PayloadKind]bool{KindKey: true, KindButton: true}
	for k := KindKey; k <= KindClose; k++ {
		if got := k.HasEdge(); got != edged[k] {
			t.Errorf("%v.HasEdge() = %v, want %v", k, got, edged[k])
		}
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{KeyEvent(0.5, key.KeySpace, Press, 0), "0.500 key Space press"},
		{KeyEvent(1, key.KeyS, Release, key.ModCtrl), "1.000 key Ctrl+S release"},
		{MotionEvent(2, 0.25, 0.75), "2.000 motion (0.250,0.750)"},
		{CharEvent(3, 'q'), "3.000 char 'q'"},
		{ResizeEvent(4, 640, 480), "4.000 resize 640x480"},
		{CloseEvent(5), "5.000 close"},
	}

	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
