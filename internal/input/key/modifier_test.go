package key

import (
	"testing"
)

func TestModifierHas(t *testing.T) {
	tests := []struct {
		mod    Modifier
		check  Modifier
		expect bool
	}{
		{ModNone, ModCtrl, false},
		{ModCtrl, ModCtrl, true},
		{ModCtrl | ModAlt, ModCtrl, true},
		{ModCtrl | ModAlt, ModAlt, true},
		{ModCtrl | ModAlt, ModShift, false},
		{ModCtrl | ModAlt | ModShift | ModSuper, ModSuper, true},
	}

	for _, tt := range tests {
		if got := tt.mod.Has(tt.check); got != tt.expect {
			t.Errorf("Modifier(%d).Has(%d) = %v, want %v", tt.mod, tt.check, got, tt.expect)
		}
	}
}

func TestModifierContains(t *testing.T) {
	tests := []struct {
		mod    Modifier
		req    Modifier
		expect bool
	}{
		{ModNone, ModNone, true},
		{ModShift, ModNone, true},
		{ModShift, ModShift, true},
		{ModShift | ModCtrl, ModShift, true},
		{ModShift, ModShift | ModCtrl, false},
		{ModNone, ModAlt, false},
	}

	for _, tt := range tests {
		if got := tt.mod.Contains(tt.req); got != tt.expect {
			t.Errorf("Modifier(%d).Contains(%d) = %v, want %v", tt.mod, tt.req, got, tt.expect)
		}
	}
}

func TestModifierBitsDistinct(t *testing.T) {
	mods := []Modifier{ModShift, ModCtrl, ModAlt, ModSuper}
	var seen Modifier
	for _, m := range mods {
		if m == ModNone {
			t.Fatalf("modifier has zero value")
		}
		if seen&m != 0 {
			t.Errorf("modifier %d overlaps %d", m, seen)
		}
		seen |= m
	}
}

func TestModifierWith(t *testing.T) {
	mod := ModNone
	mod = mod.With(ModCtrl)
	if !mod.HasCtrl() {
		t.Error("With(ModCtrl) should set Ctrl")
	}

	mod = mod.With(ModAlt)
	if !mod.HasCtrl() || !mod.HasAlt() {
		t.Error("With(ModAlt) should keep Ctrl and add Alt")
	}
}

func TestModifierWithout(t *testing.T) {
	mod := ModCtrl | ModAlt | ModShift
	mod = mod.Without(ModAlt)
	if mod.HasAlt() {
		t.Error("Without(ModAlt) should remove Alt")
	}
	if !mod.HasCtrl() || !mod.HasShift() {
		t.Error("Without(ModAlt) should keep Ctrl and Shift")
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModShift, "Shift"},
		{ModShift | ModCtrl, "Ctrl+Shift"},
		{ModSuper | ModAlt | ModCtrl | ModShift, "Ctrl+Alt+Shift+Super"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestParseModifiers(t *testing.T) {
	tests := []struct {
		input string
		want  Modifier
	}{
		{"", ModNone},
		{"ctrl", ModCtrl},
		{"Ctrl+Alt", ModCtrl | ModAlt},
		{"ctrl-shift", ModCtrl | ModShift},
		{"cmd", ModSuper},
		{"logo+shift", ModSuper | ModShift},
		{"hyper", ModNone},
	}

	for _, tt := range tests {
		if got := ParseModifiers(tt.input); got != tt.want {
			t.Errorf("ParseModifiers(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
