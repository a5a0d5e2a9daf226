package key

import "strings"

// Modifier is a bitmask of held keyboard modifiers.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << (iota - 1)

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModSuper indicates the Super key (Cmd on macOS, Win on Windows).
	ModSuper
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// Contains returns true if every bit of mods is set in m.
// An empty mods is contained in every mask.
func (m Modifier) Contains(mods Modifier) bool {
	return m&mods == mods
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasSuper returns true if Super is pressed.
func (m Modifier) HasSuper() bool {
	return m.Has(ModSuper)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a human-readable representation like "Ctrl+Alt".
func (m Modifier) String() string {
	return strings.Join(m.Names(), "+")
}

// Names returns the canonical names of the set modifiers in
// Ctrl, Alt, Shift, Super order.
func (m Modifier) Names() []string {
	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.HasSuper() {
		parts = append(parts, "Super")
	}
	return parts
}

// modifierNameMap maps modifier names (lowercase) to Modifier values.
var modifierNameMap = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"shift":   ModShift,
	"super":   ModSuper,
	"meta":    ModSuper,
	"cmd":     ModSuper,
	"command": ModSuper,
	"win":     ModSuper,
	"logo":    ModSuper,
}

// ModifierFromName returns the Modifier for a given name (case-insensitive).
// Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	if m, ok := modifierNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m
	}
	return ModNone
}

// ParseModifiers parses a modifier string like "Ctrl+Alt" or "ctrl-shift".
// Unknown names are ignored.
func ParseModifiers(s string) Modifier {
	s = strings.ToLower(s)

	var parts []string
	if strings.Contains(s, "+") {
		parts = strings.Split(s, "+")
	} else if strings.Contains(s, "-") {
		parts = strings.Split(s, "-")
	} else {
		parts = []string{s}
	}

	var result Modifier
	for _, part := range parts {
		result = result.With(ModifierFromName(part))
	}
	return result
}
