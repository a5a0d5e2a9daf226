package key

import (
	"fmt"
	"strings"
)

// Key identifies a physical keyboard key independent of layout.
// KeyNone doubles as the wildcard in binding patterns.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Digits
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeySpace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Modifier keys as keys in their own right.
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper

	// Punctuation
	KeyMinus
	KeyEquals
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash

	// Other special keys
	KeyPause
	KeyPrintScreen
	KeyScrollLock
	KeyNumLock
	KeyCapsLock

	// Keypad keys
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPAdd
	KeyKPSubtract
	KeyKPMultiply
	KeyKPDivide
	KeyKPDecimal
	KeyKPEnter

	keyCount
)

var keyNames = [...]string{
	KeyNone:         "None",
	Key0:            "0",
	Key1:            "1",
	Key2:            "2",
	Key3:            "3",
	Key4:            "4",
	Key5:            "5",
	Key6:            "6",
	Key7:            "7",
	Key8:            "8",
	Key9:            "9",
	KeyA:            "A",
	KeyB:            "B",
	KeyC:            "C",
	KeyD:            "D",
	KeyE:            "E",
	KeyF:            "F",
	KeyG:            "G",
	KeyH:            "H",
	KeyI:            "I",
	KeyJ:            "J",
	KeyK:            "K",
	KeyL:            "L",
	KeyM:            "M",
	KeyN:            "N",
	KeyO:            "O",
	KeyP:            "P",
	KeyQ:            "Q",
	KeyR:            "R",
	KeyS:            "S",
	KeyT:            "T",
	KeyU:            "U",
	KeyV:            "V",
	KeyW:            "W",
	KeyX:            "X",
	KeyY:            "Y",
	KeyZ:            "Z",
	KeyEscape:       "Escape",
	KeyEnter:        "Enter",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyDelete:       "Delete",
	KeyInsert:       "Insert",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeySpace:        "Space",
	KeyUp:           "Up",
	KeyDown:         "Down",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyF1:           "F1",
	KeyF2:           "F2",
	KeyF3:           "F3",
	KeyF4:           "F4",
	KeyF5:           "F5",
	KeyF6:           "F6",
	KeyF7:           "F7",
	KeyF8:           "F8",
	KeyF9:           "F9",
	KeyF10:          "F10",
	KeyF11:          "F11",
	KeyF12:          "F12",
	KeyLeftShift:    "LShift",
	KeyRightShift:   "RShift",
	KeyLeftControl:  "LControl",
	KeyRightControl: "RControl",
	KeyLeftAlt:      "LAlt",
	KeyRightAlt:     "RAlt",
	KeyLeftSuper:    "LSuper",
	KeyRightSuper:   "RSuper",
	KeyMinus:        "Minus",
	KeyEquals:       "Equals",
	KeyLeftBracket:  "LBracket",
	KeyRightBracket: "RBracket",
	KeyBackslash:    "Backslash",
	KeySemicolon:    "Semicolon",
	KeyApostrophe:   "Apostrophe",
	KeyGrave:        "Grave",
	KeyComma:        "Comma",
	KeyPeriod:       "Period",
	KeySlash:        "Slash",
	KeyPause:        "Pause",
	KeyPrintScreen:  "PrintScreen",
	KeyScrollLock:   "ScrollLock",
	KeyNumLock:      "NumLock",
	KeyCapsLock:     "CapsLock",
	KeyKP0:          "KP0",
	KeyKP1:          "KP1",
	KeyKP2:          "KP2",
	KeyKP3:          "KP3",
	KeyKP4:          "KP4",
	KeyKP5:          "KP5",
	KeyKP6:          "KP6",
	KeyKP7:          "KP7",
	KeyKP8:          "KP8",
	KeyKP9:          "KP9",
	KeyKPAdd:        "KP+",
	KeyKPSubtract:   "KP-",
	KeyKPMultiply:   "KP*",
	KeyKPDivide:     "KP/",
	KeyKPDecimal:    "KP.",
	KeyKPEnter:      "KPEnter",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", k)
}

// IsValid reports whether k is a known key other than KeyNone.
func (k Key) IsValid() bool {
	return k > KeyNone && k < keyCount
}

// IsLetter returns true for A through Z.
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsDigit returns true for the number row keys.
func (k Key) IsDigit() bool {
	return k >= Key0 && k <= Key9
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// IsModifierKey returns true for the shift/control/alt/super keys.
func (k Key) IsModifierKey() bool {
	return k >= KeyLeftShift && k <= KeyRightSuper
}

// IsKeypadKey returns true if this is a keypad key.
func (k Key) IsKeypadKey() bool {
	return k >= KeyKP0 && k <= KeyKPEnter
}

// keyAliases maps alternate spellings (lowercase) to Key values.
var keyAliases = map[string]Key{
	"esc":       KeyEscape,
	"return":    KeyEnter,
	"cr":        KeyEnter,
	"back":      KeyBackspace,
	"bs":        KeyBackspace,
	"del":       KeyDelete,
	"ins":       KeyInsert,
	"pgup":      KeyPageUp,
	"pgdn":      KeyPageDown,
	"key0":      Key0,
	"key1":      Key1,
	"key2":      Key2,
	"key3":      Key3,
	"key4":      Key4,
	"key5":      Key5,
	"key6":      Key6,
	"key7":      Key7,
	"key8":      Key8,
	"key9":      Key9,
	"lcontrol":  KeyLeftControl,
	"rcontrol":  KeyRightControl,
	"lctrl":     KeyLeftControl,
	"rctrl":     KeyRightControl,
	"lwin":      KeyLeftSuper,
	"rwin":      KeyRightSuper,
	"snapshot":  KeyPrintScreen,
	"scroll":    KeyScrollLock,
	"capital":   KeyCapsLock,
	"numpad0":   KeyKP0,
	"numpad1":   KeyKP1,
	"numpad2":   KeyKP2,
	"numpad3":   KeyKP3,
	"numpad4":   KeyKP4,
	"numpad5":   KeyKP5,
	"numpad6":   KeyKP6,
	"numpad7":   KeyKP7,
	"numpad8":   KeyKP8,
	"numpad9":   KeyKP9,
}

// keyNameMap maps canonical key names (lowercase) to Key values.
var keyNameMap = func() map[string]Key {
	m := make(map[string]Key, int(keyCount)+len(keyAliases))
	for k := KeyNone; k < keyCount; k++ {
		m[strings.ToLower(keyNames[k])] = k
	}
	for name, k := range keyAliases {
		m[name] = k
	}
	return m
}()

// FromName returns the Key for a given name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func FromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	return KeyNone
}

// FromRune returns the key that produces r on a US layout without modifiers
// other than Shift. Returns KeyNone when there is no such key.
func FromRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0')
	}
	switch r {
	case ' ':
		return KeySpace
	case '-', '_':
		return KeyMinus
	case '=', '+':
		return KeyEquals
	case '[', '{':
		return KeyLeftBracket
	case ']', '}':
		return KeyRightBracket
	case '\\', '|':
		return KeyBackslash
	case ';', ':':
		return KeySemicolon
	case '\'', '"':
		return KeyApostrophe
	case '`', '~':
		return KeyGrave
	case ',', '<':
		return KeyComma
	case '.', '>':
		return KeyPeriod
	case '/', '?':
		return KeySlash
	}
	return KeyNone
}
