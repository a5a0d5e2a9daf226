package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/rebind/internal/input/key"
)

// specialKeys maps non-rune tcell keys. Control letters that alias Tab,
// Enter and Backspace are resolved here before the Ctrl range below.
var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBacktab:    key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

// convertKey resolves a tcell key event to a key code and modifiers.
// It returns KeyNone for keys with no equivalent.
func convertKey(ev *tcell.EventKey) (key.Key, key.Modifier) {
	mods := convertMod(ev.Modifiers())

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if unicode.IsUpper(r) {
			mods = mods.With(key.ModShift)
		}
		return key.FromRune(r), mods
	}
	if ev.Key() == tcell.KeyBacktab {
		mods = mods.With(key.ModShift)
	}
	if k, ok := specialKeys[ev.Key()]; ok {
		return k, mods
	}

	switch k := ev.Key(); {
	case k == tcell.KeyCtrlSpace:
		return key.KeySpace, mods.With(key.ModCtrl)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.KeyA + key.Key(k-tcell.KeyCtrlA), mods.With(key.ModCtrl)
	}
	return key.KeyNone, mods
}

func convertMod(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModSuper)
	}
	return mods
}

// printable reports whether a rune event should also produce text input.
func printable(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && unicode.IsPrint(ev.Rune())
}
