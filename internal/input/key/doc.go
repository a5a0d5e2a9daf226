// Package key defines layout-independent key codes and the modifier bitmask
// carried by keyboard and mouse events.
//
// Key names are case-insensitive and accept common aliases:
//
//	key.FromName("space")   // KeySpace
//	key.FromName("Esc")     // KeyEscape
//	key.FromName("numpad1") // KeyKP1
//
// Modifiers combine as a bitmask:
//
//	mods := key.ModCtrl | key.ModShift
//	mods.Contains(key.ModCtrl) // true
//	key.ParseModifiers("ctrl+shift") == mods
package key
