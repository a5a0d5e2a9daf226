// Package mouse defines mouse buttons, cursor positions and the held-button
// mask used to turn polled button state into press and release edges.
//
//	prev := mouse.MaskOf(mouse.ButtonLeft)
//	next := mouse.MaskOf(mouse.ButtonRight)
//	down, up := prev.Diff(next) // [right], [left]
package mouse
