// Package term converts tcell terminal events into raw input events.
//
// Terminals report key presses but not releases. The adapter treats the
// most recent key as held: a different key releases it, the same key again
// is reported as a repeat, and Expire or Flush release it after the
// terminal goes quiet. Printable runes also produce a Char event.
//
// Mouse positions are cell coordinates normalized by the current grid size
// so that motion deltas are independent of the terminal dimensions.
package term
