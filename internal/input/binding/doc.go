// Package binding defines bindings, the pure predicate that matches them
// against raw events, and the contexts that group them.
//
// A binding pairs a Pattern with an application action:
//
//	b := binding.New(binding.KeyPattern(key.KeySpace), Jump).
//		WithState(raw.Press).
//		WithModifiers(key.ModShift)
//
// Match never mutates anything; guards are evaluated through a StateReader
// supplied by the caller. Bindings are sanitized before registration:
// Action bindings default to firing on Release and State bindings drop any
// edge requirement.
package binding
