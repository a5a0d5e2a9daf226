package remap

// StateInfo is the held state of a State action.
type StateInfo struct {
	Active bool
	Start  float64
	Stop   float64
}

// Duration returns how long the state has been held at now, or 0 when it
// is not held or now precedes Start.
func (s StateInfo) Duration(now float64) float64 {
	if s.Active && s.Start <= now {
		return now - s.Start
	}
	return 0
}

// StateStore holds per-action state. The zero value is not usable; create
// one with NewStateStore.
type StateStore[A comparable] struct {
	infos map[A]StateInfo
}

// NewStateStore creates an empty store.
func NewStateStore[A comparable]() *StateStore[A] {
	return &StateStore[A]{infos: make(map[A]StateInfo)}
}

// IsActive reports whether a is currently held.
func (s *StateStore[A]) IsActive(a A) bool {
	return s.infos[a].Active
}

// Get returns the stored state for a.
func (s *StateStore[A]) Get(a A) (StateInfo, bool) {
	info, ok := s.infos[a]
	return info, ok
}

// Activate marks a held at now. Start only moves on a false to true edge.
func (s *StateStore[A]) Activate(a A, now float64) {
	info := s.infos[a]
	if info.Active {
		return
	}
	s.infos[a] = StateInfo{Active: true, Start: now}
}

// Deactivate marks a released at now, keeping Start.
func (s *StateStore[A]) Deactivate(a A, now float64) {
	info := s.infos[a]
	info.Active = false
	info.Stop = now
	s.infos[a] = info
}

// Len returns the number of stored entries.
func (s *StateStore[A]) Len() int {
	return len(s.infos)
}

// Active returns the currently held actions in no particular order.
func (s *StateStore[A]) Active() []A {
	var out []A
	for a, info := range s.infos {
		if info.Active {
			out = append(out, a)
		}
	}
	return out
}

// Prune drops inactive entries released more than retention seconds before
// now and returns how many were removed. Absent and inactive entries
// classify identically.
func (s *StateStore[A]) Prune(now, retention float64) int {
	removed := 0
	for a, info := range s.infos {
		if !info.Active && now-info.Stop > retention {
			delete(s.infos, a)
			removed++
		}
	}
	return removed
}

// Reset drops every entry.
func (s *StateStore[A]) Reset() {
	clear(s.infos)
}
