package remap

import (
	"slices"
	"sort"
)

// ActiveContext is an entry in the active stack. Lower priorities are
// scanned first.
type ActiveContext[C comparable] struct {
	ID       C
	Priority uint32
}

// ActiveStack is the ordered set of enabled contexts. Each id appears at
// most once; equal priorities keep activation order.
type ActiveStack[C comparable] struct {
	entries []ActiveContext[C]
}

// Activate inserts id at priority, replacing any existing entry for id.
func (s *ActiveStack[C]) Activate(id C, priority uint32) {
	s.Deactivate(id)
	i := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].Priority > priority
	})
	s.entries = slices.Insert(s.entries, i, ActiveContext[C]{ID: id, Priority: priority})
}

// Deactivate removes id and reports whether it was present.
func (s *ActiveStack[C]) Deactivate(id C) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	return true
}

// Toggle deactivates id if present, otherwise activates it at priority.
// It returns whether id is active afterwards.
func (s *ActiveStack[C]) Toggle(id C, priority uint32) bool {
	if s.Deactivate(id) {
		return false
	}
	s.Activate(id, priority)
	return true
}

// Contains reports whether id is active.
func (s *ActiveStack[C]) Contains(id C) bool {
	return s.index(id) >= 0
}

// Priority returns the priority id is active at.
func (s *ActiveStack[C]) Priority(id C) (uint32, bool) {
	if i := s.index(id); i >= 0 {
		return s.entries[i].Priority, true
	}
	return 0, false
}

// Entries returns a copy of the stack in scan order.
func (s *ActiveStack[C]) Entries() []ActiveContext[C] {
	return slices.Clone(s.entries)
}

// Len returns the number of active contexts.
func (s *ActiveStack[C]) Len() int {
	return len(s.entries)
}

func (s *ActiveStack[C]) index(id C) int {
	return slices.IndexFunc(s.entries, func(e ActiveContext[C]) bool {
		return e.ID == id
	})
}
