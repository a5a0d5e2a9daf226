package remap

import (
	"github.com/dshills/rebind/internal/input/action"
	"github.com/dshills/rebind/internal/input/binding"
)

// Registry holds the loaded contexts by id.
type Registry[A action.Action, C comparable] struct {
	contexts map[C]binding.Context[A, C]
	order    []C
}

// NewRegistry creates an empty registry.
func NewRegistry[A action.Action, C comparable]() *Registry[A, C] {
	return &Registry[A, C]{contexts: make(map[C]binding.Context[A, C])}
}

// Put inserts ctx or replaces the context with the same id. Registration
// order is kept for listing.
func (r *Registry[A, C]) Put(ctx binding.Context[A, C]) {
	if _, ok := r.contexts[ctx.ID]; !ok {
		r.order = append(r.order, ctx.ID)
	}
	r.contexts[ctx.ID] = ctx
}

// Get returns the context for id.
func (r *Registry[A, C]) Get(id C) (binding.Context[A, C], bool) {
	ctx, ok := r.contexts[id]
	return ctx, ok
}

// Has reports whether id is registered.
func (r *Registry[A, C]) Has(id C) bool {
	_, ok := r.contexts[id]
	return ok
}

// Remove deletes id and reports whether it existed.
func (r *Registry[A, C]) Remove(id C) bool {
	if _, ok := r.contexts[id]; !ok {
		return false
	}
	delete(r.contexts, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// IDs returns the registered ids in registration order.
func (r *Registry[A, C]) IDs() []C {
	out := make([]C, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered contexts.
func (r *Registry[A, C]) Len() int {
	return len(r.contexts)
}
