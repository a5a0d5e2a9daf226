package binding

import (
	"fmt"

	"github.com/dshills/rebind/internal/input/action"
)

// Context is a named, ordered set of bindings. Earlier bindings win.
type Context[A action.Action, C comparable] struct {
	ID       C
	Bindings []Binding[A]
}

// NewContext creates a context with the given bindings.
func NewContext[A action.Action, C comparable](id C, bindings ...Binding[A]) Context[A, C] {
	return Context[A, C]{ID: id, Bindings: bindings}
}

// Add appends bindings and returns the context.
func (c Context[A, C]) Add(bindings ...Binding[A]) Context[A, C] {
	c.Bindings = append(c.Bindings[:len(c.Bindings):len(c.Bindings)], bindings...)
	return c
}

// Prepared returns a copy with every binding sanitized, or the first
// validation error.
func (c Context[A, C]) Prepared() (Context[A, C], error) {
	out := Context[A, C]{ID: c.ID, Bindings: make([]Binding[A], len(c.Bindings))}
	for i, b := range c.Bindings {
		b = b.Sanitize()
		if err := b.Validate(); err != nil {
			return Context[A, C]{}, &Error[C]{Context: c.ID, Index: i, Err: err}
		}
		out.Bindings[i] = b
	}
	return out, nil
}

// Error locates an invalid binding inside a context.
type Error[C comparable] struct {
	Context C
	Index   int
	Err     error
}

func (e *Error[C]) Error() string {
	return fmt.Sprintf("context %v binding %d: %v", e.Context, e.Index, e.Err)
}

func (e *Error[C]) Unwrap() error {
	return e.Err
}
