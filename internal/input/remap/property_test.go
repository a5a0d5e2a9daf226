package remap

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dshills/rebind/internal/input/action"
	"github.com/dshills/rebind/internal/input/binding"
	"github.com/dshills/rebind/internal/input/key"
	"github.com/dshills/rebind/internal/input/raw"
)

var propertyKeys = []key.Key{key.KeyA, key.KeyB, key.KeyC, key.KeySpace}

func genKeyEvent() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(0, len(propertyKeys)-1),
		gen.IntRange(0, 2),
		gen.Float64Range(0, 100),
	).Map(func(v []any) raw.Event {
		return raw.KeyEvent(v[2].(float64), propertyKeys[v[0].(int)], raw.Action(v[1].(int)), key.ModNone)
	})
}

// Every context binds every key, so several contexts match each event.
func overlappingRemapper(priorities []uint32) *remapper {
	r := newRemapper()
	names := []string{"c0", "c1", "c2", "c3", "c4"}
	for i := range priorities {
		var bs []binding.Binding[testAction]
		for _, k := range propertyKeys {
			bs = append(bs,
				binding.New(binding.KeyPattern(k), actJump).WithState(raw.Press),
				binding.New(binding.KeyPattern(k), actHold),
			)
		}
		_ = r.Register(ctx(names[i], bs...))
	}
	for i, p := range priorities {
		r.Activate(names[i], p)
	}
	return r
}

func TestProcess_PropertyAtMostOneMatch(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("exactly one controller event per matching input event", prop.ForAll(
		func(priorities []uint32, batch []raw.Event) bool {
			if len(priorities) > 5 {
				priorities = priorities[:5]
			}
			r := overlappingRemapper(priorities)
			out := r.Process(batch)
			if len(priorities) == 0 {
				return len(out) == 0
			}
			// every key event matches at least the State binding
			return len(out) == len(batch)
		},
		gen.SliceOf(gen.UInt32Range(0, 3)),
		gen.SliceOf(genKeyEvent()),
	))

	properties.TestingRun(t)
}

func TestProcess_PropertyLowestPriorityWins(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("winning context has the lowest priority, earliest on ties", prop.ForAll(
		func(priorities []uint32, k int) bool {
			r := newRemapper()
			names := []string{"c0", "c1", "c2", "c3", "c4"}
			for i := range priorities {
				bs := []binding.Binding[testAction]{
					binding.New(binding.KeyPattern(propertyKeys[k]), actWhere),
				}
				if err := r.Register(ctx(names[i], bs...)); err != nil {
					return false
				}
			}
			best := -1
			for i, p := range priorities {
				r.Activate(names[i], p)
				if best < 0 || p < priorities[best] {
					best = i
				}
			}

			c, ok := r.ProcessOne(raw.KeyEvent(0, propertyKeys[k], raw.Release, 0))
			if !ok {
				return false
			}
			ctxArg, found := c.Arg(action.ArgContextID)
			return found && ctxArg.Context == names[best]
		},
		gen.SliceOfN(5, gen.UInt32Range(0, 4)),
		gen.IntRange(0, len(propertyKeys)-1),
	))

	properties.TestingRun(t)
}
