package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/rebind/internal/input/action"
	"github.com/dshills/rebind/internal/input/remap"
)

func TestParseAction(t *testing.T) {
	for _, a := range Actions() {
		got, ok := ParseAction(a.String())
		require.True(t, ok, a.String())
		assert.Equal(t, a, got)
	}
	got, ok := ParseAction("jump")
	assert.True(t, ok)
	assert.Equal(t, Jump, got)

	_, ok = ParseAction("Fly")
	assert.False(t, ok)
}

func TestParseContextID(t *testing.T) {
	id, ok := ParseContextID("ui")
	require.True(t, ok)
	assert.Equal(t, UI, id)

	_, ok = ParseContextID("Combat")
	assert.False(t, ok)
}

func TestActionMetadata(t *testing.T) {
	assert.Equal(t, action.KindState, Click.Kind())
	assert.Equal(t, []action.ArgKind{action.ArgCursorPosition}, Click.Args())
	assert.Equal(t, action.KindRange, RotateCamera.Kind())
	assert.Equal(t, []action.ArgKind{action.ArgValue}, Text.Args())
	assert.Equal(t, action.KindAction, Action(200).Kind())
}

func TestContextsRegister(t *testing.T) {
	r := remap.New[Action, ContextID]()
	require.NoError(t, r.RegisterAll(Contexts()...))
	assert.Equal(t, []ContextID{Default, UI}, r.Contexts())
}
