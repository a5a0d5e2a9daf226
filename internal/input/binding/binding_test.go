package binding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/rebind/internal/input/action"
	"github.com/dshills/rebind/internal/input/key"
	"github.com/dshills/rebind/internal/input/mouse"
	"github.com/dshills/rebind/internal/input/raw"
)

type testAction int

const (
	actJump testAction = iota
	actHold
	actLook
	actType
)

func (a testAction) Kind() action.Kind {
	switch a {
	case actHold:
		return action.KindState
	case actLook:
		return action.KindRange
	default:
		return action.KindAction
	}
}

func (a testAction) Args() []action.ArgKind {
	if a == actType {
		return []action.ArgKind{action.ArgValue}
	}
	return nil
}

func (a testAction) String() string {
	return [...]string{"Jump", "Hold", "Look", "Type"}[a]
}

type states map[testAction]bool

func (s states) IsActive(a testAction) bool { return s[a] }

func TestNewCopiesMetadata(t *testing.T) {
	b := New(CharPattern(), actType)
	assert.Equal(t, action.KindAction, b.Kind)
	assert.Equal(t, []action.ArgKind{action.ArgValue}, b.Args)

	h := New(KeyPattern(key.KeyW), actHold)
	assert.Equal(t, action.KindState, h.Kind)
	assert.Empty(t, h.Args)
}

func TestBuildersDoNotAlias(t *testing.T) {
	base := New(KeyPattern(key.KeyA), actJump)
	pressed := base.WithState(raw.Press)
	released := base.WithState(raw.Release)

	assert.Nil(t, base.State)
	require.NotNil(t, pressed.State)
	require.NotNil(t, released.State)
	assert.Equal(t, raw.Press, *pressed.State)
	assert.Equal(t, raw.Release, *released.State)
}

func TestSanitize(t *testing.T) {
	t.Run("action defaults to release", func(t *testing.T) {
		b := New(KeyPattern(key.KeySpace), actJump).Sanitize()
		require.NotNil(t, b.State)
		assert.Equal(t, raw.Release, *b.State)
	})

	t.Run("action keeps explicit press", func(t *testing.T) {
		b := New(KeyPattern(key.KeySpace), actJump).WithState(raw.Press).Sanitize()
		require.NotNil(t, b.State)
		assert.Equal(t, raw.Press, *b.State)
	})

	t.Run("state clears requirement", func(t *testing.T) {
		b := New(KeyPattern(key.KeyW), actHold).WithState(raw.Press).Sanitize()
		assert.Nil(t, b.State)
	})

	t.Run("range untouched", func(t *testing.T) {
		b := New(MotionPattern(), actLook).Sanitize()
		assert.Nil(t, b.State)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		binding Binding[testAction]
		wantErr error
	}{
		{"key action", New(KeyPattern(key.KeyA), actJump), nil},
		{"button state", New(ButtonPattern(mouse.ButtonLeft), actHold), nil},
		{"motion range", New(MotionPattern(), actLook), nil},
		{"char action", New(CharPattern(), actType), nil},
		{"motion state", New(MotionPattern(), actHold), ErrStateWithoutEdge},
		{"char state", New(CharPattern(), actHold), ErrStateWithoutEdge},
		{"window pattern", New(Pattern{Kind: raw.KindResize}, actJump), ErrWindowPattern},
		{"repeat edge", New(KeyPattern(key.KeyA), actJump).WithState(raw.Repeat), ErrRepeatState},
		{"state guard", New(MotionPattern(), actLook).WithGuard(actHold), nil},
		{"action guard", New(MotionPattern(), actLook).WithGuard(actJump), ErrGuardNotState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.binding.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMatchKey(t *testing.T) {
	space := New(KeyPattern(key.KeySpace), actJump).WithState(raw.Press)

	tests := []struct {
		name string
		ev   raw.Event
		want bool
	}{
		{"exact", raw.KeyEvent(0, key.KeySpace, raw.Press, 0), true},
		{"wrong key", raw.KeyEvent(0, key.KeyA, raw.Press, 0), false},
		{"wrong edge", raw.KeyEvent(0, key.KeySpace, raw.Release, 0), false},
		{"repeat is not press", raw.KeyEvent(0, key.KeySpace, raw.Repeat, 0), false},
		{"extra modifiers ok", raw.KeyEvent(0, key.KeySpace, raw.Press, key.ModCtrl), true},
		{"wrong variant", raw.CharEvent(0, ' '), false},
		{"nil payload", raw.Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(space, tt.ev, states{}); got != tt.want {
				t.Errorf("Match(%v) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestMatchWildcards(t *testing.T) {
	anyKey := New(KeyPattern(key.KeyNone), actJump)
	anyButton := New(ButtonPattern(mouse.ButtonNone), actJump)

	assert.True(t, Match(anyKey, raw.KeyEvent(0, key.KeyQ, raw.Repeat, 0), nil))
	assert.True(t, Match(anyButton, raw.ButtonEvent(0, mouse.ButtonForward, mouse.Position{}, raw.Press, 0), nil))
	assert.False(t, Match(anyButton, raw.KeyEvent(0, key.KeyQ, raw.Press, 0), nil))
}

func TestMatchModifiers(t *testing.T) {
	b := New(KeyPattern(key.KeyS), actJump).WithModifiers(key.ModCtrl | key.ModShift)

	assert.False(t, Match(b, raw.KeyEvent(0, key.KeyS, raw.Release, key.ModCtrl), nil))
	assert.True(t, Match(b, raw.KeyEvent(0, key.KeyS, raw.Release, key.ModCtrl|key.ModShift), nil))
	assert.True(t, Match(b, raw.KeyEvent(0, key.KeyS, raw.Release, key.ModCtrl|key.ModShift|key.ModAlt), nil))
}

func TestMatchButtonModifiers(t *testing.T) {
	b := New(ButtonPattern(mouse.ButtonLeft), actJump).WithModifiers(key.ModAlt)
	pos := mouse.Position{X: 0.1, Y: 0.2}

	assert.False(t, Match(b, raw.ButtonEvent(0, mouse.ButtonLeft, pos, raw.Press, 0), nil))
	assert.True(t, Match(b, raw.ButtonEvent(0, mouse.ButtonLeft, pos, raw.Press, key.ModAlt), nil))
}

func TestMatchMotionAndCharIgnoreEdge(t *testing.T) {
	look := New(MotionPattern(), actLook).WithState(raw.Press)
	typed := New(CharPattern(), actType).Sanitize()

	assert.True(t, Match(look, raw.MotionEvent(0, 0.5, 0.5), nil))
	assert.True(t, Match(typed, raw.CharEvent(0, 'x'), nil))
}

func TestMatchGuard(t *testing.T) {
	b := New(MotionPattern(), actLook).WithGuard(actHold)
	ev := raw.MotionEvent(0, 0.5, 0.5)

	assert.False(t, Match(b, ev, states{}))
	assert.False(t, Match(b, ev, nil))
	assert.True(t, Match(b, ev, states{actHold: true}))
}

func TestBindingString(t *testing.T) {
	b := New(KeyPattern(key.KeySpace), actJump).
		WithState(raw.Press).
		WithModifiers(key.ModShift).
		WithGuard(actHold)
	assert.Equal(t, "Shift+key:Space press [Hold] -> Jump (action)", b.String())
	assert.Equal(t, "motion -> Look (range)", New(MotionPattern(), actLook).String())
}

func TestContextPrepared(t *testing.T) {
	ctx := NewContext[testAction, string]("Default",
		New(KeyPattern(key.KeySpace), actJump),
		New(KeyPattern(key.KeyW), actHold).WithState(raw.Press),
	)

	prepared, err := ctx.Prepared()
	require.NoError(t, err)
	require.Len(t, prepared.Bindings, 2)
	assert.Equal(t, raw.Release, *prepared.Bindings[0].State)
	assert.Nil(t, prepared.Bindings[1].State)

	// the source context is untouched
	assert.Nil(t, ctx.Bindings[0].State)
	require.NotNil(t, ctx.Bindings[1].State)
}

func TestContextPreparedError(t *testing.T) {
	ctx := NewContext[testAction, string]("UI",
		New(KeyPattern(key.KeyA), actJump),
		New(CharPattern(), actHold),
	)

	_, err := ctx.Prepared()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStateWithoutEdge)

	var berr *Error[string]
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, "UI", berr.Context)
	assert.Equal(t, 1, berr.Index)
}

func TestContextAddDoesNotAlias(t *testing.T) {
	base := NewContext[testAction, string]("Default", New(KeyPattern(key.KeyA), actJump))
	a := base.Add(New(KeyPattern(key.KeyB), actJump))
	b := base.Add(New(KeyPattern(key.KeyC), actJump))

	assert.Len(t, base.Bindings, 1)
	assert.Equal(t, key.KeyB, a.Bindings[1].Pattern.Key)
	assert.Equal(t, key.KeyC, b.Bindings[1].Pattern.Key)
}
