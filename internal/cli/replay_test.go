package cli

import (
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/rebind/internal/input/key"
	"github.com/dshills/rebind/internal/input/raw"
	"github.com/dshills/rebind/internal/trace"
)

func TestReplayBuiltinGolden(t *testing.T) {
	out, _, err := execute(t, "replay", "testdata/replay.jsonl")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "replay_builtin", []byte(out))
}

func TestReplayWithBindingsFile(t *testing.T) {
	out, _, err := execute(t, "replay", "testdata/replay.jsonl", "--bindings", "testdata/escape_quits.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "bindings: testdata/escape_quits.yaml")
	assert.Contains(t, out, "tick 8 (2 raw)\n  Controller.Action(Jump, [])\n")
	assert.NotContains(t, out, "closed")
	assert.Contains(t, out, "10 ticks, 3 events")
}

func TestReplayRecordedTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.jsonl")
	rec, err := trace.Create(path, "test")
	require.NoError(t, err)
	require.NoError(t, rec.Record([]raw.Event{
		raw.KeyEvent(0, key.KeyW, raw.Press, key.ModNone),
	}))
	require.NoError(t, rec.Record([]raw.Event{
		raw.KeyEvent(0.25, key.KeyW, raw.Release, key.ModNone),
	}))
	require.NoError(t, rec.Close())

	out, _, err := execute(t, "replay", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Controller.State(MoveForward, Activated, 0.000, [])")
	assert.Contains(t, out, "Controller.State(MoveForward, Deactivated, 0.250, [])")
	assert.Contains(t, out, "2 ticks, 2 events")
}

func TestReplayMissingTrace(t *testing.T) {
	_, _, err := execute(t, "replay", "testdata/nope.jsonl")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, ExitCode(err))
}

func TestReplayRequiresTrace(t *testing.T) {
	_, _, err := execute(t, "replay")
	require.Error(t, err)
}
