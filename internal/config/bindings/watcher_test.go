package bindings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/rebind/internal/demo"
)

const uiOnly = "contexts:\n  - id: UI\n    bindings:\n      - raw: char\n        action: Text\n"

const twoContexts = uiOnly + "  - id: Default\n    bindings:\n      - raw: key\n        key: space\n        action: Jump\n"

func waitReload(t *testing.T, w *Watcher[demo.Action, demo.ContextID]) Reload[demo.Action, demo.ContextID] {
	t.Helper()
	select {
	case r, ok := <-w.Reloads():
		require.True(t, ok, "reload channel closed")
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
	return Reload[demo.Action, demo.ContextID]{}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(uiOnly), 0o644))

	w, err := newDemoLoader().Watch(path, FormatYAML, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte(twoContexts), 0o644))

	r := waitReload(t, w)
	require.NoError(t, r.Err)
	assert.Len(t, r.Contexts, 2)
}

func TestWatcherReportsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(uiOnly), 0o644))

	w, err := newDemoLoader().Watch(path, FormatYAML, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("contexts: [\n"), 0o644))

	r := waitReload(t, w)
	assert.ErrorIs(t, r.Err, ErrParse)
	assert.Empty(t, r.Contexts)
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(uiOnly), 0o644))

	w, err := newDemoLoader().Watch(path, FormatYAML, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))

	select {
	case r := <-w.Reloads():
		t.Fatalf("unexpected reload: %+v", r)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(uiOnly), 0o644))

	w, err := newDemoLoader().Watch(path, FormatYAML, 0)
	require.NoError(t, err)
	assert.Equal(t, path, w.Path())

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, ok := <-w.Reloads()
	assert.False(t, ok)
}

func TestWatchMissingDirectory(t *testing.T) {
	_, err := newDemoLoader().Watch(filepath.Join(t.TempDir(), "nope", "b.yaml"), FormatYAML, 0)
	assert.Error(t, err)
}
