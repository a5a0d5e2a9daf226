package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateClean(t *testing.T) {
	out, _, err := execute(t, "validate", "testdata/escape_quits.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "testdata/escape_quits.yaml (yaml): 1 contexts, 2 bindings")
	assert.Contains(t, out, "key:Q release -> Close (action)")
}

func TestValidateDropped(t *testing.T) {
	out, errOut, err := execute(t, "validate", "testdata/broken.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.Contains(t, out, "1 contexts, 1 bindings")
	assert.Contains(t, out, `dropped: context "Default" binding 0 dropped: unknown action "Fly"`)
	assert.Contains(t, errOut, "binding dropped")
}

func TestValidateMissingFile(t *testing.T) {
	_, _, err := execute(t, "validate", "testdata/missing.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, ExitCode(err))
}

func TestValidateFormatFlag(t *testing.T) {
	_, _, err := execute(t, "validate", "--format", "ini", "testdata/escape_quits.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, ExitCode(err))

	// Parsing YAML as TOML fails to decode.
	_, _, err = execute(t, "validate", "--format", "toml", "testdata/escape_quits.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, ExitCode(err))
}

func TestExportValidates(t *testing.T) {
	out, _, err := execute(t, "export")
	require.NoError(t, err)
	assert.Contains(t, out, "version: 1")
	assert.Contains(t, out, "state_active: InternalButton")
}

func TestSchemaCommand(t *testing.T) {
	out, _, err := execute(t, "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"$schema"`)
}
