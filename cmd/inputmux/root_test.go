package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "inputmux version "+version)
	assert.Contains(t, out, "commit: "+commit)
}

func TestConfigCommand_Defaults(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)

	var got map[string]map[string]any
	require.NoError(t, toml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "info", got["log"]["level"])
	assert.Equal(t, "16ms", got["input"]["wait_timeout"])
	assert.Equal(t, "500ms", got["hold"]["trigger"])
}

func TestConfigCommand_FileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputmux.toml")
	require.NoError(t, os.WriteFile(path, []byte("[hold]\ntrigger = \"1s\"\n"), 0o644))

	out, err := execute(t, "--config", path, "--log-level", "debug", "config")
	require.NoError(t, err)

	var got map[string]map[string]any
	require.NoError(t, toml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "debug", got["log"]["level"])
	assert.Equal(t, "1s", got["hold"]["trigger"])
}

func TestConfigCommand_InvalidLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestConfigCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.toml"), "config")
	assert.Error(t, err)
}
