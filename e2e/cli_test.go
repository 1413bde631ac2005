//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}

	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	assert.Contains(t, output, "Usage")
	assert.Contains(t, output, "--catalog")
	for _, sub := range []string{"browse", "index", "search", "show", "config"} {
		assert.Contains(t, output, sub)
	}
}

func TestIndexThenShow(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	_, err = tf.CreateLyrics(map[string]string{
		"Paper Moon - June.lrc": "[00:03.00]paper moon\n",
	}, "Paper Moon - June.lrc")
	require.NoError(t, err)

	catalogPath := filepath.Join(workspace, "indexed.json")
	common := []string{"--log", filepath.Join(workspace, "lyrix.log"), "--catalog", catalogPath}

	cmd := exec.Command(binPath, append(common, "index", filepath.Join(workspace, "lyrics"), "--output", catalogPath)...)
	cmd.Env = append(os.Environ(), "HOME="+workspace, "XDG_CONFIG_HOME="+filepath.Join(workspace, ".config"))
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	assert.Contains(t, string(out), "Wrote 1 entries")

	cmd = exec.Command(binPath, append(common, "show", "june")...)
	cmd.Env = append(os.Environ(), "HOME="+workspace, "XDG_CONFIG_HOME="+filepath.Join(workspace, ".config"))
	out, err = cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	assert.Equal(t, "[00:03.00]paper moon\n", string(out))
}
