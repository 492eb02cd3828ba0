//go:build unit

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/project-sync/cmd/psync/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		cli.Quiet, cli.Verbose, cli.ConfigPath = false, false, ""
	})

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCmd_Commands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{
		"init", "add", "list", "remove", "restore", "sync",
		"push", "status", "scan", "branch", "history", "watch", "config",
	} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}

	for _, flag := range []string{"quiet", "verbose", "config"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}

	branch, _, err := root.Find([]string{"branch"})
	require.NoError(t, err)
	assert.NotNil(t, branch.Flags().Lookup("create"))

	history, _, err := root.Find([]string{"history"})
	require.NoError(t, err)
	assert.NotNil(t, history.Flags().ShorthandLookup("n"))
	assert.NotNil(t, history.Flags().ShorthandLookup("o"))
}

func TestInitListConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PSYNC_CONFIG", "")
	configPath := filepath.Join(home, "custom", "config.yaml")
	base := filepath.Join(home, "src")

	out, err := execute(t, "init", "-c", configPath, "--base-folder", base)
	require.NoError(t, err)
	assert.Contains(t, out, "psync initialized")
	assert.DirExists(t, base)
	assert.FileExists(t, filepath.Join(home, ".psync", "projects.json"))

	_, err = execute(t, "init", "-c", configPath, "--base-folder", base)
	assert.Error(t, err)

	out, err = execute(t, "list", "-c", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No projects found")

	out, err = execute(t, "config", "-c", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "# "+configPath)
	assert.Contains(t, out, "base_folder: "+base)
	assert.Contains(t, out, "max_workers: 4")
}

func TestCommands_RequireInit(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PSYNC_CONFIG", "")

	_, err := execute(t, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "psync init")

	_, err = os.Stat(filepath.Join(home, ".psync", "config.yaml"))
	assert.True(t, os.IsNotExist(err))
}
