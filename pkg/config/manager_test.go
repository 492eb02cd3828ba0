//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lerenn/project-sync/configs"
	"github.com/lerenn/project-sync/pkg/fs"
	fsmocks "github.com/lerenn/project-sync/pkg/fs/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRealManager_DefaultConfig(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	config, err := NewManager(fs.NewFS(), "/unused").DefaultConfig()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "Code"), config.BaseFolder)
	assert.Equal(t, filepath.Join(home, ".psync", "projects.json"), config.RegistryFile)
	assert.Equal(t, filepath.Join(home, ".psync", "psync.log"), config.LogFile)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, 4, config.MaxWorkers)
	assert.Equal(t, "main", config.DefaultBranch)
	assert.False(t, config.FetchBeforeStatus)
	assert.Equal(t, 500*time.Millisecond, config.WatchDebounce)
	assert.Equal(t, CloneProtocolHTTPS, config.GitHub.CloneProtocol)
}

func TestRealManager_GetConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `
base_folder: `+filepath.Join(dir, "code")+`
registry_file: `+filepath.Join(dir, "projects.json")+`
max_workers: 8
fetch_before_status: true
watch_debounce: 2s
github:
  clone_protocol: ssh
`)

	config, err := NewManager(fs.NewFS(), path).GetConfig()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "code"), config.BaseFolder)
	assert.Equal(t, 8, config.MaxWorkers)
	assert.True(t, config.FetchBeforeStatus)
	assert.Equal(t, 2*time.Second, config.WatchDebounce)
	assert.Equal(t, CloneProtocolSSH, config.GitHub.CloneProtocol)
	// Missing keys keep their defaults.
	assert.Equal(t, "main", config.DefaultBranch)
	assert.Equal(t, "info", config.LogLevel)
}

func TestRealManager_GetConfig_ExpandsTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	path := writeConfig(t, "base_folder: ~/work\nlog_file: \"\"\n")

	config, err := NewManager(fs.NewFS(), path).GetConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "work"), config.BaseFolder)
	assert.Empty(t, config.LogFile)
}

func TestRealManager_GetConfig_NotInitialized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := NewManager(fs.NewFS(), path).GetConfig()
	assert.ErrorIs(t, err, ErrConfigNotInitialized)
}

func TestRealManager_GetConfig_ParseError(t *testing.T) {
	path := writeConfig(t, "base_folder: [unterminated\n")

	_, err := NewManager(fs.NewFS(), path).GetConfig()
	assert.ErrorIs(t, err, ErrConfigFileParse)
}

func TestRealManager_GetConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{name: "empty base folder", content: "base_folder: \"\"\n", message: "base_folder cannot be empty"},
		{name: "zero workers", content: "max_workers: 0\n", message: "max_workers must be at least 1"},
		{name: "bad log level", content: "log_level: loud\n", message: "log_level must be one of"},
		{name: "bad protocol", content: "github:\n  clone_protocol: ftp\n", message: "github.clone_protocol must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := NewManager(fs.NewFS(), path).GetConfig()
			assert.ErrorIs(t, err, ErrConfigInvalid)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestRealManager_GetConfigWithFallback(t *testing.T) {
	manager := NewManager(fs.NewFS(), filepath.Join(t.TempDir(), "missing.yaml"))

	config, err := manager.GetConfigWithFallback()
	require.NoError(t, err)
	assert.Equal(t, "main", config.DefaultBranch)

	// Parse errors are not hidden by the fallback.
	manager = NewManager(fs.NewFS(), writeConfig(t, "max_workers: [1\n"))
	_, err = manager.GetConfigWithFallback()
	assert.Error(t, err)
}

func TestRealManager_WriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	manager := NewManager(fs.NewFS(), path)

	require.NoError(t, manager.WriteDefault(false))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, configs.DefaultConfigYAML, data)

	err = manager.WriteDefault(false)
	assert.ErrorIs(t, err, ErrConfigAlreadyExists)

	require.NoError(t, os.WriteFile(path, []byte("max_workers: 2\n"), 0644))
	require.NoError(t, manager.WriteDefault(true))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, configs.DefaultConfigYAML, data)
}

func TestRealManager_SaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	manager := NewManager(fs.NewFS(), path)

	config, err := manager.DefaultConfig()
	require.NoError(t, err)
	config.MaxWorkers = 12
	config.WatchDebounce = time.Second

	require.NoError(t, manager.SaveConfig(config))

	loaded, err := manager.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, config, loaded)

	config.MaxWorkers = -1
	assert.ErrorIs(t, manager.SaveConfig(config), ErrConfigInvalid)
}

func TestRealManager_WriteDefault_MkdirFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	manager := NewManager(mockFS, "/home/user/.psync/config.yaml")

	mockFS.EXPECT().Exists("/home/user/.psync/config.yaml").Return(false, nil)
	mockFS.EXPECT().MkdirAll("/home/user/.psync", os.FileMode(0755)).Return(os.ErrPermission)

	err := manager.WriteDefault(false)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestResolvePath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("PSYNC_CONFIG", "")
	path, err := ResolvePath(fs.NewFS(), "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".psync", "config.yaml"), path)

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv("PSYNC_CONFIG", custom)
	path, err = ResolvePath(fs.NewFS(), "")
	require.NoError(t, err)
	assert.Equal(t, custom, path)

	explicit := filepath.Join(t.TempDir(), "explicit.yaml")
	path, err = ResolvePath(fs.NewFS(), explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, path)
}
