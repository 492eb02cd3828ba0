//go:build e2e

// Package test holds the end-to-end tests of psync. They drive the project
// manager against real git repositories created in temporary directories.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lerenn/project-sync/pkg/config"
	"github.com/lerenn/project-sync/pkg/dependencies"
	"github.com/lerenn/project-sync/pkg/forge"
	"github.com/lerenn/project-sync/pkg/fs"
	"github.com/lerenn/project-sync/pkg/git"
	"github.com/lerenn/project-sync/pkg/logger"
	"github.com/lerenn/project-sync/pkg/project"
	"github.com/lerenn/project-sync/pkg/registry"
	"github.com/lerenn/project-sync/pkg/runner"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestSetup holds the test environment setup
type TestSetup struct {
	TempDir      string
	ConfigPath   string
	BaseFolder   string
	RegistryPath string
	// Remote is a bare repository with one commit on main.
	Remote string
	// Seed is a clone of Remote used to publish upstream changes.
	Seed string

	Manager  project.Manager
	Registry registry.Registry
}

type setupOptions struct {
	fetchBeforeStatus bool
}

// setupTestEnvironment isolates git, writes a configuration and wires a
// project manager over real dependencies.
func setupTestEnvironment(t *testing.T, opts setupOptions) *TestSetup {
	t.Helper()

	tempDir := t.TempDir()
	home := filepath.Join(tempDir, "home")
	require.NoError(t, os.MkdirAll(home, 0755))
	gitConfig := filepath.Join(home, ".gitconfig")
	require.NoError(t, os.WriteFile(gitConfig, []byte("[init]\n\tdefaultBranch = main\n"), 0644))

	t.Setenv("HOME", home)
	t.Setenv("GIT_CONFIG_GLOBAL", gitConfig)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_AUTHOR_NAME", "Test User")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test User")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")

	setup := &TestSetup{
		TempDir:      tempDir,
		ConfigPath:   filepath.Join(home, ".psync", "config.yaml"),
		BaseFolder:   filepath.Join(tempDir, "Code"),
		RegistryPath: filepath.Join(home, ".psync", "projects.json"),
	}
	require.NoError(t, os.MkdirAll(setup.BaseFolder, 0755))
	setup.Remote, setup.Seed = createRemote(t, tempDir)

	cfg := config.Config{
		BaseFolder:        setup.BaseFolder,
		RegistryFile:      setup.RegistryPath,
		LogLevel:          "debug",
		MaxWorkers:        2,
		DefaultBranch:     "main",
		FetchBeforeStatus: opts.fetchBeforeStatus,
		GitHub:            config.GitHubConfig{CloneProtocol: config.CloneProtocolHTTPS},
	}
	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(setup.ConfigPath), 0755))
	require.NoError(t, os.WriteFile(setup.ConfigPath, data, 0644))

	setup.Manager, setup.Registry = createE2EManager(t, setup.ConfigPath)
	return setup
}

// createE2EManager wires the project manager the way psync does.
func createE2EManager(t *testing.T, configPath string) (project.Manager, registry.Registry) {
	t.Helper()

	fsys := fs.NewFS()
	cfgManager := config.NewManager(fsys, configPath)
	cfg, err := cfgManager.GetConfig()
	require.NoError(t, err)

	l := logger.NewNoopLogger()
	r := runner.NewRunner(l)
	resolver, err := forge.NewGitHub(forge.NewGitHubParams{Protocol: cfg.GitHub.CloneProtocol, Logger: l})
	require.NoError(t, err)
	reg := registry.NewRegistry(fsys, cfg.RegistryFile)

	deps := dependencies.New().
		WithFS(fsys).
		WithRunner(r).
		WithGit(git.NewGit(git.NewGitParams{
			Engine: git.NewEngine(git.NewEngineParams{Runner: r, FS: fsys, Logger: l}),
			Logger: l,
		})).
		WithConfig(cfgManager).
		WithRegistry(reg).
		WithLogger(l).
		WithForge(resolver)
	require.NoError(t, deps.Validate())

	m, err := project.NewManager(project.NewManagerParams{Dependencies: deps})
	require.NoError(t, err)
	return m, reg
}

// createRemote creates a bare repository seeded with one commit on main.
func createRemote(t *testing.T, root string) (remote, seed string) {
	t.Helper()
	remote = filepath.Join(root, "remotes", "app.git")
	seed = filepath.Join(root, "seed")

	require.NoError(t, os.MkdirAll(filepath.Dir(remote), 0755))
	runGit(t, root, "init", "--bare", remote)
	runGit(t, remote, "symbolic-ref", "HEAD", "refs/heads/main")
	runGit(t, root, "init", seed)
	runGit(t, seed, "checkout", "-B", "main")
	commitFile(t, seed, "README.md", "hello\n")
	runGit(t, seed, "remote", "add", "origin", remote)
	runGit(t, seed, "push", "-u", "origin", "main")
	return remote, seed
}

func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s: %s", strings.Join(args, " "), out)
	return string(out)
}

func commitFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	runGit(t, dir, "add", name)
	runGit(t, dir, "commit", "-m", "update "+name)
}

// publish commits a file in the seed clone and pushes it to the remote.
func publish(t *testing.T, setup *TestSetup, name, content string) {
	t.Helper()
	commitFile(t, setup.Seed, name, content)
	runGit(t, setup.Seed, "push", "origin", "main")
}
