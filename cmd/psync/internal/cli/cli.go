// Package cli provides the configuration and wiring shared by the psync commands.
package cli

import (
	"errors"
	"fmt"

	"github.com/lerenn/project-sync/pkg/config"
	"github.com/lerenn/project-sync/pkg/dependencies"
	"github.com/lerenn/project-sync/pkg/forge"
	"github.com/lerenn/project-sync/pkg/fs"
	"github.com/lerenn/project-sync/pkg/git"
	"github.com/lerenn/project-sync/pkg/logger"
	"github.com/lerenn/project-sync/pkg/project"
	"github.com/lerenn/project-sync/pkg/registry"
	"github.com/lerenn/project-sync/pkg/runner"
	"github.com/lerenn/project-sync/pkg/watcher"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// App bundles what a command needs once the configuration is loaded.
type App struct {
	Config   config.Config
	Deps     *dependencies.Dependencies
	Projects project.Manager

	closeLog func() error
}

// Close flushes and releases the log file.
func (a *App) Close() {
	if a.closeLog != nil {
		_ = a.closeLog()
	}
}

// RequireGit fails with git.ErrExecutableMissing when git is not on PATH.
func (a *App) RequireGit() error {
	if _, err := a.Deps.FS.Which("git"); err != nil {
		return fmt.Errorf("%w: install git and make sure it is on your PATH", git.ErrExecutableMissing)
	}
	return nil
}

// NewConfigManager creates a config.Manager for the --config path, PSYNC_CONFIG
// or the default location, in that order.
func NewConfigManager() (config.Manager, error) {
	fsys := fs.NewFS()
	path, err := config.ResolvePath(fsys, ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	return config.NewManager(fsys, path), nil
}

// LogLevel returns the level implied by the global flags, falling back to configured.
func LogLevel(configured string) string {
	switch {
	case Verbose:
		return "debug"
	case Quiet:
		return "error"
	default:
		return configured
	}
}

// NewApp loads the configuration strictly and wires every dependency.
func NewApp() (*App, error) {
	cfgManager, err := NewConfigManager()
	if err != nil {
		return nil, err
	}
	cfg, err := cfgManager.GetConfig()
	if err != nil {
		if errors.Is(err, config.ErrConfigNotInitialized) && ConfigPath != "" {
			return nil, fmt.Errorf("%w (psync init -c %s)", err, ConfigPath)
		}
		return nil, err
	}

	log, err := logger.New(logger.Options{
		Level: LogLevel(cfg.LogLevel),
		File:  cfg.LogFile,
	})
	if err != nil {
		return nil, err
	}

	deps := dependencies.New()
	r := runner.NewRunner(log)
	g := git.NewGit(git.NewGitParams{
		Engine: git.NewEngine(git.NewEngineParams{Runner: r, FS: deps.FS, Logger: log}),
		Logger: log,
	})
	resolver, err := forge.NewGitHub(forge.NewGitHubParams{
		Protocol: cfg.GitHub.CloneProtocol,
		Logger:   log,
	})
	if err != nil {
		_ = log.Close()
		return nil, err
	}

	deps = deps.
		WithLogger(log).
		WithRunner(r).
		WithGit(g).
		WithConfig(cfgManager).
		WithRegistry(registry.NewRegistry(deps.FS, cfg.RegistryFile)).
		WithForge(resolver).
		WithWatcher(watcher.NewWatcher(log, cfg.WatchDebounce))
	if err := deps.Validate(); err != nil {
		_ = log.Close()
		return nil, err
	}

	projects, err := project.NewManager(project.NewManagerParams{Dependencies: deps})
	if err != nil {
		_ = log.Close()
		return nil, err
	}

	return &App{
		Config:   cfg,
		Deps:     deps,
		Projects: projects,
		closeLog: log.Close,
	}, nil
}
