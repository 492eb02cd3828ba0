// Package dependencies provides a centralized dependency container for psync.
// Related dependencies are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"

	"github.com/lerenn/project-sync/pkg/config"
	"github.com/lerenn/project-sync/pkg/forge"
	"github.com/lerenn/project-sync/pkg/fs"
	"github.com/lerenn/project-sync/pkg/git"
	"github.com/lerenn/project-sync/pkg/gitmeta"
	"github.com/lerenn/project-sync/pkg/logger"
	"github.com/lerenn/project-sync/pkg/prompt"
	"github.com/lerenn/project-sync/pkg/registry"
	"github.com/lerenn/project-sync/pkg/runner"
	"github.com/lerenn/project-sync/pkg/watcher"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing        = errors.New("fs dependency is required but not set")
	ErrRunnerMissing    = errors.New("runner dependency is required but not set")
	ErrGitMissing       = errors.New("git dependency is required but not set")
	ErrConfigMissing    = errors.New("config dependency is required but not set")
	ErrRegistryMissing  = errors.New("registry dependency is required but not set")
	ErrLoggerMissing    = errors.New("logger dependency is required but not set")
	ErrPromptMissing    = errors.New("prompt dependency is required but not set")
	ErrForgeMissing     = errors.New("forge dependency is required but not set")
	ErrInspectorMissing = errors.New("inspector dependency is required but not set")
	ErrWatcherMissing   = errors.New("watcher dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS        fs.FS
	Runner    runner.Runner
	Git       git.Git
	Config    config.Manager
	Registry  registry.Registry
	Logger    logger.Logger
	Prompt    prompt.Prompter
	Forge     forge.Resolver
	Inspector gitmeta.Inspector
	Watcher   watcher.Watcher
}

// New creates a new Dependencies instance with defaults for everything
// that does not depend on the configuration.
func New() *Dependencies {
	l := logger.NewNoopLogger()
	f := fs.NewFS()
	r := runner.NewRunner(l)
	return &Dependencies{
		FS:     f,
		Runner: r,
		Git: git.NewGit(git.NewGitParams{
			Engine: git.NewEngine(git.NewEngineParams{Runner: r, FS: f, Logger: l}),
			Logger: l,
		}),
		Logger:    l,
		Prompt:    prompt.NewPrompt(),
		Inspector: gitmeta.NewInspector(),
		// Config, Registry, Forge and Watcher are configuration dependent
		// and set through the With* methods.
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithRunner sets the process runner and returns the instance for chaining.
func (d *Dependencies) WithRunner(r runner.Runner) *Dependencies {
	d.Runner = r
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithRegistry sets the project registry and returns the instance for chaining.
func (d *Dependencies) WithRegistry(reg registry.Registry) *Dependencies {
	d.Registry = reg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithForge sets the forge resolver and returns the instance for chaining.
func (d *Dependencies) WithForge(resolver forge.Resolver) *Dependencies {
	d.Forge = resolver
	return d
}

// WithInspector sets the repository metadata inspector and returns the instance for chaining.
func (d *Dependencies) WithInspector(inspector gitmeta.Inspector) *Dependencies {
	d.Inspector = inspector
	return d
}

// WithWatcher sets the change watcher and returns the instance for chaining.
func (d *Dependencies) WithWatcher(w watcher.Watcher) *Dependencies {
	d.Watcher = w
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Runner, ErrRunnerMissing},
		{d.Git, ErrGitMissing},
		{d.Config, ErrConfigMissing},
		{d.Registry, ErrRegistryMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
		{d.Forge, ErrForgeMissing},
		{d.Inspector, ErrInspectorMissing},
		{d.Watcher, ErrWatcherMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
