// Package project manages the registered projects: cloning, synchronizing,
// pushing and refreshing their cached status through the git engine.
package project

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lerenn/project-sync/pkg/config"
	"github.com/lerenn/project-sync/pkg/dependencies"
	"github.com/lerenn/project-sync/pkg/git"
	"github.com/lerenn/project-sync/pkg/registry"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=project.go -destination=mocks/project.gen.go -package=mocks

// Manager interface provides the project operations exposed by psync.
type Manager interface {
	// Add clones a repository and registers it.
	Add(ctx context.Context, params AddParams) (*registry.Project, error)
	// List returns the registered projects.
	List(includeDeleted bool) ([]registry.Project, error)
	// Get returns the active project matching ref (name or path).
	Get(ref string) (*registry.Project, error)
	// Remove soft deletes a project, or deletes its record and directory when permanent is set.
	Remove(ref string, permanent bool) (*registry.Project, error)
	// Restore reactivates a soft-deleted project.
	Restore(ref string) (*registry.Project, error)
	// SetBranch checks out branch and pins the project to it.
	SetBranch(ctx context.Context, ref, branch string) SyncResult
	// CreateBranch creates branch from HEAD and pins the project to it.
	CreateBranch(ctx context.Context, ref, branch string) SyncResult
	// Sync pulls the pinned branch of a project.
	Sync(ctx context.Context, ref string) SyncResult
	// SyncAll synchronizes every active project concurrently.
	SyncAll(ctx context.Context) ([]SyncResult, error)
	// Push pushes the current branch of a project.
	Push(ctx context.Context, ref string) SyncResult
	// History returns the commit history of a project, exporting it when params.Output is set.
	History(ctx context.Context, ref string, params HistoryParams) ([]git.Commit, error)
	// RefreshStatus recomputes the cached status of a project.
	RefreshStatus(ctx context.Context, ref string) (*registry.Project, error)
	// RefreshLocalStatus recomputes the cached status of a project, never fetching.
	RefreshLocalStatus(ctx context.Context, ref string) (*registry.Project, error)
	// RefreshAll recomputes the cached status of every active project.
	RefreshAll(ctx context.Context) ([]registry.Project, error)
	// Scan registers the untracked repositories found in the base folder.
	Scan(ctx context.Context) ([]registry.Project, error)
}

// AddParams contains parameters for Add.
type AddParams struct {
	// RemoteURL is a clonable URL or an owner/repo shorthand resolved through the forge.
	RemoteURL string
	// Name defaults to the repository name.
	Name string
	// LocalPath defaults to <base_folder>/<name>.
	LocalPath string
	// Branch defaults to the repository default branch, then to default_branch.
	Branch string
}

// UpToDateOutput is the output of a push with nothing to send.
const UpToDateOutput = "Everything up-to-date"

// SyncResult is the outcome of an operation on one project.
type SyncResult struct {
	Project registry.Project
	Output  string
	// NeedsAttention is set when auto-stashed changes could not be restored.
	NeedsAttention bool
	// StashSkipped holds git's output when local changes could not be stashed
	// and the operation ran without the guard.
	StashSkipped string
	Err          error
}

// HistoryParams contains parameters for History.
type HistoryParams struct {
	// Limit caps the number of commits, zero means all.
	Limit int
	// Output is a file the history is written to, one commit per line.
	Output string
}

// NewManagerParams contains parameters for creating a new Manager.
type NewManagerParams struct {
	Dependencies *dependencies.Dependencies
}

type realManager struct {
	deps  *dependencies.Dependencies
	locks *pathLocks
	now   func() time.Time
}

// NewManager creates a new Manager.
func NewManager(params NewManagerParams) (Manager, error) {
	deps := params.Dependencies
	if deps == nil {
		return nil, ErrDependenciesMissing
	}
	checks := []struct {
		dep interface{}
		err error
	}{
		{deps.FS, dependencies.ErrFSMissing},
		{deps.Git, dependencies.ErrGitMissing},
		{deps.Config, dependencies.ErrConfigMissing},
		{deps.Registry, dependencies.ErrRegistryMissing},
		{deps.Logger, dependencies.ErrLoggerMissing},
		{deps.Forge, dependencies.ErrForgeMissing},
		{deps.Inspector, dependencies.ErrInspectorMissing},
	}
	for _, check := range checks {
		if check.dep == nil {
			return nil, check.err
		}
	}

	return &realManager{
		deps:  deps,
		locks: newPathLocks(),
		now:   time.Now,
	}, nil
}

func (m *realManager) getConfig() (config.Config, error) {
	return m.deps.Config.GetConfigWithFallback()
}

func (m *realManager) List(includeDeleted bool) ([]registry.Project, error) {
	return m.deps.Registry.List(includeDeleted)
}

func (m *realManager) Get(ref string) (*registry.Project, error) {
	return m.find(ref)
}

// find returns the active project whose name or path matches ref.
func (m *realManager) find(ref string) (*registry.Project, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrEmptyReference
	}

	p, err := m.deps.Registry.Find(ref)
	if err == nil || !errors.Is(err, registry.ErrProjectNotFound) || !looksLikePath(ref) {
		return p, err
	}

	path, perr := m.deps.FS.NormalizePath(ref)
	if perr != nil {
		return nil, err
	}
	return m.deps.Registry.Find(path)
}

// findDeleted returns the soft-deleted project whose name or path matches ref.
func (m *realManager) findDeleted(ref string) (*registry.Project, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrEmptyReference
	}

	all, err := m.deps.Registry.List(true)
	if err != nil {
		return nil, err
	}

	path := ""
	if looksLikePath(ref) {
		path, _ = m.deps.FS.NormalizePath(ref)
	}
	for _, p := range all {
		if !p.Deleted {
			continue
		}
		if strings.EqualFold(p.Name, ref) || (path != "" && samePath(p.LocalPath, path)) {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: no deleted project matches %q", registry.ErrProjectNotFound, ref)
}

// record applies fn to the stored project, logging instead of failing when the registry cannot be written.
func (m *realManager) record(p registry.Project, fn func(*registry.Project)) registry.Project {
	updated, err := m.deps.Registry.Update(p.LocalPath, func(rec *registry.Project) error {
		fn(rec)
		return nil
	})
	if err != nil {
		m.deps.Logger.Warnf("Failed to update registry for %s: %v", p.Name, err)
		fn(&p)
		return p
	}
	return *updated
}

// needsAttention reports whether the operation left auto-stashed changes behind.
func needsAttention(res git.Result, err error) bool {
	if res.StashRestoreErr != nil {
		return true
	}
	var opErr *git.OperationError
	return errors.As(err, &opErr) && opErr.StashRestoreErr != nil
}

// canceled reports whether err comes from the caller giving up rather than from the project.
func canceled(ctx context.Context, err error) bool {
	return ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded))
}

func looksLikePath(ref string) bool {
	return strings.ContainsAny(ref, `/\`) || strings.HasPrefix(ref, ".") || strings.HasPrefix(ref, "~")
}
