package project

import (
	"context"
	"errors"

	"github.com/lerenn/project-sync/pkg/git"
	"github.com/lerenn/project-sync/pkg/registry"
	"golang.org/x/sync/errgroup"
)

// RefreshStatus recomputes the cached status of the project matching ref.
// Failures are recorded in the project status, not returned.
func (m *realManager) RefreshStatus(ctx context.Context, ref string) (*registry.Project, error) {
	cfg, err := m.getConfig()
	if err != nil {
		return nil, err
	}
	p, err := m.find(ref)
	if err != nil {
		return nil, err
	}

	refreshed, err := m.refreshProject(ctx, *p, cfg.FetchBeforeStatus)
	if err != nil {
		return nil, err
	}
	return &refreshed, nil
}

// RefreshLocalStatus recomputes the cached status of the project matching ref
// without fetching, so that the refresh itself leaves the refs untouched.
func (m *realManager) RefreshLocalStatus(ctx context.Context, ref string) (*registry.Project, error) {
	p, err := m.find(ref)
	if err != nil {
		return nil, err
	}

	refreshed, err := m.refreshProject(ctx, *p, false)
	if err != nil {
		return nil, err
	}
	return &refreshed, nil
}

// RefreshAll recomputes the cached status of every active project.
func (m *realManager) RefreshAll(ctx context.Context) ([]registry.Project, error) {
	cfg, err := m.getConfig()
	if err != nil {
		return nil, err
	}
	projects, err := m.deps.Registry.List(false)
	if err != nil {
		return nil, err
	}
	return m.refreshMany(ctx, projects, cfg.FetchBeforeStatus, cfg.MaxWorkers)
}

func (m *realManager) refreshMany(ctx context.Context, projects []registry.Project, fetch bool, workers int) ([]registry.Project, error) {
	results := make([]registry.Project, len(projects))
	g := errgroup.Group{}
	g.SetLimit(max(1, workers))
	for i, p := range projects {
		g.Go(func() error {
			refreshed, err := m.refreshProject(ctx, p, fetch)
			results[i] = refreshed
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// refreshProject only returns an error when ctx is done.
func (m *realManager) refreshProject(ctx context.Context, p registry.Project, fetch bool) (registry.Project, error) {
	unlock := m.locks.lock(p.LocalPath)
	defer unlock()

	if err := ctx.Err(); err != nil {
		return p, err
	}
	if err := m.checkPresent(p); err != nil {
		return m.record(p, failed(err)), nil
	}

	if fetch {
		if _, err := m.deps.Git.Fetch(ctx, p.LocalPath); err != nil {
			if canceled(ctx, err) {
				return p, ctx.Err()
			}
			return m.record(p, failed(err)), nil
		}
	}

	status, err := m.currentStatus(ctx, p, false)
	if err != nil {
		if canceled(ctx, err) {
			return p, ctx.Err()
		}
		return m.record(p, failed(err)), nil
	}
	return m.record(p, func(rec *registry.Project) {
		rec.Status = status
		rec.LastError = ""
	}), nil
}

// currentStatus runs git status. When repairUpstream is set and the pinned
// branch tracks nothing, origin/<branch> is set as upstream on a best-effort basis.
func (m *realManager) currentStatus(ctx context.Context, p registry.Project, repairUpstream bool) (registry.Status, error) {
	st, err := m.deps.Git.Status(ctx, p.LocalPath)
	if err != nil {
		return statusFromError(err), err
	}

	if repairUpstream && !st.HasUpstream() && p.Branch != "" && st.Branch == p.Branch {
		if err := m.deps.Git.SetUpstream(ctx, p.LocalPath, p.Branch); err != nil {
			m.deps.Logger.Warnf("Failed to track origin/%s in %s: %v", p.Branch, p.Name, err)
		} else if refreshed, err := m.deps.Git.Status(ctx, p.LocalPath); err == nil {
			st = refreshed
		}
	}
	return projectStatus(st), nil
}

func projectStatus(st git.RepoStatus) registry.Status {
	switch st.State() {
	case git.StateModified:
		return registry.StatusModified
	case git.StateDiverged:
		return registry.StatusDiverged
	case git.StateNeedsPull:
		return registry.StatusNeedsPull
	case git.StateLocalAhead:
		return registry.StatusLocalAhead
	case git.StateClean:
		return registry.StatusClean
	default:
		return registry.StatusUnknown
	}
}

func statusFromError(err error) registry.Status {
	if errors.Is(err, ErrProjectMissing) || errors.Is(err, git.ErrDirectoryInvalid) {
		return registry.StatusMissing
	}
	return registry.StatusError
}
