package project

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lerenn/project-sync/pkg/git"
	"github.com/lerenn/project-sync/pkg/registry"
	"golang.org/x/sync/errgroup"
)

// Sync pulls the pinned branch of the project matching ref.
func (m *realManager) Sync(ctx context.Context, ref string) SyncResult {
	p, err := m.find(ref)
	if err != nil {
		return SyncResult{Err: err}
	}
	return m.syncProject(ctx, *p)
}

// SyncAll synchronizes every active project, one worker per project up to
// max_workers. A missing git executable halts the whole batch.
func (m *realManager) SyncAll(ctx context.Context) ([]SyncResult, error) {
	cfg, err := m.getConfig()
	if err != nil {
		return nil, err
	}
	projects, err := m.deps.Registry.List(false)
	if err != nil {
		return nil, err
	}

	results := make([]SyncResult, len(projects))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, cfg.MaxWorkers))
	for i, p := range projects {
		g.Go(func() error {
			if gctx.Err() != nil {
				results[i] = SyncResult{Project: p, Err: fmt.Errorf("%w: %w", ErrSkipped, context.Cause(gctx))}
				return nil
			}
			results[i] = m.syncProject(gctx, p)
			if errors.Is(results[i].Err, git.ErrExecutableMissing) {
				return results[i].Err
			}
			return nil
		})
	}
	return results, g.Wait()
}

func (m *realManager) syncProject(ctx context.Context, p registry.Project) SyncResult {
	unlock := m.locks.lock(p.LocalPath)
	defer unlock()

	if err := m.checkPresent(p); err != nil {
		return SyncResult{Project: m.record(p, failed(err)), Err: err}
	}

	m.deps.Logger.Logf("Synchronizing %s (%s)", p.Name, p.Branch)
	res, err := m.deps.Git.Pull(ctx, git.PullParams{RepoPath: p.LocalPath, Branch: p.Branch})
	result := SyncResult{
		Project:        p,
		Output:         combined(res),
		NeedsAttention: needsAttention(res, err),
		StashSkipped:   res.StashSkipped,
		Err:            err,
	}
	if err != nil {
		if !canceled(ctx, err) {
			result.Project = m.record(p, failed(err))
		}
		return result
	}
	if result.NeedsAttention {
		m.deps.Logger.Warnf("%s: %v", p.Name, res.StashRestoreErr)
	}
	if res.StashSkipped != "" {
		m.deps.Logger.Warnf("%s: pulled without stashing local changes: %s", p.Name, res.StashSkipped)
	}

	status, statusErr := m.currentStatus(ctx, p, true)
	now := m.now()
	result.Project = m.record(p, func(rec *registry.Project) {
		rec.Status = status
		rec.LastSynced = &now
		rec.LastError = guardText(res, statusErr)
	})
	return result
}

// Push pushes the current branch of the project matching ref. A working tree
// with uncommitted changes is refused and nothing is pushed when the branch
// is level with its upstream.
func (m *realManager) Push(ctx context.Context, ref string) SyncResult {
	p, err := m.find(ref)
	if err != nil {
		return SyncResult{Err: err}
	}

	unlock := m.locks.lock(p.LocalPath)
	defer unlock()

	if err := m.checkPresent(*p); err != nil {
		return SyncResult{Project: m.record(*p, failed(err)), Err: err}
	}

	st, err := m.deps.Git.Status(ctx, p.LocalPath)
	if err != nil {
		result := SyncResult{Project: *p, Err: err}
		if !canceled(ctx, err) {
			result.Project = m.record(*p, failed(err))
		}
		return result
	}
	switch {
	case st.Changes > 0:
		err := fmt.Errorf("%w: %d uncommitted or untracked entries in %s", ErrUncommittedChanges, st.Changes, p.LocalPath)
		return SyncResult{Project: m.record(*p, statusOnly(projectStatus(st))), Err: err}
	case st.HasUpstream() && st.Ahead == 0:
		m.deps.Logger.Debugf("%s is level with %s, nothing to push", p.Name, st.Upstream)
		return SyncResult{Project: m.record(*p, statusOnly(projectStatus(st))), Output: UpToDateOutput}
	}

	m.deps.Logger.Logf("Pushing %s", p.Name)
	res, err := m.deps.Git.Push(ctx, p.LocalPath)
	result := SyncResult{Project: *p, Output: combined(res), Err: err}
	if err != nil {
		if !canceled(ctx, err) {
			result.Project = m.record(*p, failed(err))
		}
		return result
	}

	status, statusErr := m.currentStatus(ctx, *p, false)
	result.Project = m.record(*p, func(rec *registry.Project) {
		rec.Status = status
		rec.LastError = errorText(statusErr)
	})
	return result
}

// SetBranch checks out branch in the project matching ref and pins it.
func (m *realManager) SetBranch(ctx context.Context, ref, branch string) SyncResult {
	return m.switchBranch(ctx, ref, branch, false)
}

// CreateBranch creates branch from HEAD in the project matching ref and pins it.
func (m *realManager) CreateBranch(ctx context.Context, ref, branch string) SyncResult {
	return m.switchBranch(ctx, ref, branch, true)
}

func (m *realManager) switchBranch(ctx context.Context, ref, branch string, create bool) SyncResult {
	branch = strings.TrimSpace(branch)
	if branch == "" {
		return SyncResult{Err: ErrBranchRequired}
	}
	p, err := m.find(ref)
	if err != nil {
		return SyncResult{Err: err}
	}

	unlock := m.locks.lock(p.LocalPath)
	defer unlock()

	if err := m.checkPresent(*p); err != nil {
		return SyncResult{Project: m.record(*p, failed(err)), Err: err}
	}

	var res git.Result
	if create {
		m.deps.Logger.Logf("Creating branch %s in %s", branch, p.Name)
		res, err = m.deps.Git.CreateBranch(ctx, p.LocalPath, branch)
	} else {
		m.deps.Logger.Logf("Switching %s to %s", p.Name, branch)
		res, err = m.deps.Git.Checkout(ctx, p.LocalPath, branch)
	}
	result := SyncResult{
		Project:        *p,
		Output:         combined(res),
		NeedsAttention: needsAttention(res, err),
		StashSkipped:   res.StashSkipped,
		Err:            err,
	}
	if err != nil {
		if !canceled(ctx, err) {
			result.Project = m.record(*p, failed(err))
		}
		return result
	}

	pinned := *p
	pinned.Branch = branch
	status, statusErr := m.currentStatus(ctx, pinned, false)
	result.Project = m.record(*p, func(rec *registry.Project) {
		rec.Branch = branch
		rec.Status = status
		rec.LastError = guardText(res, statusErr)
	})
	return result
}

// checkPresent verifies the working tree still exists before running git in it.
func (m *realManager) checkPresent(p registry.Project) error {
	ok, err := m.deps.FS.IsGitRepository(p.LocalPath)
	if err != nil || !ok {
		return fmt.Errorf("%w: %s", ErrProjectMissing, p.LocalPath)
	}
	return nil
}

// failed returns the registry mutation recording err.
func failed(err error) func(*registry.Project) {
	return func(rec *registry.Project) {
		rec.Status = statusFromError(err)
		rec.LastError = err.Error()
	}
}

func combined(res git.Result) string {
	return strings.TrimSpace(strings.Join([]string{
		strings.TrimSpace(res.Output),
		strings.TrimSpace(res.Stderr),
	}, "\n"))
}

// guardText is the last_error recorded after a successful mutating operation:
// unrestored stash first, then an unguarded run, then the status failure.
func guardText(res git.Result, statusErr error) string {
	switch {
	case res.StashRestoreErr != nil:
		return res.StashRestoreErr.Error()
	case res.StashSkipped != "":
		return "local changes were not stashed: " + res.StashSkipped
	default:
		return errorText(statusErr)
	}
}

func statusOnly(status registry.Status) func(*registry.Project) {
	return func(rec *registry.Project) {
		rec.Status = status
	}
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
