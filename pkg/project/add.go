package project

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/project-sync/pkg/forge"
	"github.com/lerenn/project-sync/pkg/git"
	"github.com/lerenn/project-sync/pkg/registry"
)

// Add clones a repository and registers it.
func (m *realManager) Add(ctx context.Context, params AddParams) (*registry.Project, error) {
	cfg, err := m.getConfig()
	if err != nil {
		return nil, err
	}

	remote := strings.TrimSpace(params.RemoteURL)
	if remote == "" {
		return nil, ErrRemoteURLRequired
	}
	name := strings.TrimSpace(params.Name)
	branch := strings.TrimSpace(params.Branch)

	if forge.IsShorthand(remote) {
		repo, err := m.deps.Forge.Resolve(ctx, remote)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", remote, err)
		}
		m.deps.Logger.Debugf("Resolved %s to %s (default branch %s)", remote, repo.CloneURL, repo.DefaultBranch)
		remote = repo.CloneURL
		if name == "" {
			name = repo.Name
		}
		if branch == "" {
			branch = repo.DefaultBranch
		}
	}

	if name == "" {
		name = forge.RepositoryName(remote)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: %s", ErrNameRequired, remote)
	}
	if branch == "" {
		branch = cfg.DefaultBranch
	}

	localPath := params.LocalPath
	if localPath == "" {
		localPath = filepath.Join(cfg.BaseFolder, name)
	}
	localPath, err = m.deps.FS.NormalizePath(localPath)
	if err != nil {
		return nil, err
	}

	if err := m.checkAvailable(name, localPath); err != nil {
		return nil, err
	}

	unlock := m.locks.lock(localPath)
	defer unlock()

	m.deps.Logger.Logf("Cloning %s into %s", remote, localPath)
	if _, err := m.deps.Git.Clone(ctx, git.CloneParams{
		RemoteURL:  remote,
		TargetPath: localPath,
		Branch:     branch,
	}); err != nil {
		return nil, err
	}

	now := m.now()
	project := registry.Project{
		Name:       name,
		RemoteURL:  remote,
		LocalPath:  localPath,
		Branch:     branch,
		Status:     registry.StatusUnknown,
		LastSynced: &now,
	}
	if st, err := m.deps.Git.Status(ctx, localPath); err == nil {
		project.Status = projectStatus(st)
	} else {
		m.deps.Logger.Warnf("Failed to compute status of %s: %v", name, err)
	}

	if err := m.deps.Registry.Add(project); err != nil {
		return nil, fmt.Errorf("cloned %s but failed to register it: %w", localPath, err)
	}
	return &project, nil
}

// checkAvailable rejects names and paths already used by an active project.
func (m *realManager) checkAvailable(name, localPath string) error {
	if existing, err := m.deps.Registry.Find(name); err == nil {
		return fmt.Errorf("%w: %q (%s)", registry.ErrProjectNameExists, existing.Name, existing.LocalPath)
	} else if !errors.Is(err, registry.ErrProjectNotFound) {
		return err
	}

	existing, err := m.deps.Registry.Get(localPath)
	switch {
	case err == nil && !existing.Deleted:
		return fmt.Errorf("%w: %s is already registered as %q", registry.ErrProjectPathExists, localPath, existing.Name)
	case err != nil && !errors.Is(err, registry.ErrProjectNotFound):
		return err
	}
	return nil
}
