package project

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/project-sync/pkg/gitmeta"
	"github.com/lerenn/project-sync/pkg/registry"
	"github.com/samber/lo"
)

// Scan registers the repositories found directly under the base folder that
// are not registered yet, then refreshes their status.
func (m *realManager) Scan(ctx context.Context) ([]registry.Project, error) {
	cfg, err := m.getConfig()
	if err != nil {
		return nil, err
	}
	base, err := m.deps.FS.NormalizePath(cfg.BaseFolder)
	if err != nil {
		return nil, err
	}
	if ok, err := m.deps.FS.IsDir(base); err != nil || !ok {
		return nil, fmt.Errorf("%w: %s", ErrBaseFolderMissing, base)
	}

	entries, err := m.deps.FS.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", base, err)
	}
	known, err := m.deps.Registry.List(true)
	if err != nil {
		return nil, err
	}

	var added []registry.Project
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(base, entry.Name())

		// Soft-deleted projects stay deleted until restored.
		if lo.ContainsBy(known, func(p registry.Project) bool { return samePath(p.LocalPath, path) }) {
			continue
		}
		if ok, err := m.deps.FS.IsGitRepository(path); err != nil || !ok {
			continue
		}

		p, err := m.discover(path, entry.Name(), cfg.DefaultBranch, known)
		if err != nil {
			m.deps.Logger.Warnf("Skipping %s: %v", path, err)
			continue
		}
		if err := m.deps.Registry.Add(p); err != nil {
			m.deps.Logger.Warnf("Skipping %s: %v", path, err)
			continue
		}
		m.deps.Logger.Logf("Registered %s (%s)", p.Name, path)
		known = append(known, p)
		added = append(added, p)
	}

	if len(added) == 0 {
		return nil, nil
	}
	return m.refreshMany(ctx, added, false, cfg.MaxWorkers)
}

func (m *realManager) discover(path, name, defaultBranch string, known []registry.Project) (registry.Project, error) {
	if lo.ContainsBy(known, func(p registry.Project) bool { return !p.Deleted && strings.EqualFold(p.Name, name) }) {
		return registry.Project{}, fmt.Errorf("%w: %q", registry.ErrProjectNameExists, name)
	}

	meta, err := m.deps.Inspector.Inspect(path)
	if err != nil {
		return registry.Project{}, err
	}
	branch := meta.Branch
	if branch == "" || branch == gitmeta.DetachedHead {
		branch = defaultBranch
	}
	if meta.RemoteURL == "" {
		m.deps.Logger.Warnf("%s has no origin remote, sync will fail until one is configured", path)
	}

	return registry.Project{
		Name:      name,
		RemoteURL: meta.RemoteURL,
		LocalPath: path,
		Branch:    branch,
		Status:    registry.StatusUnknown,
	}, nil
}
