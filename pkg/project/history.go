package project

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/lerenn/project-sync/pkg/git"
)

// History reads the commit history of the project matching ref.
func (m *realManager) History(ctx context.Context, ref string, params HistoryParams) ([]git.Commit, error) {
	p, err := m.find(ref)
	if err != nil {
		return nil, err
	}
	if err := m.checkPresent(*p); err != nil {
		return nil, err
	}

	commits, err := m.deps.Git.History(ctx, p.LocalPath, params.Limit)
	if err != nil {
		return nil, err
	}
	if params.Output == "" {
		return commits, nil
	}

	path, err := m.deps.FS.NormalizePath(params.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", params.Output, err)
	}
	if err := m.deps.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := m.deps.FS.WriteFileAtomic(path, []byte(git.FormatHistory(commits)), 0644); err != nil {
		return nil, fmt.Errorf("failed to export history of %s: %w", p.Name, err)
	}
	m.deps.Logger.Logf("Exported %d commit(s) of %s to %s", len(commits), p.Name, path)
	return commits, nil
}
