package project

import (
	"fmt"

	"github.com/lerenn/project-sync/pkg/registry"
)

// Remove soft deletes a project, keeping its directory, or permanently
// deletes both the record and the directory.
func (m *realManager) Remove(ref string, permanent bool) (*registry.Project, error) {
	p, err := m.find(ref)
	if err != nil && permanent {
		// Soft-deleted projects can still be purged.
		p, err = m.findDeleted(ref)
	}
	if err != nil {
		return nil, err
	}

	if !permanent {
		if err := m.deps.Registry.MarkDeleted(p.LocalPath); err != nil {
			return nil, err
		}
		m.deps.Logger.Logf("Removed %s from the active projects, %s was kept", p.Name, p.LocalPath)
		p.Deleted = true
		return p, nil
	}

	unlock := m.locks.lock(p.LocalPath)
	defer unlock()

	if err := m.deps.FS.RemoveAll(p.LocalPath); err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", p.LocalPath, err)
	}
	if err := m.deps.Registry.Purge(p.LocalPath); err != nil {
		return nil, err
	}
	m.deps.Logger.Logf("Deleted %s and %s", p.Name, p.LocalPath)
	return p, nil
}

// Restore reactivates a soft-deleted project.
func (m *realManager) Restore(ref string) (*registry.Project, error) {
	p, err := m.findDeleted(ref)
	if err != nil {
		return nil, err
	}
	if err := m.deps.Registry.Restore(p.LocalPath); err != nil {
		return nil, err
	}
	p.Deleted = false
	m.deps.Logger.Logf("Restored %s", p.Name)
	return p, nil
}
