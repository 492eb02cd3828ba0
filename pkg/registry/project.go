package registry

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Status is the cached synchronization state of a project. It is advisory:
// it can be recomputed at any time and no operation depends on it.
type Status string

// Project statuses.
const (
	StatusClean      Status = "clean"
	StatusModified   Status = "modified"
	StatusNeedsPull  Status = "needs-pull"
	StatusLocalAhead Status = "local-ahead"
	StatusDiverged   Status = "diverged"
	StatusMissing    Status = "missing"
	StatusError      Status = "error"
	StatusUnknown    Status = "unknown"
)

// Project is a registered local clone of a remote repository.
type Project struct {
	Name       string     `json:"name"`
	RemoteURL  string     `json:"remote_url"`
	LocalPath  string     `json:"local_path"`
	Branch     string     `json:"branch"`
	Status     Status     `json:"status"`
	Deleted    bool       `json:"deleted"`
	LastSynced *time.Time `json:"last_synced,omitempty"`
	LastError  string     `json:"last_error,omitempty"`
}

func (p Project) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProject)
	}
	if p.LocalPath == "" || !filepath.IsAbs(p.LocalPath) {
		return fmt.Errorf("%w: local path %q must be absolute", ErrInvalidProject, p.LocalPath)
	}
	return nil
}
