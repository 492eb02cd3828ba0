// Package gitmeta reads repository metadata straight from the .git directory,
// without spawning git. It is used while discovering projects on disk.
package gitmeta

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=gitmeta.go -destination=mocks/gitmeta.gen.go -package=mocks

// DetachedHead is reported as branch when HEAD points at a commit.
const DetachedHead = "detached"

// Metadata describes a repository found on disk.
type Metadata struct {
	// RemoteURL is the first URL of origin, empty when origin is not configured.
	RemoteURL string
	// Branch is the branch HEAD points to, DetachedHead when detached.
	Branch string
}

// Inspector reads metadata of local repositories.
type Inspector interface {
	// Inspect opens the repository at path and reads its origin and HEAD.
	Inspect(path string) (Metadata, error)
}

type goGitInspector struct{}

// NewInspector creates a new Inspector backed by go-git.
func NewInspector() Inspector {
	return &goGitInspector{}
}

func (i *goGitInspector) Inspect(path string) (Metadata, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: %s: %w", ErrNotARepository, path, err)
	}

	var meta Metadata

	remote, err := repo.Remote("origin")
	switch {
	case err == nil:
		if urls := remote.Config().URLs; len(urls) > 0 {
			meta.RemoteURL = urls[0]
		}
	case errors.Is(err, git.ErrRemoteNotFound):
	default:
		return Metadata{}, fmt.Errorf("failed to read origin of %s: %w", path, err)
	}

	// HEAD is read without resolving so freshly initialized repositories,
	// whose branch has no commit yet, still report it.
	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to read HEAD of %s: %w", path, err)
	}
	switch {
	case head.Type() == plumbing.SymbolicReference && head.Target().IsBranch():
		meta.Branch = head.Target().Short()
	default:
		meta.Branch = DetachedHead
	}

	return meta, nil
}
