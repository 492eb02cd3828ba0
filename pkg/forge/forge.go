// Package forge resolves repository references against code hosting platforms.
package forge

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// Repository describes a remote repository resolved from a reference.
type Repository struct {
	Owner         string
	Name          string
	CloneURL      string
	DefaultBranch string
}

// Resolver turns a repository reference into a clonable repository.
type Resolver interface {
	// Resolve looks up an owner/repo reference on the forge.
	Resolve(ctx context.Context, ref string) (*Repository, error)
}

// Reference is an owner/repo pair.
type Reference struct {
	Owner string
	Name  string
}

func (r Reference) String() string {
	return r.Owner + "/" + r.Name
}

var (
	shorthandRe = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9-]*)/([A-Za-z0-9._-]+)$`)
	// Matches https://host/owner/repo(.git), ssh://git@host/owner/repo(.git) and git@host:owner/repo(.git).
	remoteNameRe = regexp.MustCompile(`[:/]([^/:]+)/([^/]+?)(?:\.git)?/?$`)
)

// IsShorthand reports whether ref is an owner/repo reference rather than a clonable URL.
func IsShorthand(ref string) bool {
	return shorthandRe.MatchString(ref) && !strings.HasSuffix(ref, ".git")
}

// ParseShorthand splits an owner/repo reference.
func ParseShorthand(ref string) (Reference, error) {
	m := shorthandRe.FindStringSubmatch(strings.TrimSpace(ref))
	if m == nil {
		return Reference{}, fmt.Errorf("%w: %q", ErrInvalidReference, ref)
	}
	return Reference{Owner: m[1], Name: m[2]}, nil
}

// RepositoryName returns the repository name of a remote URL, without the .git suffix.
// An empty string is returned when the URL has no recognizable owner/repo suffix.
func RepositoryName(remoteURL string) string {
	m := remoteNameRe.FindStringSubmatch(strings.TrimSpace(remoteURL))
	if m == nil {
		return ""
	}
	return m[2]
}
