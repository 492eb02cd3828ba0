package git

import (
	"context"
	"strings"
)

// CurrentBranch gets the current branch name. Lookup failures yield
// UnknownBranch and a detached HEAD yields DetachedBranch.
func (g *realGit) CurrentBranch(ctx context.Context, repoPath string) string {
	res, err := g.engine.Run(ctx, CurrentBranchOperation(repoPath))
	if err != nil {
		g.logger.Debugf("could not read current branch of %s: %v", repoPath, err)
		return UnknownBranch
	}

	branch := strings.TrimSpace(res.Output)
	switch branch {
	case "":
		return UnknownBranch
	case "HEAD":
		return DetachedBranch
	default:
		return branch
	}
}

// RemoteURL gets the URL of origin, UnknownRemote when it cannot be read.
func (g *realGit) RemoteURL(ctx context.Context, repoPath string) string {
	res, err := g.engine.Run(ctx, RemoteURLOperation(repoPath))
	if err != nil {
		g.logger.Debugf("could not read origin URL of %s: %v", repoPath, err)
		return UnknownRemote
	}

	url := strings.TrimSpace(res.Output)
	if url == "" {
		return UnknownRemote
	}
	return url
}
