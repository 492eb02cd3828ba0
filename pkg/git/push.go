package git

import "context"

// Push pushes HEAD to the same branch name on origin.
func (g *realGit) Push(ctx context.Context, repoPath string) (Result, error) {
	return g.engine.Run(ctx, PushOperation(repoPath))
}

// Fetch updates remote-tracking branches so Status can compare against them.
func (g *realGit) Fetch(ctx context.Context, repoPath string) (Result, error) {
	return g.engine.Run(ctx, FetchOperation(repoPath))
}

// Checkout checks out branch. Local changes are stashed and reapplied.
func (g *realGit) Checkout(ctx context.Context, repoPath, branch string) (Result, error) {
	return g.engine.Run(ctx, CheckoutOperation(repoPath, branch))
}

// CreateBranch creates branch from HEAD and checks it out, keeping local changes.
func (g *realGit) CreateBranch(ctx context.Context, repoPath, branch string) (Result, error) {
	return g.engine.Run(ctx, CreateBranchOperation(repoPath, branch))
}

// SetUpstream sets origin/<branch> as the upstream of branch.
func (g *realGit) SetUpstream(ctx context.Context, repoPath, branch string) error {
	_, err := g.engine.Run(ctx, SetUpstreamOperation(repoPath, branch))
	return err
}
