package git

import (
	"context"
	"fmt"
	"strings"
)

// Pull brings the pinned branch up to date. It never pulls params.Branch into
// a different checked out branch: the branch is checked out first.
func (g *realGit) Pull(ctx context.Context, params PullParams) (Result, error) {
	var checkout Result
	if params.Branch != "" {
		current := g.CurrentBranch(ctx, params.RepoPath)
		if current != params.Branch {
			g.logger.Logf("Checking out %s in %s (was %s)", params.Branch, params.RepoPath, current)

			var err error
			checkout, err = g.Checkout(ctx, params.RepoPath, params.Branch)
			if err != nil {
				return Result{}, fmt.Errorf("checkout %s before pull: %w", params.Branch, err)
			}
		}
	}

	pull, err := g.engine.Run(ctx, PullOperation(params.RepoPath, params.Branch))
	if err != nil {
		return Result{}, err
	}

	if checkout.Attempts > 0 {
		pull.Output = strings.TrimSpace(strings.TrimSpace(checkout.Output) + "\n" + pull.Output)
		pull.Remediated = pull.Remediated || checkout.Remediated
		if pull.StashRestoreErr == nil {
			pull.StashRestoreErr = checkout.StashRestoreErr
		}
	}
	return pull, nil
}
