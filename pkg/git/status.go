package git

import (
	"context"
	"fmt"
	"strings"
)

// State is the synchronization state derived from `git status`.
type State string

// States a working tree can be in relative to its upstream.
const (
	StateClean      State = "clean"
	StateModified   State = "modified"
	StateNeedsPull  State = "needs-pull"
	StateLocalAhead State = "local-ahead"
	StateDiverged   State = "diverged"
)

// RepoStatus is the parsed output of `git status --porcelain=v2 --branch`.
type RepoStatus struct {
	// Branch is the checked out branch, DetachedBranch when HEAD is detached.
	Branch   string
	Upstream string
	Ahead    int
	Behind   int
	// Changes counts modified, staged, unmerged and untracked entries.
	Changes int
}

// HasUpstream reports whether the branch tracks a remote branch.
func (s RepoStatus) HasUpstream() bool {
	return s.Upstream != ""
}

// State derives the synchronization state. Local changes take precedence
// over divergence; a branch without upstream is considered clean.
func (s RepoStatus) State() State {
	switch {
	case s.Changes > 0:
		return StateModified
	case s.Ahead > 0 && s.Behind > 0:
		return StateDiverged
	case s.Behind > 0:
		return StateNeedsPull
	case s.Ahead > 0:
		return StateLocalAhead
	default:
		return StateClean
	}
}

// Status executes `git status --porcelain=v2 --branch` in repoPath.
func (g *realGit) Status(ctx context.Context, repoPath string) (RepoStatus, error) {
	res, err := g.engine.Run(ctx, StatusOperation(repoPath))
	if err != nil {
		return RepoStatus{}, err
	}
	return ParseStatus(res.Output), nil
}

// ParseStatus parses porcelain v2 output with branch headers.
func ParseStatus(output string) RepoStatus {
	var status RepoStatus
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}

		if !strings.HasPrefix(line, "# ") {
			// Ignored entries only show up with --ignored.
			if !strings.HasPrefix(line, "! ") {
				status.Changes++
			}
			continue
		}

		key, value, _ := strings.Cut(strings.TrimPrefix(line, "# "), " ")
		switch key {
		case "branch.head":
			status.Branch = value
			if value == "(detached)" {
				status.Branch = DetachedBranch
			}
		case "branch.upstream":
			status.Upstream = value
		case "branch.ab":
			var ahead, behind int
			if _, err := fmt.Sscanf(value, "+%d -%d", &ahead, &behind); err == nil {
				status.Ahead, status.Behind = ahead, behind
			}
		}
	}
	return status
}
