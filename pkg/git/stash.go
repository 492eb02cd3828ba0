package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/lerenn/project-sync/pkg/logger"
	"github.com/lerenn/project-sync/pkg/runner"
)

// DefaultStashLabel marks stash entries created around mutating operations.
const DefaultStashLabel = "psync auto-stash"

const (
	noLocalChangesMarker = "No local changes to save"
	noStashEntriesMarker = "No stash entries found"
)

// stashGuard shelves uncommitted and untracked changes before an operation
// rewrites the working tree, and reapplies them afterwards.
type stashGuard struct {
	runner runner.Runner
	logger logger.Logger
	label  string
}

// Save stashes local changes in dir and reports whether an entry was created.
// When stash push fails the operation runs unguarded and skipped holds git's
// output. The returned error is reserved for the process itself not running.
func (s *stashGuard) Save(ctx context.Context, dir string) (saved bool, skipped string, err error) {
	res, err := s.runner.Run(ctx, dir, gitExecutable, "stash", "push", "--include-untracked", "-m", s.label)
	if err != nil {
		return false, "", err
	}
	if res.ExitCode != 0 {
		skipped = strings.TrimSpace(res.Combined())
		if skipped == "" {
			skipped = fmt.Sprintf("git stash exited with status %d", res.ExitCode)
		}
		s.logger.Warnf("could not stash local changes in %s, continuing without: %s", dir, skipped)
		return false, skipped, nil
	}
	if strings.Contains(res.Combined(), noLocalChangesMarker) {
		return false, "", nil
	}

	s.logger.Debugf("stashed local changes in %s", dir)
	return true, "", nil
}

// Restore pops the entry created by Save. A failure leaves the entry in the
// stash and is returned as a *StashRestoreError for the caller to surface.
func (s *stashGuard) Restore(ctx context.Context, dir string) error {
	res, err := s.runner.Run(ctx, dir, gitExecutable, "stash", "pop")
	if err != nil {
		s.logger.Warnf("could not restore stashed changes in %s: %v", dir, err)
		return &StashRestoreError{Dir: dir, Err: err}
	}
	if res.ExitCode != 0 {
		output := res.Combined()
		if strings.Contains(output, noStashEntriesMarker) {
			return nil
		}
		s.logger.Warnf("could not restore stashed changes in %s, resolve manually with `git stash pop`: %s", dir, output)
		return &StashRestoreError{Dir: dir, Output: output}
	}

	s.logger.Debugf("restored stashed changes in %s", dir)
	return nil
}
