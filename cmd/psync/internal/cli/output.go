package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/lerenn/project-sync/pkg/forge"
	"github.com/lerenn/project-sync/pkg/git"
	"github.com/lerenn/project-sync/pkg/project"
	"github.com/lerenn/project-sync/pkg/prompt"
	"github.com/lerenn/project-sync/pkg/registry"
	"github.com/samber/lo"
)

// Errors returned to main.
var (
	// ErrBatchFailed is returned when at least one project of a batch failed.
	ErrBatchFailed = errors.New("some projects failed")
	// ErrReported wraps errors that were already printed.
	ErrReported = errors.New("reported")
)

// PrintProjects writes projects as an aligned table.
func PrintProjects(w io.Writer, projects []registry.Project) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tBRANCH\tSTATUS\tLAST SYNCED\tPATH")
	for _, p := range projects {
		status := string(p.Status)
		if p.Deleted {
			status += " (deleted)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.Name, p.Branch, status, lastSynced(p.LastSynced), p.LocalPath)
	}
	_ = tw.Flush()
}

func lastSynced(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Local().Format("2006-01-02 15:04")
}

// PrintResult writes the outcome of an operation on one project. A failure is
// returned wrapped in ErrReported.
func PrintResult(w io.Writer, verb string, res project.SyncResult) error {
	name := res.Project.Name
	if name == "" {
		name = "project"
	}

	if res.Err != nil {
		fmt.Fprintf(w, "✗ %s: %s failed: %v\n", name, verb, res.Err)
		if hint := Hint(res.Err, res.Project.RemoteURL); hint != "" {
			fmt.Fprintf(w, "  hint: %s\n", hint)
		}
		return fmt.Errorf("%w: %w", ErrReported, res.Err)
	}

	if !Quiet {
		fmt.Fprintf(w, "✓ %s: %s [%s]\n", name, verb, res.Project.Status)
		if Verbose && res.Output != "" {
			for _, line := range strings.Split(res.Output, "\n") {
				fmt.Fprintf(w, "  %s\n", line)
			}
		}
	}
	if res.StashSkipped != "" {
		fmt.Fprintf(w, "! %s: local changes could not be stashed, %s ran without protection: %s\n",
			name, verb, res.StashSkipped)
	}
	if res.NeedsAttention {
		fmt.Fprintf(w, "! %s: local changes were stashed and could not be restored, run `git stash list` in %s\n",
			name, res.Project.LocalPath)
	}
	return nil
}

// PrintResults writes every result and a summary line, returning ErrBatchFailed
// when any project failed.
func PrintResults(w io.Writer, verb string, results []project.SyncResult) error {
	for _, res := range results {
		_ = PrintResult(w, verb, res)
	}

	failed := lo.CountBy(results, func(res project.SyncResult) bool { return res.Err != nil })
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrBatchFailed, failed, len(results))
	}
	if !Quiet {
		fmt.Fprintf(w, "%d projects synchronized\n", len(results))
	}
	return nil
}

// Hint returns a suggestion for errors users can fix themselves.
func Hint(err error, remote string) string {
	switch {
	case errors.Is(err, git.ErrAuthRequired):
		if strings.HasPrefix(remote, "http") {
			return "authentication required: log in with `gh auth login` or configure a git credential helper, then retry"
		}
		return "authentication required: check that your SSH key is loaded (`ssh-add -l`) and authorized on the remote"
	case errors.Is(err, git.ErrMissingUpstream):
		return "the current branch tracks no remote branch: run `git push -u origin <branch>` once"
	case errors.Is(err, git.ErrExecutableMissing):
		return "git is not installed or not on PATH"
	case errors.Is(err, project.ErrProjectMissing):
		return "the directory is gone: restore it or run `psync remove --permanent`"
	case errors.Is(err, project.ErrUncommittedChanges):
		return "commit or stash your changes first"
	case errors.Is(err, forge.ErrRateLimited):
		return "GitHub rate limit reached: set GITHUB_TOKEN to raise it"
	case errors.Is(err, forge.ErrUnauthorized):
		return "GitHub refused the request: check GITHUB_TOKEN"
	case errors.Is(err, context.Canceled):
		return "interrupted"
	default:
		return ""
	}
}

// SelectProject asks the user to pick an active project and returns its path.
func SelectProject(p prompt.Prompter, projects []registry.Project) (string, error) {
	choices := lo.Map(projects, func(p registry.Project, _ int) prompt.Choice {
		return prompt.Choice{Name: p.Name, Path: p.LocalPath, Status: string(p.Status)}
	})
	choice, err := p.SelectProject(choices)
	if err != nil {
		return "", err
	}
	return choice.Path, nil
}
