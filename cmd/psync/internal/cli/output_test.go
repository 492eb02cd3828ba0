//go:build unit

package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lerenn/project-sync/pkg/forge"
	"github.com/lerenn/project-sync/pkg/git"
	"github.com/lerenn/project-sync/pkg/project"
	"github.com/lerenn/project-sync/pkg/prompt"
	promptmocks "github.com/lerenn/project-sync/pkg/prompt/mocks"
	"github.com/lerenn/project-sync/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func resetFlags(t *testing.T) {
	t.Cleanup(func() { Quiet, Verbose = false, false })
}

func TestPrintProjects(t *testing.T) {
	synced := time.Date(2026, 1, 2, 3, 4, 0, 0, time.Local)
	var out bytes.Buffer
	PrintProjects(&out, []registry.Project{
		{Name: "alpha", Branch: "main", Status: registry.StatusClean, LocalPath: "/src/alpha", LastSynced: &synced},
		{Name: "beta", Branch: "develop", Status: registry.StatusMissing, LocalPath: "/src/beta", Deleted: true},
	})

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "NAME")
	assert.Contains(t, string(lines[1]), "2026-01-02 03:04")
	assert.Contains(t, string(lines[2]), "missing (deleted)")
	assert.Contains(t, string(lines[2]), "never")
}

func TestPrintResult_Success(t *testing.T) {
	resetFlags(t)
	Verbose = true

	var out bytes.Buffer
	err := PrintResult(&out, "sync", project.SyncResult{
		Project: registry.Project{Name: "alpha", Status: registry.StatusClean},
		Output:  "Already up to date.",
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "✓ alpha: sync [clean]")
	assert.Contains(t, out.String(), "  Already up to date.")
}

func TestPrintResult_NeedsAttentionShownWhenQuiet(t *testing.T) {
	resetFlags(t)
	Quiet = true

	var out bytes.Buffer
	err := PrintResult(&out, "sync", project.SyncResult{
		Project:        registry.Project{Name: "alpha", LocalPath: "/src/alpha"},
		NeedsAttention: true,
	})
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "✓")
	assert.Contains(t, out.String(), "git stash list")
}

func TestPrintResult_StashSkippedShownWhenQuiet(t *testing.T) {
	resetFlags(t)
	Quiet = true

	var out bytes.Buffer
	err := PrintResult(&out, "sync", project.SyncResult{
		Project:      registry.Project{Name: "alpha"},
		StashSkipped: "error: could not write index",
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "! alpha: local changes could not be stashed, sync ran without protection: error: could not write index")
}

func TestPrintResult_Failure(t *testing.T) {
	resetFlags(t)
	authErr := &git.OperationError{Operation: "pull", Failure: git.FailureAuthRequired}

	var out bytes.Buffer
	err := PrintResult(&out, "sync", project.SyncResult{
		Project: registry.Project{Name: "alpha", RemoteURL: "https://github.com/acme/alpha.git"},
		Err:     authErr,
	})
	assert.ErrorIs(t, err, ErrReported)
	assert.ErrorIs(t, err, git.ErrAuthRequired)
	assert.Contains(t, out.String(), "✗ alpha: sync failed")
	assert.Contains(t, out.String(), "gh auth login")
}

func TestPrintResults(t *testing.T) {
	resetFlags(t)

	var out bytes.Buffer
	err := PrintResults(&out, "sync", []project.SyncResult{
		{Project: registry.Project{Name: "alpha", Status: registry.StatusClean}},
		{Project: registry.Project{Name: "beta"}, Err: git.ErrGitFailure},
	})
	assert.ErrorIs(t, err, ErrBatchFailed)
	assert.Contains(t, err.Error(), "1 of 2")

	out.Reset()
	err = PrintResults(&out, "sync", []project.SyncResult{
		{Project: registry.Project{Name: "alpha", Status: registry.StatusClean}},
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "1 projects synchronized")
}

func TestHint(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		remote string
		want   string
	}{
		{"https auth", &git.OperationError{Failure: git.FailureAuthRequired}, "https://github.com/a/b.git", "gh auth login"},
		{"ssh auth", &git.OperationError{Failure: git.FailureAuthRequired}, "git@github.com:a/b.git", "ssh-add"},
		{"upstream", &git.OperationError{Failure: git.FailureMissingUpstream}, "", "git push -u"},
		{"no git", fmt.Errorf("wrapped: %w", git.ErrExecutableMissing), "", "not on PATH"},
		{"missing", project.ErrProjectMissing, "", "psync remove --permanent"},
		{"dirty", fmt.Errorf("%w: 2 entries", project.ErrUncommittedChanges), "", "commit or stash"},
		{"rate limit", forge.ErrRateLimited, "", "GITHUB_TOKEN"},
		{"canceled", context.Canceled, "", "interrupted"},
		{"other", errors.New("boom"), "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := Hint(tt.err, tt.remote)
			if tt.want == "" {
				assert.Empty(t, hint)
				return
			}
			assert.Contains(t, hint, tt.want)
		})
	}
}

func TestLogLevel(t *testing.T) {
	resetFlags(t)
	assert.Equal(t, "warn", LogLevel("warn"))

	Quiet = true
	assert.Equal(t, "error", LogLevel("warn"))

	Verbose = true
	assert.Equal(t, "debug", LogLevel("warn"))
}

func TestSelectProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := promptmocks.NewMockPrompter(ctrl)

	p.EXPECT().SelectProject([]prompt.Choice{
		{Name: "alpha", Path: "/src/alpha", Status: "clean"},
		{Name: "beta", Path: "/src/beta", Status: "modified"},
	}).Return(prompt.Choice{Name: "beta", Path: "/src/beta"}, nil)

	path, err := SelectProject(p, []registry.Project{
		{Name: "alpha", LocalPath: "/src/alpha", Status: registry.StatusClean},
		{Name: "beta", LocalPath: "/src/beta", Status: registry.StatusModified},
	})
	require.NoError(t, err)
	assert.Equal(t, "/src/beta", path)
}
