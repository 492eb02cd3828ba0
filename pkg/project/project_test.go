//go:build unit

package project

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lerenn/project-sync/pkg/config"
	configmocks "github.com/lerenn/project-sync/pkg/config/mocks"
	"github.com/lerenn/project-sync/pkg/dependencies"
	"github.com/lerenn/project-sync/pkg/forge"
	forgemocks "github.com/lerenn/project-sync/pkg/forge/mocks"
	"github.com/lerenn/project-sync/pkg/fs"
	fsmocks "github.com/lerenn/project-sync/pkg/fs/mocks"
	"github.com/lerenn/project-sync/pkg/git"
	gitmocks "github.com/lerenn/project-sync/pkg/git/mocks"
	"github.com/lerenn/project-sync/pkg/gitmeta"
	gitmetamocks "github.com/lerenn/project-sync/pkg/gitmeta/mocks"
	"github.com/lerenn/project-sync/pkg/logger"
	"github.com/lerenn/project-sync/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

type fixture struct {
	manager   *realManager
	fs        *fsmocks.MockFS
	git       *gitmocks.MockGit
	forge     *forgemocks.MockResolver
	inspector *gitmetamocks.MockInspector
	registry  registry.Registry
	cfg       *config.Config
	base      string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	dir := t.TempDir()
	f := &fixture{
		fs:        fsmocks.NewMockFS(ctrl),
		git:       gitmocks.NewMockGit(ctrl),
		forge:     forgemocks.NewMockResolver(ctrl),
		inspector: gitmetamocks.NewMockInspector(ctrl),
		registry:  registry.NewRegistry(fs.NewFS(), filepath.Join(dir, "projects.json")),
		base:      filepath.Join(dir, "Code"),
	}
	f.cfg = &config.Config{
		BaseFolder:    f.base,
		DefaultBranch: "main",
		MaxWorkers:    2,
	}

	cfgManager := configmocks.NewMockManager(ctrl)
	cfgManager.EXPECT().GetConfigWithFallback().DoAndReturn(func() (config.Config, error) {
		return *f.cfg, nil
	}).AnyTimes()
	f.fs.EXPECT().NormalizePath(gomock.Any()).DoAndReturn(func(p string) (string, error) {
		return filepath.Clean(p), nil
	}).AnyTimes()

	deps := dependencies.New().
		WithFS(f.fs).
		WithGit(f.git).
		WithConfig(cfgManager).
		WithRegistry(f.registry).
		WithLogger(logger.NewNoopLogger()).
		WithForge(f.forge).
		WithInspector(f.inspector)

	m, err := NewManager(NewManagerParams{Dependencies: deps})
	require.NoError(t, err)
	f.manager = m.(*realManager)
	f.manager.now = func() time.Time { return testNow }
	return f
}

func (f *fixture) register(t *testing.T, name, branch string) registry.Project {
	t.Helper()
	p := registry.Project{
		Name:      name,
		RemoteURL: "https://github.com/acme/" + name + ".git",
		LocalPath: filepath.Join(f.base, name),
		Branch:    branch,
		Status:    registry.StatusUnknown,
	}
	require.NoError(t, f.registry.Add(p))
	return p
}

func (f *fixture) stored(t *testing.T, path string) registry.Project {
	t.Helper()
	p, err := f.registry.Get(path)
	require.NoError(t, err)
	return *p
}

func tracking(branch string) git.RepoStatus {
	return git.RepoStatus{Branch: branch, Upstream: "origin/" + branch}
}

func TestNewManager_MissingDependencies(t *testing.T) {
	_, err := NewManager(NewManagerParams{})
	assert.ErrorIs(t, err, ErrDependenciesMissing)

	_, err = NewManager(NewManagerParams{Dependencies: dependencies.New()})
	assert.ErrorIs(t, err, dependencies.ErrConfigMissing)
}

func TestAdd_FromURL(t *testing.T) {
	f := newFixture(t)
	target := filepath.Join(f.base, "widget")

	f.git.EXPECT().Clone(gomock.Any(), git.CloneParams{
		RemoteURL:  "git@github.com:acme/widget.git",
		TargetPath: target,
		Branch:     "main",
	}).Return(git.Result{}, nil)
	f.git.EXPECT().Status(gomock.Any(), target).Return(tracking("main"), nil)

	p, err := f.manager.Add(context.Background(), AddParams{RemoteURL: "git@github.com:acme/widget.git"})
	require.NoError(t, err)
	assert.Equal(t, "widget", p.Name)
	assert.Equal(t, registry.StatusClean, p.Status)

	stored := f.stored(t, target)
	assert.Equal(t, "main", stored.Branch)
	require.NotNil(t, stored.LastSynced)
	assert.True(t, stored.LastSynced.Equal(testNow))
}

func TestAdd_ResolvesShorthand(t *testing.T) {
	f := newFixture(t)
	target := filepath.Join(f.base, "gadget")

	f.forge.EXPECT().Resolve(gomock.Any(), "acme/gadget").Return(&forge.Repository{
		Owner:         "acme",
		Name:          "gadget",
		CloneURL:      "https://github.com/acme/gadget.git",
		DefaultBranch: "trunk",
	}, nil)
	f.git.EXPECT().Clone(gomock.Any(), git.CloneParams{
		RemoteURL:  "https://github.com/acme/gadget.git",
		TargetPath: target,
		Branch:     "trunk",
	}).Return(git.Result{}, nil)
	f.git.EXPECT().Status(gomock.Any(), target).Return(tracking("trunk"), nil)

	p, err := f.manager.Add(context.Background(), AddParams{RemoteURL: "acme/gadget"})
	require.NoError(t, err)
	assert.Equal(t, "trunk", p.Branch)
	assert.Equal(t, "https://github.com/acme/gadget.git", p.RemoteURL)
}

func TestAdd_ExplicitBranchWinsOverForgeDefault(t *testing.T) {
	f := newFixture(t)
	target := filepath.Join(f.base, "custom")

	f.forge.EXPECT().Resolve(gomock.Any(), "acme/gadget").Return(&forge.Repository{
		Name:          "gadget",
		CloneURL:      "https://github.com/acme/gadget.git",
		DefaultBranch: "trunk",
	}, nil)
	f.git.EXPECT().Clone(gomock.Any(), git.CloneParams{
		RemoteURL:  "https://github.com/acme/gadget.git",
		TargetPath: target,
		Branch:     "develop",
	}).Return(git.Result{}, nil)
	f.git.EXPECT().Status(gomock.Any(), target).Return(tracking("develop"), nil)

	p, err := f.manager.Add(context.Background(), AddParams{
		RemoteURL: "acme/gadget",
		Name:      "custom",
		Branch:    "develop",
	})
	require.NoError(t, err)
	assert.Equal(t, "custom", p.Name)
	assert.Equal(t, "develop", p.Branch)
}

func TestAdd_Conflicts(t *testing.T) {
	f := newFixture(t)
	f.register(t, "widget", "main")

	_, err := f.manager.Add(context.Background(), AddParams{RemoteURL: "https://example.com/other/widget.git"})
	assert.ErrorIs(t, err, registry.ErrProjectNameExists)

	_, err = f.manager.Add(context.Background(), AddParams{
		RemoteURL: "https://example.com/other/thing.git",
		LocalPath: filepath.Join(f.base, "widget"),
	})
	assert.ErrorIs(t, err, registry.ErrProjectPathExists)
}

func TestAdd_CloneFailureRegistersNothing(t *testing.T) {
	f := newFixture(t)
	cloneErr := &git.OperationError{Kind: git.KindGitFailure, Operation: "clone", Failure: git.FailureAuthRequired}
	f.git.EXPECT().Clone(gomock.Any(), gomock.Any()).Return(git.Result{}, cloneErr)

	_, err := f.manager.Add(context.Background(), AddParams{RemoteURL: "https://github.com/acme/private.git"})
	assert.ErrorIs(t, err, git.ErrAuthRequired)

	projects, err := f.registry.List(true)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestAdd_RequiresRemote(t *testing.T) {
	f := newFixture(t)
	_, err := f.manager.Add(context.Background(), AddParams{RemoteURL: "  "})
	assert.ErrorIs(t, err, ErrRemoteURLRequired)
}

func TestSync_SetsMissingUpstream(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")

	gomock.InOrder(
		f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(true, nil),
		f.git.EXPECT().Pull(gomock.Any(), git.PullParams{RepoPath: p.LocalPath, Branch: "main"}).
			Return(git.Result{Output: "Already up to date.\n"}, nil),
		f.git.EXPECT().Status(gomock.Any(), p.LocalPath).Return(git.RepoStatus{Branch: "main"}, nil),
		f.git.EXPECT().SetUpstream(gomock.Any(), p.LocalPath, "main").Return(nil),
		f.git.EXPECT().Status(gomock.Any(), p.LocalPath).Return(git.RepoStatus{Branch: "main", Upstream: "origin/main", Ahead: 1}, nil),
	)

	res := f.manager.Sync(context.Background(), "widget")
	require.NoError(t, res.Err)
	assert.Equal(t, "Already up to date.", res.Output)
	assert.False(t, res.NeedsAttention)
	assert.Equal(t, registry.StatusLocalAhead, res.Project.Status)

	stored := f.stored(t, p.LocalPath)
	assert.Equal(t, registry.StatusLocalAhead, stored.Status)
	require.NotNil(t, stored.LastSynced)
	assert.Empty(t, stored.LastError)
}

func TestSync_ByPath(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")

	f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(true, nil)
	f.git.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(git.Result{}, nil)
	f.git.EXPECT().Status(gomock.Any(), p.LocalPath).Return(tracking("main"), nil)

	res := f.manager.Sync(context.Background(), p.LocalPath+string(filepath.Separator))
	require.NoError(t, res.Err)
	assert.Equal(t, "widget", res.Project.Name)
}

func TestSync_MissingDirectory(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")
	f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(false, nil)

	res := f.manager.Sync(context.Background(), "widget")
	assert.ErrorIs(t, res.Err, ErrProjectMissing)
	assert.Equal(t, registry.StatusMissing, f.stored(t, p.LocalPath).Status)
}

func TestSync_UnknownProject(t *testing.T) {
	f := newFixture(t)
	res := f.manager.Sync(context.Background(), "nope")
	assert.ErrorIs(t, res.Err, registry.ErrProjectNotFound)
}

func TestSync_StashNotRestored(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")
	restoreErr := &git.StashRestoreError{Dir: "/tmp/widget", Err: errors.New("conflict in README.md")}

	f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(true, nil)
	f.git.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(git.Result{StashRestoreErr: restoreErr}, nil)
	f.git.EXPECT().Status(gomock.Any(), p.LocalPath).Return(git.RepoStatus{Branch: "main", Upstream: "origin/main", Changes: 1}, nil)

	res := f.manager.Sync(context.Background(), "widget")
	require.NoError(t, res.Err)
	assert.True(t, res.NeedsAttention)

	stored := f.stored(t, p.LocalPath)
	assert.Equal(t, registry.StatusModified, stored.Status)
	assert.Equal(t, restoreErr.Error(), stored.LastError)
}

func TestSync_StashSkipped(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")

	f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(true, nil)
	f.git.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(git.Result{StashSkipped: "error: could not write index"}, nil)
	f.git.EXPECT().Status(gomock.Any(), p.LocalPath).Return(tracking("main"), nil)

	res := f.manager.Sync(context.Background(), "widget")
	require.NoError(t, res.Err)
	assert.False(t, res.NeedsAttention)
	assert.Equal(t, "error: could not write index", res.StashSkipped)

	stored := f.stored(t, p.LocalPath)
	assert.Equal(t, registry.StatusClean, stored.Status)
	assert.Equal(t, "local changes were not stashed: error: could not write index", stored.LastError)
}

func TestSync_PullFailureRecorded(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")
	pullErr := &git.OperationError{Kind: git.KindGitFailure, Operation: "pull", Failure: git.FailureOther, Output: "fatal: unable to access"}

	f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(true, nil)
	f.git.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(git.Result{}, pullErr)

	res := f.manager.Sync(context.Background(), "widget")
	assert.ErrorIs(t, res.Err, git.ErrGitFailure)

	stored := f.stored(t, p.LocalPath)
	assert.Equal(t, registry.StatusError, stored.Status)
	assert.Equal(t, pullErr.Error(), stored.LastError)
	assert.Nil(t, stored.LastSynced)
}

func TestSync_CanceledLeavesRegistryUntouched(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(true, nil)
	f.git.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(git.Result{}, context.Canceled)

	res := f.manager.Sync(ctx, "widget")
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Equal(t, registry.StatusUnknown, f.stored(t, p.LocalPath).Status)
}

func TestSyncAll(t *testing.T) {
	f := newFixture(t)
	a := f.register(t, "alpha", "main")
	b := f.register(t, "beta", "develop")

	for _, p := range []registry.Project{a, b} {
		f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(true, nil)
		f.git.EXPECT().Pull(gomock.Any(), git.PullParams{RepoPath: p.LocalPath, Branch: p.Branch}).Return(git.Result{}, nil)
		f.git.EXPECT().Status(gomock.Any(), p.LocalPath).Return(tracking(p.Branch), nil)
	}

	results, err := f.manager.SyncAll(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "alpha", results[0].Project.Name)
	assert.Equal(t, "beta", results[1].Project.Name)
	for _, res := range results {
		assert.NoError(t, res.Err)
		assert.Equal(t, registry.StatusClean, res.Project.Status)
	}
}

func TestSyncAll_HaltsWithoutGit(t *testing.T) {
	f := newFixture(t)
	f.cfg.MaxWorkers = 1
	a := f.register(t, "alpha", "main")
	f.register(t, "beta", "main")

	f.fs.EXPECT().IsGitRepository(a.LocalPath).Return(true, nil)
	f.git.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(git.Result{}, git.ErrExecutableMissing)

	results, err := f.manager.SyncAll(context.Background())
	assert.ErrorIs(t, err, git.ErrExecutableMissing)
	require.Len(t, results, 2)
	assert.ErrorIs(t, results[0].Err, git.ErrExecutableMissing)
	assert.ErrorIs(t, results[1].Err, ErrSkipped)
}

func TestPush(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")

	ahead := tracking("main")
	ahead.Ahead = 1

	f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(true, nil)
	gomock.InOrder(
		f.git.EXPECT().Status(gomock.Any(), p.LocalPath).Return(ahead, nil),
		f.git.EXPECT().Push(gomock.Any(), p.LocalPath).Return(git.Result{Stderr: "To github.com:acme/widget.git\n"}, nil),
		f.git.EXPECT().Status(gomock.Any(), p.LocalPath).Return(tracking("main"), nil),
	)

	res := f.manager.Push(context.Background(), "widget")
	require.NoError(t, res.Err)
	assert.Equal(t, "To github.com:acme/widget.git", res.Output)
	assert.Equal(t, registry.StatusClean, res.Project.Status)
}

func TestPush_MissingUpstream(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")
	pushErr := &git.OperationError{Kind: git.KindGitFailure, Operation: "push", Failure: git.FailureMissingUpstream}

	f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(true, nil)
	gomock.InOrder(
		f.git.EXPECT().Status(gomock.Any(), p.LocalPath).Return(git.RepoStatus{Branch: "main"}, nil),
		f.git.EXPECT().Push(gomock.Any(), p.LocalPath).Return(git.Result{}, pushErr),
	)

	res := f.manager.Push(context.Background(), "widget")
	assert.ErrorIs(t, res.Err, git.ErrMissingUpstream)
	assert.Equal(t, registry.StatusError, res.Project.Status)
}

func TestPush_RefusesUncommittedChanges(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")
	dirty := tracking("main")
	dirty.Ahead, dirty.Changes = 1, 2

	f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(true, nil)
	f.git.EXPECT().Status(gomock.Any(), p.LocalPath).Return(dirty, nil)
	// No Push expectation: pushing fails the test.

	res := f.manager.Push(context.Background(), "widget")
	assert.ErrorIs(t, res.Err, ErrUncommittedChanges)
	assert.Equal(t, registry.StatusModified, f.stored(t, p.LocalPath).Status)
}

func TestPush_NothingToPush(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")
	behind := tracking("main")
	behind.Behind = 3

	f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(true, nil)
	f.git.EXPECT().Status(gomock.Any(), p.LocalPath).Return(behind, nil)

	res := f.manager.Push(context.Background(), "widget")
	require.NoError(t, res.Err)
	assert.Equal(t, UpToDateOutput, res.Output)
	assert.Equal(t, registry.StatusNeedsPull, f.stored(t, p.LocalPath).Status)
}

func TestPush_StatusFailureRecorded(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")
	statusErr := &git.OperationError{Kind: git.KindGitFailure, Operation: "status", Failure: git.FailureOther}

	f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(true, nil)
	f.git.EXPECT().Status(gomock.Any(), p.LocalPath).Return(git.RepoStatus{}, statusErr)

	res := f.manager.Push(context.Background(), "widget")
	assert.ErrorIs(t, res.Err, git.ErrGitFailure)
	assert.Equal(t, registry.StatusError, f.stored(t, p.LocalPath).Status)
}

func TestSetBranch(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")

	f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(true, nil)
	f.git.EXPECT().Checkout(gomock.Any(), p.LocalPath, "feature/x").Return(git.Result{}, nil)
	f.git.EXPECT().Status(gomock.Any(), p.LocalPath).Return(git.RepoStatus{Branch: "feature/x"}, nil)

	res := f.manager.SetBranch(context.Background(), "widget", " feature/x ")
	require.NoError(t, res.Err)

	stored := f.stored(t, p.LocalPath)
	assert.Equal(t, "feature/x", stored.Branch)
	assert.Equal(t, registry.StatusClean, stored.Status)
}

func TestSetBranch_CheckoutFailureKeepsBranch(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")

	f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(true, nil)
	f.git.EXPECT().Checkout(gomock.Any(), p.LocalPath, "nope").
		Return(git.Result{}, &git.OperationError{Kind: git.KindGitFailure, Operation: "checkout", Failure: git.FailureOther})

	res := f.manager.SetBranch(context.Background(), "widget", "nope")
	assert.ErrorIs(t, res.Err, git.ErrGitFailure)
	assert.Equal(t, "main", f.stored(t, p.LocalPath).Branch)
}

func TestCreateBranch(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")

	f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(true, nil)
	f.git.EXPECT().CreateBranch(gomock.Any(), p.LocalPath, "feature/y").Return(git.Result{}, nil)
	f.git.EXPECT().Status(gomock.Any(), p.LocalPath).Return(git.RepoStatus{Branch: "feature/y", Changes: 1}, nil)

	res := f.manager.CreateBranch(context.Background(), "widget", "feature/y")
	require.NoError(t, res.Err)

	stored := f.stored(t, p.LocalPath)
	assert.Equal(t, "feature/y", stored.Branch)
	assert.Equal(t, registry.StatusModified, stored.Status)
}

func TestCreateBranch_ExistingBranchKeepsPin(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")

	f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(true, nil)
	f.git.EXPECT().CreateBranch(gomock.Any(), p.LocalPath, "main").
		Return(git.Result{}, &git.OperationError{Kind: git.KindGitFailure, Operation: "checkout", Failure: git.FailureOther})

	res := f.manager.CreateBranch(context.Background(), "widget", "main")
	assert.ErrorIs(t, res.Err, git.ErrGitFailure)
	assert.Equal(t, "main", f.stored(t, p.LocalPath).Branch)
}

func TestSetBranch_StashSkippedRecorded(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")

	f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(true, nil)
	f.git.EXPECT().Checkout(gomock.Any(), p.LocalPath, "develop").
		Return(git.Result{StashSkipped: "error: could not write index"}, nil)
	f.git.EXPECT().Status(gomock.Any(), p.LocalPath).Return(git.RepoStatus{Branch: "develop"}, nil)

	res := f.manager.SetBranch(context.Background(), "widget", "develop")
	require.NoError(t, res.Err)
	assert.Equal(t, "error: could not write index", res.StashSkipped)
	assert.Contains(t, f.stored(t, p.LocalPath).LastError, "local changes were not stashed")
}

func TestSetBranch_RequiresBranch(t *testing.T) {
	f := newFixture(t)
	res := f.manager.SetBranch(context.Background(), "widget", "")
	assert.ErrorIs(t, res.Err, ErrBranchRequired)
}

func TestHistory(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")
	commits := []git.Commit{{Hash: "abc123", Date: "2025-01-01", Subject: "Commit message"}}

	f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(true, nil)
	f.git.EXPECT().History(gomock.Any(), p.LocalPath, 10).Return(commits, nil)

	got, err := f.manager.History(context.Background(), "widget", HistoryParams{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, commits, got)
}

func TestHistory_Export(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")
	out := filepath.Join(t.TempDir(), "logs", "commit_history.txt")
	commits := []git.Commit{{Hash: "abc123", Date: "2025-01-01", Subject: "Commit message"}}

	f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(true, nil)
	f.git.EXPECT().History(gomock.Any(), p.LocalPath, 0).Return(commits, nil)
	f.fs.EXPECT().MkdirAll(filepath.Dir(out), os.FileMode(0755)).Return(nil)
	f.fs.EXPECT().WriteFileAtomic(out, []byte("abc123 2025-01-01 Commit message\n"), os.FileMode(0644)).Return(nil)

	_, err := f.manager.History(context.Background(), "widget", HistoryParams{Output: out})
	require.NoError(t, err)
}

func TestHistory_MissingDirectory(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")
	f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(false, nil)

	_, err := f.manager.History(context.Background(), "widget", HistoryParams{})
	assert.ErrorIs(t, err, ErrProjectMissing)
}

func TestRefreshAll(t *testing.T) {
	f := newFixture(t)
	f.cfg.FetchBeforeStatus = true
	a := f.register(t, "alpha", "main")
	b := f.register(t, "beta", "main")
	c := f.register(t, "gamma", "main")

	f.fs.EXPECT().IsGitRepository(a.LocalPath).Return(true, nil)
	f.git.EXPECT().Fetch(gomock.Any(), a.LocalPath).Return(git.Result{}, nil)
	f.git.EXPECT().Status(gomock.Any(), a.LocalPath).Return(git.RepoStatus{Branch: "main", Upstream: "origin/main", Behind: 3}, nil)

	f.fs.EXPECT().IsGitRepository(b.LocalPath).Return(true, nil)
	f.git.EXPECT().Fetch(gomock.Any(), b.LocalPath).
		Return(git.Result{}, &git.OperationError{Kind: git.KindGitFailure, Operation: "fetch", Failure: git.FailureOther})

	f.fs.EXPECT().IsGitRepository(c.LocalPath).Return(false, nil)

	projects, err := f.manager.RefreshAll(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, registry.StatusNeedsPull, projects[0].Status)
	assert.Equal(t, registry.StatusError, projects[1].Status)
	assert.NotEmpty(t, projects[1].LastError)
	assert.Equal(t, registry.StatusMissing, projects[2].Status)
}

func TestRefreshStatus_ClearsPreviousError(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")
	_, err := f.registry.Update(p.LocalPath, func(rec *registry.Project) error {
		rec.Status = registry.StatusError
		rec.LastError = "boom"
		return nil
	})
	require.NoError(t, err)

	f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(true, nil)
	f.git.EXPECT().Status(gomock.Any(), p.LocalPath).Return(git.RepoStatus{Branch: "main", Upstream: "origin/main", Ahead: 1, Behind: 1}, nil)

	refreshed, err := f.manager.RefreshStatus(context.Background(), "widget")
	require.NoError(t, err)
	assert.Equal(t, registry.StatusDiverged, refreshed.Status)
	assert.Empty(t, refreshed.LastError)
}

func TestRefreshLocalStatus_NeverFetches(t *testing.T) {
	f := newFixture(t)
	f.cfg.FetchBeforeStatus = true
	p := f.register(t, "widget", "main")

	f.fs.EXPECT().IsGitRepository(p.LocalPath).Return(true, nil)
	// No Fetch expectation: fetching fails the test.
	f.git.EXPECT().Status(gomock.Any(), p.LocalPath).Return(git.RepoStatus{Branch: "main", Upstream: "origin/main", Ahead: 1}, nil)

	refreshed, err := f.manager.RefreshLocalStatus(context.Background(), "widget")
	require.NoError(t, err)
	assert.Equal(t, registry.StatusLocalAhead, refreshed.Status)
}

func TestRemoveAndRestore(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")

	removed, err := f.manager.Remove("widget", false)
	require.NoError(t, err)
	assert.True(t, removed.Deleted)

	_, err = f.manager.Get("widget")
	assert.ErrorIs(t, err, registry.ErrProjectNotFound)

	restored, err := f.manager.Restore("widget")
	require.NoError(t, err)
	assert.False(t, restored.Deleted)
	assert.False(t, f.stored(t, p.LocalPath).Deleted)
}

func TestRemove_Permanent(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")
	_, err := f.manager.Remove("widget", false)
	require.NoError(t, err)

	f.fs.EXPECT().RemoveAll(p.LocalPath).Return(nil)

	_, err = f.manager.Remove("widget", true)
	require.NoError(t, err)

	projects, err := f.registry.List(true)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestRemove_PermanentFailureKeepsRecord(t *testing.T) {
	f := newFixture(t)
	p := f.register(t, "widget", "main")
	f.fs.EXPECT().RemoveAll(p.LocalPath).Return(os.ErrPermission)

	_, err := f.manager.Remove("widget", true)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.False(t, f.stored(t, p.LocalPath).Deleted)
}

func TestRestore_NotDeleted(t *testing.T) {
	f := newFixture(t)
	f.register(t, "widget", "main")

	_, err := f.manager.Restore("widget")
	assert.ErrorIs(t, err, registry.ErrProjectNotFound)
}

func TestScan(t *testing.T) {
	f := newFixture(t)
	for _, dir := range []string{"known", "gone", "notes", "fresh", "widget"} {
		require.NoError(t, os.MkdirAll(filepath.Join(f.base, dir), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(f.base, "README.md"), nil, 0o644))

	f.register(t, "known", "main")
	f.register(t, "gone", "main")
	_, err := f.manager.Remove("gone", false)
	require.NoError(t, err)
	// Registered under another path, so the widget directory collides by name.
	require.NoError(t, f.registry.Add(registry.Project{
		Name:      "widget",
		LocalPath: filepath.Join(t.TempDir(), "elsewhere"),
		Branch:    "main",
	}))

	fresh := filepath.Join(f.base, "fresh")
	f.fs.EXPECT().IsDir(f.base).Return(true, nil)
	f.fs.EXPECT().ReadDir(f.base).DoAndReturn(os.ReadDir)
	f.fs.EXPECT().IsGitRepository(filepath.Join(f.base, "notes")).Return(false, nil)
	f.fs.EXPECT().IsGitRepository(filepath.Join(f.base, "widget")).Return(true, nil)
	f.fs.EXPECT().IsGitRepository(fresh).Return(true, nil).Times(2)
	f.inspector.EXPECT().Inspect(fresh).Return(gitmeta.Metadata{
		RemoteURL: "https://github.com/acme/fresh.git",
		Branch:    gitmeta.DetachedHead,
	}, nil)
	f.git.EXPECT().Status(gomock.Any(), fresh).Return(tracking("main"), nil)

	added, err := f.manager.Scan(context.Background())
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.Equal(t, "fresh", added[0].Name)
	assert.Equal(t, "main", added[0].Branch)
	assert.Equal(t, registry.StatusClean, added[0].Status)

	gone, err := f.registry.Get(filepath.Join(f.base, "gone"))
	require.NoError(t, err)
	assert.True(t, gone.Deleted)
}

func TestScan_BaseFolderMissing(t *testing.T) {
	f := newFixture(t)
	f.fs.EXPECT().IsDir(f.base).Return(false, nil)

	_, err := f.manager.Scan(context.Background())
	assert.ErrorIs(t, err, ErrBaseFolderMissing)
}

func TestProjectStatus(t *testing.T) {
	tests := []struct {
		name   string
		status git.RepoStatus
		want   registry.Status
	}{
		{"no upstream", git.RepoStatus{Branch: "main"}, registry.StatusClean},
		{"clean", tracking("main"), registry.StatusClean},
		{"changes win", git.RepoStatus{Upstream: "origin/main", Behind: 2, Changes: 1}, registry.StatusModified},
		{"behind", git.RepoStatus{Upstream: "origin/main", Behind: 2}, registry.StatusNeedsPull},
		{"ahead", git.RepoStatus{Upstream: "origin/main", Ahead: 2}, registry.StatusLocalAhead},
		{"diverged", git.RepoStatus{Upstream: "origin/main", Ahead: 1, Behind: 1}, registry.StatusDiverged},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, projectStatus(tt.status))
		})
	}
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, registry.StatusMissing, statusFromError(ErrProjectMissing))
	assert.Equal(t, registry.StatusMissing, statusFromError(&git.OperationError{Kind: git.KindDirectoryInvalid}))
	assert.Equal(t, registry.StatusError, statusFromError(git.ErrGitFailure))
}
