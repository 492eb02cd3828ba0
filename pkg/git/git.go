package git

import (
	"context"

	"github.com/lerenn/project-sync/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mocks/git.gen.go -package=mocks

// Sentinel values returned instead of errors by lookups that must never fail.
const (
	UnknownBranch  = "unknown"
	DetachedBranch = "detached"
	UnknownRemote  = "unknown"
)

// Git interface provides the high level git verbs used to synchronize projects.
type Git interface {
	// Clone clones params.RemoteURL into params.TargetPath, checking out params.Branch when set.
	Clone(ctx context.Context, params CloneParams) (Result, error)

	// Pull pulls params.Branch from origin, checking it out first when another branch is current.
	Pull(ctx context.Context, params PullParams) (Result, error)

	// Push pushes the current branch to origin.
	Push(ctx context.Context, repoPath string) (Result, error)

	// Fetch fetches and prunes origin.
	Fetch(ctx context.Context, repoPath string) (Result, error)

	// Checkout switches the working tree to branch, keeping local changes.
	Checkout(ctx context.Context, repoPath, branch string) (Result, error)

	// CreateBranch creates branch at HEAD and switches to it, keeping local changes.
	CreateBranch(ctx context.Context, repoPath, branch string) (Result, error)

	// History lists the last limit commits of the current branch, newest first.
	// A limit of zero lists them all.
	History(ctx context.Context, repoPath string, limit int) ([]Commit, error)

	// Status reports branch tracking information and local changes.
	Status(ctx context.Context, repoPath string) (RepoStatus, error)

	// CurrentBranch returns the checked out branch, DetachedBranch or UnknownBranch.
	CurrentBranch(ctx context.Context, repoPath string) string

	// RemoteURL returns the URL of origin or UnknownRemote.
	RemoteURL(ctx context.Context, repoPath string) string

	// SetUpstream makes branch track origin/<branch>.
	SetUpstream(ctx context.Context, repoPath, branch string) error
}

// NewGitParams contains parameters for creating a new Git instance.
type NewGitParams struct {
	Engine Engine
	Logger logger.Logger
}

type realGit struct {
	engine Engine
	logger logger.Logger
}

// NewGit creates a new Git instance running its operations through params.Engine.
func NewGit(params NewGitParams) Git {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}
	engine := params.Engine
	if engine == nil {
		engine = NewEngine(NewEngineParams{Logger: l})
	}
	return &realGit{engine: engine, logger: l}
}
