package git

import (
	"context"
	"errors"
	"fmt"

	"github.com/lerenn/project-sync/pkg/fs"
	"github.com/lerenn/project-sync/pkg/logger"
	"github.com/lerenn/project-sync/pkg/runner"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=engine.go -destination=mocks/engine.gen.go -package=mocks

// MaxAttempts bounds how many times a single operation is executed.
const MaxAttempts = 2

const gitExecutable = "git"

// Result is the outcome of a successful operation.
type Result struct {
	// Output is the stdout of the successful attempt.
	Output string
	// Stderr carries progress and hints git writes on success.
	Stderr     string
	Attempts   int
	Remediated bool
	// StashRestoreErr is non-nil when auto-stashed changes are still in the stash.
	StashRestoreErr error
	// StashSkipped holds git's output when local changes could not be stashed
	// and the operation ran without the guard.
	StashSkipped string
}

// Engine runs git operations with failure classification and remediation.
type Engine interface {
	// Run executes op, remediating recognized failures and retrying at most once.
	// Errors are *OperationError values.
	Run(ctx context.Context, op Operation) (Result, error)
}

// NewEngineParams contains parameters for creating a new Engine.
type NewEngineParams struct {
	Runner     runner.Runner
	FS         fs.FS
	Logger     logger.Logger
	StashLabel string
}

type realEngine struct {
	runner  runner.Runner
	fs      fs.FS
	logger  logger.Logger
	truster *truster
	stash   *stashGuard
}

// NewEngine creates a new Engine instance.
func NewEngine(params NewEngineParams) Engine {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}
	r := params.Runner
	if r == nil {
		r = runner.NewRunner(l)
	}
	f := params.FS
	if f == nil {
		f = fs.NewFS()
	}
	label := params.StashLabel
	if label == "" {
		label = DefaultStashLabel
	}

	return &realEngine{
		runner:  r,
		fs:      f,
		logger:  l,
		truster: &truster{runner: r, logger: l},
		stash:   &stashGuard{runner: r, logger: l, label: label},
	}
}

func (e *realEngine) Run(ctx context.Context, op Operation) (Result, error) {
	if err := e.checkPreconditions(op); err != nil {
		return Result{}, err
	}

	var (
		remediated bool
		restoreErr error
	)
	for attempt := 1; ; attempt++ {
		e.logger.Debugf("%s (attempt %d/%d, dir: %s)", op, attempt, MaxAttempts, op.Dir)

		out, err := e.attempt(ctx, op)
		if out.restoreErr != nil {
			restoreErr = out.restoreErr
		}
		if err != nil {
			return Result{}, e.processFailure(op, attempt, remediated, restoreErr, err)
		}

		if out.ExitCode == 0 {
			return Result{
				Output:          out.Stdout,
				Stderr:          out.Stderr,
				Attempts:        attempt,
				Remediated:      remediated,
				StashRestoreErr: restoreErr,
				StashSkipped:    out.stashSkipped,
			}, nil
		}

		failure := Classify(out.Stdout, out.Stderr)
		if failure == FailureNone {
			failure = FailureOther
		}
		opErr := &OperationError{
			Kind:            KindGitFailure,
			Operation:       op.Name,
			Dir:             op.Dir,
			Failure:         failure,
			Output:          out.Combined(),
			Attempts:        attempt,
			Remediated:      remediated,
			StashRestoreErr: restoreErr,
			Err:             fmt.Errorf("exit status %d", out.ExitCode),
		}

		if failure != FailureDubiousOwnership || attempt >= MaxAttempts {
			e.logger.Debugf("%s failed with %s after %d attempt(s)", op, failure, attempt)
			return Result{}, opErr
		}

		target := e.workTree(op)
		e.logger.Warnf("git reported dubious ownership of %s, registering it as safe.directory", target)
		remediated = true
		if !e.truster.Trust(ctx, target) {
			opErr.Kind = KindOwnershipRejected
			opErr.Remediated = true
			return Result{}, opErr
		}
	}
}

// attemptOutput is the process result of one attempt and what the stash guard
// reported around it.
type attemptOutput struct {
	runner.Result
	restoreErr   error
	stashSkipped string
}

// attempt runs op once behind the stash guard. The error is a failure to run git at all.
func (e *realEngine) attempt(ctx context.Context, op Operation) (attemptOutput, error) {
	var out attemptOutput
	saved := false
	if op.IsMutating() {
		var err error
		if saved, out.stashSkipped, err = e.stash.Save(ctx, op.Dir); err != nil {
			return out, err
		}
	}

	argv := append([]string{gitExecutable}, op.Args...)
	res, runErr := e.runner.Run(ctx, op.Dir, argv...)
	out.Result = res

	if saved {
		// Changes must come back even when the operation was canceled.
		out.restoreErr = e.stash.Restore(context.WithoutCancel(ctx), op.Dir)
	}
	return out, runErr
}

func (e *realEngine) checkPreconditions(op Operation) error {
	if len(op.Args) == 0 {
		return &OperationError{Kind: KindGitFailure, Operation: op.Name, Dir: op.Dir, Err: ErrEmptyOperation}
	}

	invalid := func(err error) error {
		return &OperationError{Kind: KindDirectoryInvalid, Operation: op.Name, Dir: op.Dir, Err: err}
	}

	if op.IsClone() {
		target := op.CloneTarget()
		if op.Dir == "" || target == "" {
			return invalid(errors.New("clone needs a target directory"))
		}
		if err := e.fs.MkdirAll(op.Dir, 0755); err != nil {
			return invalid(fmt.Errorf("failed to create parent directory: %w", err))
		}
		isRepo, err := e.fs.IsGitRepository(target)
		if err != nil {
			return invalid(err)
		}
		if isRepo {
			return invalid(fmt.Errorf("%s already contains a git repository", target))
		}
		return nil
	}

	if op.Dir == "" {
		return invalid(errors.New("no working directory given"))
	}
	isRepo, err := e.fs.IsGitRepository(op.Dir)
	if err != nil {
		return invalid(err)
	}
	if !isRepo {
		return invalid(fmt.Errorf("%s is not an existing git working tree", op.Dir))
	}
	return nil
}

func (e *realEngine) processFailure(op Operation, attempt int, remediated bool, restoreErr, err error) error {
	kind := KindGitFailure
	if errors.Is(err, runner.ErrExecutableNotFound) {
		kind = KindExecutableMissing
	}
	return &OperationError{
		Kind:            kind,
		Operation:       op.Name,
		Dir:             op.Dir,
		Attempts:        attempt,
		Remediated:      remediated,
		StashRestoreErr: restoreErr,
		Err:             err,
	}
}

// workTree is the directory git complained about.
func (e *realEngine) workTree(op Operation) string {
	if op.IsClone() {
		return op.CloneTarget()
	}
	return op.Dir
}
