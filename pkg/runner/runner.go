// Package runner spawns external programs without a terminal and captures
// their exit code and output streams.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/lerenn/project-sync/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=runner.go -destination=mocks/runner.gen.go -package=mocks

// Result is the outcome of a process that ran to completion.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Combined returns stdout followed by stderr, trimmed.
func (r Result) Combined() string {
	stdout := strings.TrimSpace(r.Stdout)
	stderr := strings.TrimSpace(r.Stderr)
	switch {
	case stdout == "":
		return stderr
	case stderr == "":
		return stdout
	default:
		return stdout + "\n" + stderr
	}
}

// Runner interface provides process execution.
type Runner interface {
	// Run executes argv[0] with argv[1:] in dir ("" inherits the current directory).
	// A non-zero exit code is reported through Result, not as an error.
	Run(ctx context.Context, dir string, argv ...string) (Result, error)
}

type realRunner struct {
	logger logger.Logger
}

// NewRunner creates a new Runner instance.
func NewRunner(l logger.Logger) Runner {
	if l == nil {
		l = logger.NewNoopLogger()
	}
	return &realRunner{logger: l}
}

func (r *realRunner) Run(ctx context.Context, dir string, argv ...string) (Result, error) {
	if len(argv) == 0 || argv[0] == "" {
		return Result{}, ErrEmptyCommand
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrExecutableNotFound, argv[0])
	}

	cmd := exec.CommandContext(ctx, path, argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = nil
	cmd.Env = nonInteractiveEnv(os.Environ())

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debugf("exec %s (dir: %s)", strings.Join(argv, " "), displayDir(dir))
	start := time.Now()
	runErr := cmd.Run()

	result := Result{
		Stdout: decode(stdout.Bytes()),
		Stderr: decode(stderr.Bytes()),
	}

	if runErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, fmt.Errorf("%w: %s: %w", ErrCanceled, argv[0], ctxErr)
		}

		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return result, fmt.Errorf("%w: %s: %w", ErrSpawnFailed, argv[0], runErr)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	r.logger.Debugf("exec %s finished with code %d in %s", argv[0], result.ExitCode, time.Since(start).Round(time.Millisecond))
	return result, nil
}

// nonInteractiveEnv makes credential helpers and ssh fail instead of waiting for input.
func nonInteractiveEnv(base []string) []string {
	env := make([]string, 0, len(base)+3)
	hasSSHCommand := false
	for _, kv := range base {
		switch {
		case strings.HasPrefix(kv, "GIT_TERMINAL_PROMPT="), strings.HasPrefix(kv, "GCM_INTERACTIVE="):
			continue
		case strings.HasPrefix(kv, "GIT_SSH_COMMAND="):
			hasSSHCommand = true
		}
		env = append(env, kv)
	}

	env = append(env, "GIT_TERMINAL_PROMPT=0", "GCM_INTERACTIVE=never")
	if !hasSSHCommand {
		env = append(env, "GIT_SSH_COMMAND=ssh -o BatchMode=yes")
	}
	return env
}

// decode turns captured bytes into text, substituting U+FFFD for invalid UTF-8.
func decode(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}

func displayDir(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}
