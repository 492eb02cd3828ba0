package git

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/lerenn/project-sync/pkg/logger"
	"github.com/lerenn/project-sync/pkg/runner"
)

const safeDirectoryKey = "safe.directory"

// truster registers directories in the user's global safe.directory list.
type truster struct {
	runner runner.Runner
	logger logger.Logger
}

// Trust makes git accept the repository at path regardless of its owner.
// Registering an already trusted path is a no-op, so repeated calls leave a
// single entry behind.
func (t *truster) Trust(ctx context.Context, path string) bool {
	entry := filepath.ToSlash(filepath.Clean(path))

	if t.isTrusted(ctx, entry) {
		t.logger.Debugf("%s is already a safe.directory", entry)
		return true
	}

	res, err := t.runner.Run(ctx, "", gitExecutable, "config", "--global", "--add", safeDirectoryKey, entry)
	if err != nil {
		t.logger.Errorf("could not add %s to safe.directory: %v", entry, err)
		return false
	}
	if res.ExitCode != 0 {
		t.logger.Errorf("could not add %s to safe.directory (exit %d): %s", entry, res.ExitCode, res.Combined())
		return false
	}

	t.logger.Logf("Added %s to git safe.directory", entry)
	return true
}

func (t *truster) isTrusted(ctx context.Context, entry string) bool {
	res, err := t.runner.Run(ctx, "", gitExecutable, "config", "--global", "--get-all", safeDirectoryKey)
	if err != nil || res.ExitCode != 0 {
		// Exit code 1 only means the key is not set yet.
		return false
	}

	for _, line := range strings.Split(res.Stdout, "\n") {
		line = strings.TrimSpace(line)
		if line == "*" || line == entry {
			return true
		}
	}
	return false
}
