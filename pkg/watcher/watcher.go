// Package watcher reports working tree changes of project directories using fsnotify.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/lerenn/project-sync/pkg/fs"
	"github.com/lerenn/project-sync/pkg/logger"
)

// DefaultDebounce is used when no quiet period is configured.
const DefaultDebounce = 500 * time.Millisecond

// gitRefFiles are the files at the top of the .git directory whose changes matter.
// The index and lock files are rewritten by git status itself and are ignored.
var gitRefFiles = map[string]bool{
	"HEAD":        true,
	"ORIG_HEAD":   true,
	"MERGE_HEAD":  true,
	"FETCH_HEAD":  true,
	"packed-refs": true,
}

// gitRefDirs are watched recursively below .git: a commit, fetch or push
// only shows up there.
var gitRefDirs = []string{
	filepath.Join("refs", "heads"),
	filepath.Join("refs", "remotes"),
}

// ignoredDirs are never descended into.
var ignoredDirs = map[string]bool{
	"node_modules": true,
}

// Watcher watches project roots.
type Watcher interface {
	// Watch blocks until ctx is done, calling onChange with the root of every
	// project whose working tree, HEAD or branches changed, once per quiet period.
	Watch(ctx context.Context, roots []string, onChange func(root string)) error
}

type fsnotifyWatcher struct {
	logger   logger.Logger
	debounce time.Duration
}

// NewWatcher creates a new Watcher.
func NewWatcher(l logger.Logger, debounce time.Duration) Watcher {
	if l == nil {
		l = logger.NewNoopLogger()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &fsnotifyWatcher{logger: l, debounce: debounce}
}

func (w *fsnotifyWatcher) Watch(ctx context.Context, roots []string, onChange func(root string)) error {
	if len(roots) == 0 {
		return ErrNoRoots
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	watched := 0
	for _, root := range roots {
		if err := w.addRoot(watcher, root); err != nil {
			w.logger.Warnf("Not watching %s: %v", root, err)
			continue
		}
		watched++
	}
	if watched == 0 {
		return ErrNoRoots
	}

	d := newDebouncer(w.debounce, onChange)
	defer d.stop()

	w.logger.Debugf("Watching %d project(s) with a %s quiet period", watched, w.debounce)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			root, relevant := w.handleEvent(watcher, roots, event)
			if relevant {
				d.add(root)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnf("Watcher error: %v", err)
		}
	}
}

// addRoot watches root, its subdirectories and its .git directory.
func (w *fsnotifyWatcher) addRoot(watcher *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", root)
	}

	if err := w.addRecursive(watcher, root); err != nil {
		return err
	}
	gitDir := filepath.Join(root, fs.GitDirName)
	if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
		if err := watcher.Add(gitDir); err != nil {
			w.logger.Warnf("Failed to watch %s: %v", gitDir, err)
		}
		// refs itself reports refs/remotes appearing on the first fetch.
		if err := watcher.Add(filepath.Join(gitDir, "refs")); err != nil {
			w.logger.Debugf("Not watching refs of %s: %v", root, err)
		}
		for _, dir := range gitRefDirs {
			w.addGitRefs(watcher, filepath.Join(gitDir, dir))
		}
	}
	return nil
}

// addGitRefs watches dir and every directory below it, ignoring a missing dir.
func (w *fsnotifyWatcher) addGitRefs(watcher *fsnotify.Watcher, dir string) {
	_ = filepath.WalkDir(dir, func(path string, entry os.DirEntry, err error) error {
		if err != nil || !entry.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			w.logger.Warnf("Failed to watch %s: %v", path, err)
		}
		return nil
	})
}

func (w *fsnotifyWatcher) addRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			// Skip what we cannot read.
			return nil
		}
		if !entry.IsDir() {
			return nil
		}
		if path != dir && (entry.Name() == fs.GitDirName || ignoredDirs[entry.Name()]) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			w.logger.Warnf("Failed to watch %s: %v", path, err)
		}
		return nil
	})
}

// handleEvent returns the project root owning event and whether it should trigger a refresh.
func (w *fsnotifyWatcher) handleEvent(watcher *fsnotify.Watcher, roots []string, event fsnotify.Event) (string, bool) {
	if event.Op == fsnotify.Chmod {
		return "", false
	}

	root, ok := owningRoot(roots, event.Name)
	if !ok {
		return "", false
	}

	rel, err := filepath.Rel(root, event.Name)
	if err != nil {
		return "", false
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if parts[0] == fs.GitDirName {
		return root, w.gitChange(watcher, event, parts[1:])
	}
	if base := parts[len(parts)-1]; ignoredDirs[base] {
		return "", false
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			_ = w.addRecursive(watcher, event.Name)
		}
	}
	w.logger.Debugf("Change in %s: %s %s", root, event.Op, rel)
	return root, true
}

// gitChange reports whether an event below .git, given as path elements
// relative to it, changes the status of the project.
func (w *fsnotifyWatcher) gitChange(watcher *fsnotify.Watcher, event fsnotify.Event, parts []string) bool {
	if len(parts) == 0 || strings.HasSuffix(parts[len(parts)-1], ".lock") {
		return false
	}
	if len(parts) == 1 {
		return gitRefFiles[parts[0]]
	}
	if !isGitRef(parts) {
		return false
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			w.addGitRefs(watcher, event.Name)
		}
	}
	w.logger.Debugf("Ref change: %s %s", event.Op, strings.Join(parts, "/"))
	return true
}

// isGitRef reports whether parts lies below one of gitRefDirs.
func isGitRef(parts []string) bool {
	for _, dir := range gitRefDirs {
		prefix := strings.Split(filepath.ToSlash(dir), "/")
		if len(parts) >= len(prefix) && slices.Equal(parts[:len(prefix)], prefix) {
			return true
		}
	}
	return false
}

// owningRoot returns the deepest root containing path.
func owningRoot(roots []string, path string) (string, bool) {
	best := ""
	for _, root := range roots {
		if !within(root, path) {
			continue
		}
		if len(root) > len(best) {
			best = root
		}
	}
	return best, best != ""
}

func within(root, path string) bool {
	rootKey, pathKey := fs.PathKey(root), fs.PathKey(path)
	if rootKey == pathKey {
		return true
	}
	return strings.HasPrefix(pathKey, strings.TrimSuffix(rootKey, string(filepath.Separator))+string(filepath.Separator))
}
