//go:build unit

package watcher

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	rec := &callRecorder{}
	d := newDebouncer(30*time.Millisecond, rec.record)
	defer d.stop()

	for range 10 {
		d.add("/work/app")
		time.Sleep(2 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, []string{"/work/app"}, rec.snapshot())
}

func TestDebouncer_KeysAreIndependent(t *testing.T) {
	rec := &callRecorder{}
	d := newDebouncer(10*time.Millisecond, rec.record)
	defer d.stop()

	d.add("/work/app")
	d.add("/work/lib")

	assert.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, time.Second, 5*time.Millisecond)
	assert.ElementsMatch(t, []string{"/work/app", "/work/lib"}, rec.snapshot())
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	rec := &callRecorder{}
	d := newDebouncer(50*time.Millisecond, rec.record)

	d.add("/work/app")
	d.stop()
	d.add("/work/lib")

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestOwningRoot(t *testing.T) {
	app := filepath.FromSlash("/work/app")
	nested := filepath.FromSlash("/work/app/vendor/lib")
	roots := []string{app, nested, filepath.FromSlash("/work/application")}

	root, ok := owningRoot(roots, filepath.FromSlash("/work/app/main.go"))
	assert.True(t, ok)
	assert.Equal(t, app, root)

	root, ok = owningRoot(roots, filepath.FromSlash("/work/app/vendor/lib/x.go"))
	assert.True(t, ok)
	assert.Equal(t, nested, root)

	root, ok = owningRoot(roots, filepath.FromSlash("/work/application/README.md"))
	assert.True(t, ok)
	assert.Equal(t, filepath.FromSlash("/work/application"), root)

	_, ok = owningRoot(roots, filepath.FromSlash("/elsewhere/file"))
	assert.False(t, ok)
}

func TestIsGitRef(t *testing.T) {
	assert.True(t, isGitRef([]string{"refs", "heads", "main"}))
	assert.True(t, isGitRef([]string{"refs", "heads", "feature", "login"}))
	assert.True(t, isGitRef([]string{"refs", "remotes", "origin", "main"}))
	assert.True(t, isGitRef([]string{"refs", "remotes"}))
	assert.False(t, isGitRef([]string{"refs", "tags", "v1"}))
	assert.False(t, isGitRef([]string{"refs"}))
	assert.False(t, isGitRef([]string{"objects", "ab"}))
}
