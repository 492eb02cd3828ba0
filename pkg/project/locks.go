package project

import (
	"sync"

	"github.com/lerenn/project-sync/pkg/fs"
)

// pathLocks hands out one mutex per normalized path so that no two
// git operations run in the same working tree at once.
type pathLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newPathLocks() *pathLocks {
	return &pathLocks{locks: make(map[string]*sync.Mutex)}
}

// lock blocks until path is free and returns the matching unlock function.
func (l *pathLocks) lock(path string) func() {
	key := fs.PathKey(path)

	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func samePath(a, b string) bool {
	return fs.SamePath(a, b)
}
