//go:build !windows

package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"
)

// FileLock takes an flock on filename+".lock", waiting up to LockTimeout.
// The lock file is left in place so concurrent lockers always agree on the inode.
func (f *realFS) FileLock(filename string) (func(), error) {
	lockPath := filename + ".lock"
	if err := os.MkdirAll(filepath.Dir(lockPath), 0755); err != nil {
		return nil, err
	}

	lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, err
	}

	deadline := time.Now().Add(LockTimeout)
	for {
		err = syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
		if err == nil {
			break
		}
		if !errors.Is(err, syscall.EWOULDBLOCK) || time.Now().After(deadline) {
			_ = lockFile.Close()
			return nil, fmt.Errorf("%w: %s: %w", ErrFileLock, lockPath, err)
		}
		time.Sleep(lockRetryInterval)
	}

	return func() {
		_ = syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)
		_ = lockFile.Close()
	}, nil
}
