//go:build windows

package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileLock creates filename+".lock" exclusively, waiting up to LockTimeout.
// flock is not available on Windows, the lock file itself is the lock.
func (f *realFS) FileLock(filename string) (func(), error) {
	lockPath := filename + ".lock"
	if err := os.MkdirAll(filepath.Dir(lockPath), 0755); err != nil {
		return nil, err
	}

	deadline := time.Now().Add(LockTimeout)
	for {
		lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0600)
		if err == nil {
			return func() {
				_ = lockFile.Close()
				_ = os.Remove(lockPath)
			}, nil
		}
		if !os.IsExist(err) || time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s: %w", ErrFileLock, lockPath, err)
		}
		time.Sleep(lockRetryInterval)
	}
}
