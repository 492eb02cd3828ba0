package fs

import (
	"errors"
	"time"
)

// Error definitions for fs package.
var (
	// ErrFileLock is returned when a lock could not be acquired in time.
	ErrFileLock = errors.New("failed to acquire file lock")

	// ErrPathResolution is returned when a path cannot be made absolute.
	ErrPathResolution = errors.New("path resolution failed")
)

// LockTimeout bounds how long FileLock waits for another holder.
var LockTimeout = 10 * time.Second

const lockRetryInterval = 25 * time.Millisecond
