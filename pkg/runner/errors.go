package runner

import "errors"

// Process execution errors.
var (
	ErrEmptyCommand       = errors.New("no command to run")
	ErrExecutableNotFound = errors.New("executable not found")
	ErrSpawnFailed        = errors.New("failed to start process")
	ErrCanceled           = errors.New("process canceled")
)
