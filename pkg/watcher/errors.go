package watcher

import "errors"

// ErrNoRoots is returned when there is no directory to watch.
var ErrNoRoots = errors.New("no project directory to watch")
