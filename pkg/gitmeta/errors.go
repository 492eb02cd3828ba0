package gitmeta

import "errors"

// ErrNotARepository is returned when a path cannot be opened as a repository.
var ErrNotARepository = errors.New("not a git repository")
