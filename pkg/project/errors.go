package project

import "errors"

// Error definitions for project package.
var (
	ErrDependenciesMissing = errors.New("dependencies are required")
	ErrEmptyReference      = errors.New("project name or path is required")
	ErrRemoteURLRequired   = errors.New("remote URL is required")
	ErrNameRequired        = errors.New("project name cannot be derived from the remote URL, set one explicitly")
	ErrBranchRequired      = errors.New("branch name is required")
	ErrProjectMissing      = errors.New("project directory is missing or is not a git repository")
	ErrBaseFolderMissing   = errors.New("base folder does not exist")
	ErrSkipped             = errors.New("skipped after the batch was halted")
	ErrUncommittedChanges  = errors.New("cannot push: there are uncommitted changes or untracked files")
)
