package registry

import "errors"

// Error definitions for registry package.
var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrProjectNameExists = errors.New("a project with this name already exists")
	ErrProjectPathExists = errors.New("a project is already registered at this path")
	ErrInvalidProject    = errors.New("invalid project")

	ErrRegistryPathEmpty = errors.New("registry file path is not configured")
	ErrRegistryParse     = errors.New("failed to parse registry file")
)
