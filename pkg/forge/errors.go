package forge

import "errors"

// Forge-specific errors.
var (
	ErrInvalidReference   = errors.New("invalid repository reference, expected owner/repo")
	ErrRepositoryNotFound = errors.New("repository not found")
	ErrRateLimited        = errors.New("rate limited by forge API")
	ErrUnauthorized       = errors.New("unauthorized access to forge API")
	ErrInvalidProtocol    = errors.New("unsupported clone protocol")
)
