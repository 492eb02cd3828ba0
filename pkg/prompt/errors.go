// Package prompt provides interactive prompts for psync.
package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrInvalidConfirmationInput = errors.New("invalid input: please enter 'y' or 'n'")
	ErrNoChoices                = errors.New("no projects to choose from")
	ErrNoSelection              = errors.New("no selection made")
)
