// Package git runs git subcommands through a bounded retry engine that
// recognizes well known failures and remediates them before giving up.
package git

import (
	"errors"
	"fmt"
	"strings"
)

// Git-specific error types.
var (
	ErrExecutableMissing  = errors.New("git executable not found")
	ErrDirectoryInvalid   = errors.New("directory is not a usable git working tree")
	ErrOwnershipRejected  = errors.New("could not register directory as safe.directory")
	ErrGitFailure         = errors.New("git command failed")
	ErrStashRestoreFailed = errors.New("restoring auto-stashed changes failed, manual resolution required")
	ErrEmptyOperation     = errors.New("operation has no arguments")

	// Classified failures, matched in addition to the kind sentinel.
	ErrDubiousOwnership = errors.New("repository has dubious ownership")
	ErrAuthRequired     = errors.New("remote requires authentication")
	ErrMissingUpstream  = errors.New("current branch has no upstream")
)

// ErrorKind is the terminal category of a failed operation.
type ErrorKind int

// Terminal error kinds.
const (
	KindGitFailure ErrorKind = iota
	KindExecutableMissing
	KindDirectoryInvalid
	KindOwnershipRejected
)

func (k ErrorKind) String() string {
	switch k {
	case KindExecutableMissing:
		return "executable missing"
	case KindDirectoryInvalid:
		return "directory invalid"
	case KindOwnershipRejected:
		return "ownership rejected"
	default:
		return "git failure"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindExecutableMissing:
		return ErrExecutableMissing
	case KindDirectoryInvalid:
		return ErrDirectoryInvalid
	case KindOwnershipRejected:
		return ErrOwnershipRejected
	default:
		return ErrGitFailure
	}
}

// OperationError is the definitive error of an operation after the engine
// ran out of remediations or attempts.
type OperationError struct {
	Kind      ErrorKind
	Operation string
	Dir       string
	// Failure is the classification of the last attempt's output.
	Failure  FailureKind
	Output   string
	Attempts int
	// Remediated is true when a remediation ran before the final attempt.
	Remediated bool
	// StashRestoreErr is set when auto-stashed changes could not be reapplied.
	StashRestoreErr error
	Err             error
}

func (e *OperationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "git %s failed", e.Operation)
	if e.Dir != "" {
		fmt.Fprintf(&b, " in %s", e.Dir)
	}
	fmt.Fprintf(&b, ": %s", e.Kind)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if e.Remediated {
		b.WriteString(" (remediation was attempted and the operation still failed)")
	}
	if e.StashRestoreErr != nil {
		fmt.Fprintf(&b, " [%v]", e.StashRestoreErr)
	}
	if e.Output != "" {
		fmt.Fprintf(&b, "\n%s", e.Output)
	}
	return b.String()
}

// Unwrap exposes the kind sentinel, the classified failure and the cause to errors.Is.
func (e *OperationError) Unwrap() []error {
	errs := []error{e.Kind.sentinel()}
	switch e.Failure {
	case FailureDubiousOwnership:
		errs = append(errs, ErrDubiousOwnership)
	case FailureAuthRequired:
		errs = append(errs, ErrAuthRequired)
	case FailureMissingUpstream:
		errs = append(errs, ErrMissingUpstream)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.StashRestoreErr != nil {
		errs = append(errs, e.StashRestoreErr)
	}
	return errs
}

// StashRestoreError reports auto-stashed changes that are still in the stash.
// It never replaces the result of the guarded operation.
type StashRestoreError struct {
	Dir    string
	Output string
	Err    error
}

func (e *StashRestoreError) Error() string {
	msg := fmt.Sprintf("git stash pop failed in %s", e.Dir)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Output != "" {
		msg += ": " + e.Output
	}
	return msg
}

// Unwrap lets errors.Is match ErrStashRestoreFailed.
func (e *StashRestoreError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrStashRestoreFailed, e.Err}
	}
	return []error{ErrStashRestoreFailed}
}
