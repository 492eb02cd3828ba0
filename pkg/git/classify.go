package git

import "strings"

// FailureKind classifies the combined output of a failed git invocation.
type FailureKind int

// Failure kinds, in decreasing detection priority.
const (
	FailureNone FailureKind = iota
	FailureDubiousOwnership
	FailureMissingUpstream
	FailureAuthRequired
	FailureOther
)

// Output markers. Dubious ownership is matched exactly as git prints it,
// the others case-insensitively.
const (
	dubiousOwnershipMarker = "detected dubious ownership"
	missingUpstreamMarker  = "no tracking information for the current branch"
)

var authMarkers = []string{
	"authentication",
	"could not read",
	"permission denied",
}

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureDubiousOwnership:
		return "dubious-ownership"
	case FailureMissingUpstream:
		return "missing-upstream"
	case FailureAuthRequired:
		return "auth-required"
	default:
		return "other"
	}
}

// Classify maps the stdout and stderr of a git invocation to a FailureKind.
// It is a pure function: only the text is inspected, never the exit code.
func Classify(stdout, stderr string) FailureKind {
	text := stdout + "\n" + stderr
	if strings.TrimSpace(text) == "" {
		return FailureNone
	}

	if strings.Contains(text, dubiousOwnershipMarker) {
		return FailureDubiousOwnership
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, missingUpstreamMarker) {
		return FailureMissingUpstream
	}
	for _, marker := range authMarkers {
		if strings.Contains(lower, marker) {
			return FailureAuthRequired
		}
	}

	return FailureOther
}
