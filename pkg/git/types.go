package git

// CloneParams contains parameters for Clone.
type CloneParams struct {
	RemoteURL  string
	TargetPath string
	Branch     string
}

// PullParams contains parameters for Pull.
type PullParams struct {
	RepoPath string
	// Branch is the branch the project is pinned to. Empty pulls the current branch.
	Branch string
}
