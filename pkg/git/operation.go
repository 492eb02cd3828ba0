package git

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Operation names.
const (
	OpClone    = "clone"
	OpPull     = "pull"
	OpPush     = "push"
	OpFetch    = "fetch"
	OpCheckout = "checkout"
	OpSwitch   = "switch"
	OpStatus   = "status"
	OpRevParse = "rev-parse"
	OpRemote   = "remote"
	OpBranch   = "branch"
	OpLog      = "log"
)

// DefaultRemote is the remote every verb talks to.
const DefaultRemote = "origin"

// Operation is a single git invocation: Args excludes the git executable
// and starts with the subcommand.
type Operation struct {
	Dir  string
	Name string
	Args []string
}

// String renders the operation as a shell-like command line.
func (o Operation) String() string {
	return "git " + strings.Join(o.Args, " ")
}

// IsMutating reports whether the operation rewrites the working tree and
// therefore runs behind the stash guard.
func (o Operation) IsMutating() bool {
	switch o.Name {
	case OpPull, OpCheckout, OpSwitch:
		return true
	}
	return false
}

// IsClone reports whether Dir is the parent of the target rather than a repository.
func (o Operation) IsClone() bool {
	return o.Name == OpClone
}

// CloneTarget returns the directory a clone creates, Dir joined with the last argument.
func (o Operation) CloneTarget() string {
	if !o.IsClone() || len(o.Args) == 0 {
		return ""
	}
	return filepath.Join(o.Dir, o.Args[len(o.Args)-1])
}

// CloneOperation builds `git clone [--branch <branch>] <url> <basename>` run from the parent of localPath.
func CloneOperation(remoteURL, localPath, branch string) Operation {
	clean := filepath.Clean(localPath)
	args := []string{OpClone}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	args = append(args, remoteURL, filepath.Base(clean))
	return Operation{Dir: filepath.Dir(clean), Name: OpClone, Args: args}
}

// PullOperation builds `git pull origin <branch>`, or a plain pull when branch is empty.
func PullOperation(repoPath, branch string) Operation {
	args := []string{OpPull}
	if branch != "" {
		args = append(args, DefaultRemote, branch)
	}
	return Operation{Dir: repoPath, Name: OpPull, Args: args}
}

// PushOperation builds `git push origin HEAD`.
func PushOperation(repoPath string) Operation {
	return Operation{Dir: repoPath, Name: OpPush, Args: []string{OpPush, DefaultRemote, "HEAD"}}
}

// FetchOperation builds `git fetch origin --prune`.
func FetchOperation(repoPath string) Operation {
	return Operation{Dir: repoPath, Name: OpFetch, Args: []string{OpFetch, DefaultRemote, "--prune"}}
}

// CheckoutOperation builds `git checkout <branch>`.
func CheckoutOperation(repoPath, branch string) Operation {
	return Operation{Dir: repoPath, Name: OpCheckout, Args: []string{OpCheckout, branch}}
}

// CreateBranchOperation builds `git checkout -b <branch>`.
func CreateBranchOperation(repoPath, branch string) Operation {
	return Operation{Dir: repoPath, Name: OpCheckout, Args: []string{OpCheckout, "-b", branch}}
}

// HistoryOperation builds `git log --pretty=format:%h %ad %s --date=short`,
// limited to the last limit commits when limit is positive.
func HistoryOperation(repoPath string, limit int) Operation {
	args := []string{OpLog, "--pretty=format:" + historyFormat, "--date=short"}
	if limit > 0 {
		args = append(args, "-n", strconv.Itoa(limit))
	}
	return Operation{Dir: repoPath, Name: OpLog, Args: args}
}

// StatusOperation builds `git status --porcelain=v2 --branch`.
func StatusOperation(repoPath string) Operation {
	return Operation{Dir: repoPath, Name: OpStatus, Args: []string{OpStatus, "--porcelain=v2", "--branch"}}
}

// CurrentBranchOperation builds `git rev-parse --abbrev-ref HEAD`.
func CurrentBranchOperation(repoPath string) Operation {
	return Operation{Dir: repoPath, Name: OpRevParse, Args: []string{OpRevParse, "--abbrev-ref", "HEAD"}}
}

// RemoteURLOperation builds `git remote get-url origin`.
func RemoteURLOperation(repoPath string) Operation {
	return Operation{Dir: repoPath, Name: OpRemote, Args: []string{OpRemote, "get-url", DefaultRemote}}
}

// SetUpstreamOperation builds `git branch --set-upstream-to origin/<branch> <branch>`.
func SetUpstreamOperation(repoPath, branch string) Operation {
	return Operation{
		Dir:  repoPath,
		Name: OpBranch,
		Args: []string{OpBranch, "--set-upstream-to", DefaultRemote + "/" + branch, branch},
	}
}
