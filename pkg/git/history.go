package git

import (
	"context"
	"fmt"
	"strings"
)

const historyFormat = "%h %ad %s"

// Commit is one line of the commit history.
type Commit struct {
	Hash    string
	Date    string
	Subject string
}

// String renders the commit the way `git log --pretty=format:%h %ad %s` does.
func (c Commit) String() string {
	return strings.TrimSpace(c.Hash + " " + c.Date + " " + c.Subject)
}

// History reads the commit history of the checked out branch.
func (g *realGit) History(ctx context.Context, repoPath string, limit int) ([]Commit, error) {
	res, err := g.engine.Run(ctx, HistoryOperation(repoPath, limit))
	if err != nil {
		return nil, err
	}
	return ParseHistory(res.Output), nil
}

// ParseHistory parses `git log --pretty=format:%h %ad %s --date=short` output.
func ParseHistory(output string) []Commit {
	var commits []Commit
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 3)
		c := Commit{Hash: fields[0]}
		if len(fields) > 1 {
			c.Date = fields[1]
		}
		if len(fields) > 2 {
			c.Subject = fields[2]
		}
		commits = append(commits, c)
	}
	return commits
}

// FormatHistory renders commits one per line, as git prints them.
func FormatHistory(commits []Commit) string {
	var b strings.Builder
	for _, c := range commits {
		fmt.Fprintln(&b, c.String())
	}
	return b.String()
}
