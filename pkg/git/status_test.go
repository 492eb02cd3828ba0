//go:build unit

package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	output := `# branch.oid 2c6a0b1e4f
# branch.head main
# branch.upstream origin/main
# branch.ab +2 -1
1 .M N... 100644 100644 100644 3f2a 3f2a main.go
2 R. N... 100644 100644 100644 aa11 aa11 R100 new.go	old.go
u UU N... 100644 100644 100644 100644 a b c conflict.go
? notes.txt
! build/
`

	status := ParseStatus(output)
	assert.Equal(t, RepoStatus{
		Branch:   "main",
		Upstream: "origin/main",
		Ahead:    2,
		Behind:   1,
		Changes:  4,
	}, status)
	assert.True(t, status.HasUpstream())
}

func TestParseStatus_DetachedWithoutUpstream(t *testing.T) {
	status := ParseStatus("# branch.oid 2c6a0b1e4f\r\n# branch.head (detached)\r\n")

	assert.Equal(t, DetachedBranch, status.Branch)
	assert.False(t, status.HasUpstream())
	assert.Equal(t, StateClean, status.State())
}

func TestRepoStatus_State(t *testing.T) {
	tests := []struct {
		name   string
		status RepoStatus
		want   State
	}{
		{name: "clean", status: RepoStatus{Upstream: "origin/main"}, want: StateClean},
		{name: "modified wins", status: RepoStatus{Changes: 1, Ahead: 1, Behind: 1}, want: StateModified},
		{name: "diverged", status: RepoStatus{Ahead: 1, Behind: 2}, want: StateDiverged},
		{name: "needs pull", status: RepoStatus{Behind: 3}, want: StateNeedsPull},
		{name: "local ahead", status: RepoStatus{Ahead: 1}, want: StateLocalAhead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.State())
		})
	}
}
