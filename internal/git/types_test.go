package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusHelpers(t *testing.T) {
	tests := []struct {
		name         string
		status       Status
		clean        bool
		hasStaged    bool
		hasUnstaged  bool
		hasUntracked bool
	}{
		{
			name:   "clean",
			status: Status{Branch: "main"},
			clean:  true,
		},
		{
			name: "staged only",
			status: Status{
				Staged: []FileChange{{Path: "a.go", Status: ChangeModified}},
			},
			hasStaged: true,
		},
		{
			name: "unstaged only",
			status: Status{
				Unstaged: []FileChange{{Path: "a.go", Status: ChangeModified}},
			},
			hasUnstaged: true,
		},
		{
			name: "untracked only",
			status: Status{
				Untracked: []string{"new.go"},
			},
			hasUntracked: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.clean, tt.status.IsClean())
			assert.Equal(t, tt.hasStaged, tt.status.HasStagedChanges())
			assert.Equal(t, tt.hasUnstaged, tt.status.HasUnstagedChanges())
			assert.Equal(t, tt.hasUntracked, tt.status.HasUntrackedFiles())
		})
	}
}
