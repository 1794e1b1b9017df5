//go:build integration

package publish

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resea/gitship/internal/git"
)

// gitIn runs a git command in dir, failing the test on error.
func gitIn(t *testing.T, ctx context.Context, dir string, args ...string) {
	t.Helper()
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}

// TestIntegration_Publish_RealGit runs the full pipeline against a real
// repository with a local bare remote.
func TestIntegration_Publish_RealGit(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	ctx := context.Background()

	tmpDir := t.TempDir()
	repoDir := filepath.Join(tmpDir, "repo")
	remoteDir := filepath.Join(tmpDir, "remote.git")

	require.NoError(t, os.MkdirAll(remoteDir, 0o755))
	gitIn(t, ctx, remoteDir, "init", "--bare")

	require.NoError(t, os.MkdirAll(repoDir, 0o755))
	gitIn(t, ctx, repoDir, "init", "-b", "main")
	gitIn(t, ctx, repoDir, "config", "user.email", "test@gitship.local")
	gitIn(t, ctx, repoDir, "config", "user.name", "gitship test")
	gitIn(t, ctx, repoDir, "remote", "add", "origin", remoteDir)

	// The three files the publish stages
	files := []string{"src/server.ts", "src/routes/search.ts", "PHASE1_COMPLETE.md"}
	for _, f := range files {
		path := filepath.Join(repoDir, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("content of "+f+"\n"), 0o644))
	}

	runner, err := git.NewRunner(ctx, repoDir)
	require.NoError(t, err)

	publisher := NewPublisher(runner)

	result, err := publisher.Publish(ctx, Options{
		Files:   files,
		Message: "feat: Complete Phase 1 automation",
		Remote:  "origin",
		Branch:  "main",
	})
	require.NoError(t, err)
	assert.True(t, result.Committed)
	assert.True(t, result.Pushed)
	assert.True(t, result.Succeeded())

	// The commit landed on the bare remote
	cmd := exec.CommandContext(ctx, "git", "log", "-1", "--pretty=format:%s", "main")
	cmd.Dir = remoteDir
	out, err := cmd.Output()
	require.NoError(t, err)
	assert.Equal(t, "feat: Complete Phase 1 automation", strings.TrimSpace(string(out)))

	// A second publish with no changes reports nothing to commit
	_, err = publisher.Publish(ctx, Options{
		Files:   files,
		Message: "feat: Complete Phase 1 automation",
		Remote:  "origin",
		Branch:  "main",
	})
	require.Error(t, err)
}
