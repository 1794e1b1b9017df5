package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTempConfig writes YAML content to a config file under a temp dir.
func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromPathsDefaultsOnly(t *testing.T) {
	cfg, err := LoadFromPaths(context.Background(), "", "")
	require.NoError(t, err)

	assert.Equal(t, "origin", cfg.Repo.Remote)
	assert.Equal(t, "main", cfg.Repo.Branch)
	assert.Equal(t, 5*time.Minute, cfg.Git.CommandTimeout)
}

func TestLoadFromPathsProjectConfig(t *testing.T) {
	projectPath := writeTempConfig(t, `
repo:
  path: /srv/resea-backend
  branch: main
publish:
  files:
    - src/routes/search.ts
    - src/server.ts
    - PHASE1_COMPLETE.md
  message: "feat: Complete Phase 1 automation"
`)

	cfg, err := LoadFromPaths(context.Background(), projectPath, "")
	require.NoError(t, err)

	assert.Equal(t, "/srv/resea-backend", cfg.Repo.Path)
	assert.Equal(t, []string{"src/routes/search.ts", "src/server.ts", "PHASE1_COMPLETE.md"}, cfg.Publish.Files)
	assert.Equal(t, "feat: Complete Phase 1 automation", cfg.Publish.Message)
	// Values not in the file keep their defaults
	assert.Equal(t, "origin", cfg.Repo.Remote)
}

func TestLoadFromPathsProjectOverridesGlobal(t *testing.T) {
	globalPath := writeTempConfig(t, `
repo:
  remote: upstream
  branch: master
`)
	projectPath := writeTempConfig(t, `
repo:
  branch: main
`)

	cfg, err := LoadFromPaths(context.Background(), projectPath, globalPath)
	require.NoError(t, err)

	// Project wins where both set a key; global fills the rest
	assert.Equal(t, "main", cfg.Repo.Branch)
	assert.Equal(t, "upstream", cfg.Repo.Remote)
}

func TestLoadFromPathsDurationString(t *testing.T) {
	projectPath := writeTempConfig(t, `
git:
  command_timeout: 90s
`)

	cfg, err := LoadFromPaths(context.Background(), projectPath, "")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.Git.CommandTimeout)
}

func TestLoadFromPathsInvalidConfig(t *testing.T) {
	projectPath := writeTempConfig(t, `
repo:
  remote: ""
`)

	_, err := LoadFromPaths(context.Background(), projectPath, "")
	require.Error(t, err)
}

func TestLoadFromPathsMissingFilesAreIgnored(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist.yaml")

	cfg, err := LoadFromPaths(context.Background(), missing, missing)
	require.NoError(t, err)
	assert.Equal(t, "origin", cfg.Repo.Remote)
}
