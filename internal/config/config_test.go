package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resea/gitship/internal/constants"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, ".", cfg.Repo.Path)
	assert.Equal(t, "origin", cfg.Repo.Remote)
	assert.Equal(t, "main", cfg.Repo.Branch)
	assert.Empty(t, cfg.Publish.Files)
	assert.Empty(t, cfg.Publish.Message)
	assert.False(t, cfg.Publish.SetUpstream)
	assert.False(t, cfg.Publish.AllowEmpty)
	assert.Equal(t, constants.DefaultGitTimeout, cfg.Git.CommandTimeout)
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, Validate(DefaultConfig()))
}

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name      string
		overrides Config
		check     func(t *testing.T, cfg *Config)
	}{
		{
			name: "message and files",
			overrides: Config{
				Publish: PublishConfig{
					Files:   []string{"a.txt", "b.txt"},
					Message: "feat: override",
				},
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"a.txt", "b.txt"}, cfg.Publish.Files)
				assert.Equal(t, "feat: override", cfg.Publish.Message)
				// Untouched fields keep their defaults
				assert.Equal(t, "origin", cfg.Repo.Remote)
			},
		},
		{
			name: "remote and branch",
			overrides: Config{
				Repo: RepoConfig{Remote: "upstream", Branch: "develop"},
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "upstream", cfg.Repo.Remote)
				assert.Equal(t, "develop", cfg.Repo.Branch)
			},
		},
		{
			name: "booleans only set when true",
			overrides: Config{
				Publish: PublishConfig{SetUpstream: true, AllowEmpty: true},
			},
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Publish.SetUpstream)
				assert.True(t, cfg.Publish.AllowEmpty)
			},
		},
		{
			name: "timeout",
			overrides: Config{
				Git: GitConfig{CommandTimeout: 30 * time.Second},
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 30*time.Second, cfg.Git.CommandTimeout)
			},
		},
		{
			name:      "zero overrides leave defaults",
			overrides: Config{},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultConfig(), cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			applyOverrides(cfg, &tt.overrides)
			tt.check(t, cfg)
		})
	}
}
