package config

import (
	"github.com/resea/gitship/internal/constants"
)

// DefaultConfig returns a new Config with sensible default values.
// These defaults are used as the base layer that can be overridden by
// config files, environment variables, and CLI flags.
func DefaultConfig() *Config {
	return &Config{
		Repo: RepoConfig{
			// Path: "." means publish from the current directory.
			// Teams that run gitship from elsewhere set an absolute path.
			Path: ".",

			// Remote: "origin" is the standard git remote name.
			Remote: constants.DefaultRemote,

			// Branch: "main" is the modern git default.
			// Projects using "master" should override in their config.
			Branch: constants.DefaultBranch,
		},
		Publish: PublishConfig{
			// Files: empty stages all changes; most projects pin an
			// explicit list in .gitship/config.yaml.
			Files: nil,

			// Message: intentionally empty. Publishing without a message
			// is a validation error at publish time, not at load time.
			Message: "",

			SetUpstream: false,
			AllowEmpty:  false,
		},
		Git: GitConfig{
			// CommandTimeout: pushes over slow links can take a while.
			CommandTimeout: constants.DefaultGitTimeout,
		},
	}
}
