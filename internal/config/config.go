// Package config provides configuration management for gitship with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (passed via LoadWithOverrides)
//  2. Environment variables (GITSHIP_* prefix)
//  3. Project config (.gitship/config.yaml)
//  4. Global config (~/.gitship/config.yaml)
//  5. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

import "time"

// Config is the root configuration structure for gitship.
type Config struct {
	// Repo contains settings identifying the target repository.
	Repo RepoConfig `yaml:"repo" mapstructure:"repo"`

	// Publish contains settings for the publish pipeline.
	Publish PublishConfig `yaml:"publish" mapstructure:"publish"`

	// Git contains settings for git command execution.
	Git GitConfig `yaml:"git" mapstructure:"git"`
}

// RepoConfig identifies the repository and remote a publish targets.
type RepoConfig struct {
	// Path is the working directory of the target repository.
	// Default: "." (the current directory)
	Path string `yaml:"path" mapstructure:"path"`

	// Remote is the git remote to push to.
	// Default: "origin"
	Remote string `yaml:"remote" mapstructure:"remote"`

	// Branch is the branch to push.
	// Default: "main"
	Branch string `yaml:"branch" mapstructure:"branch"`
}

// PublishConfig contains settings for the publish pipeline.
type PublishConfig struct {
	// Files are the paths to stage. An empty list stages all changes.
	Files []string `yaml:"files" mapstructure:"files"`

	// Message is the commit message. It has no default; it must be set
	// in config or via the --message flag at publish time.
	Message string `yaml:"message" mapstructure:"message"`

	// SetUpstream sets the upstream tracking reference on push.
	// Default: false
	SetUpstream bool `yaml:"set_upstream" mapstructure:"set_upstream"`

	// AllowEmpty creates the commit even when nothing is staged.
	// Default: false
	AllowEmpty bool `yaml:"allow_empty" mapstructure:"allow_empty"`
}

// GitConfig contains settings for git command execution.
type GitConfig struct {
	// CommandTimeout is the maximum duration for a single git invocation.
	// Default: 5 minutes
	CommandTimeout time.Duration `yaml:"command_timeout" mapstructure:"command_timeout"`
}
