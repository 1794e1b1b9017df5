// Package errors provides centralized error handling for gitship.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrGitOperation indicates that a git command failed during execution.
	// The wrapping error carries the subcommand, exit code, and stderr.
	ErrGitOperation = errors.New("git operation failed")

	// ErrNotGitRepo indicates the path is not a git repository.
	ErrNotGitRepo = errors.New("not a git repository")

	// ErrStageFailed indicates that staging files for commit failed.
	ErrStageFailed = errors.New("stage failed")

	// ErrCommitFailed indicates that creating the commit failed.
	ErrCommitFailed = errors.New("commit failed")

	// ErrPushFailed indicates that pushing to the remote failed.
	ErrPushFailed = errors.New("push failed")

	// ErrNothingToCommit indicates that staging produced no staged changes,
	// so there is nothing for the commit step to record.
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalid indicates an invalid configuration value.
	ErrConfigInvalid = errors.New("invalid configuration")

	// ErrConfigExists indicates an attempt to write a config file that
	// already exists without forcing an overwrite.
	ErrConfigExists = errors.New("config file already exists")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")
)
