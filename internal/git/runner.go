// Package git provides git operations for gitship.
// This file defines the Runner interface for git CLI operations.
package git

import "context"

// Runner defines the git operations the publisher needs.
// All operations run in the runner's working directory and use context for
// cancellation.
type Runner interface {
	// Status returns the current working tree status including staged,
	// unstaged, and untracked files.
	Status(ctx context.Context) (*Status, error)

	// Add stages files for commit. If paths is empty, stages all changes.
	Add(ctx context.Context, paths []string) error

	// Commit creates a commit with the given message.
	// If allowEmpty is true, the commit is created even with nothing staged.
	Commit(ctx context.Context, message string, allowEmpty bool) error

	// Push pushes commits to the remote repository.
	// If setUpstream is true, sets the upstream tracking reference.
	Push(ctx context.Context, remote, branch string, setUpstream bool) error

	// CurrentBranch returns the name of the currently checked out branch.
	// Returns an error if in detached HEAD state.
	CurrentBranch(ctx context.Context) (string, error)

	// HeadSummary returns a one-line summary of the HEAD commit
	// (abbreviated hash and subject). Returns an empty string in a
	// repository with no commits.
	HeadSummary(ctx context.Context) (string, error)
}
