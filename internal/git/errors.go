// Package git provides git operations for gitship.
// This file provides error sentinel re-exports from internal/errors.
package git

import (
	gitshiperrors "github.com/resea/gitship/internal/errors"
)

// ErrGitOperation is re-exported from internal/errors for convenience.
// Use errors.Is(err, ErrGitOperation) to check for git operation failures.
var ErrGitOperation = gitshiperrors.ErrGitOperation

// ErrNotGitRepo is re-exported from internal/errors for convenience.
// Returned when the path is not a git repository.
var ErrNotGitRepo = gitshiperrors.ErrNotGitRepo
