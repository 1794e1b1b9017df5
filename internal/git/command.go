// Package git provides git operations for gitship.
// This file provides shared git command execution utilities.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/resea/gitship/internal/constants"
	gitshiperrors "github.com/resea/gitship/internal/errors"
)

// CommandError carries the structured outcome of a failed git invocation.
// It wraps ErrGitOperation so callers can categorize with errors.Is() while
// still having access to the exit code and captured output.
type CommandError struct {
	// Args are the git arguments that were invoked (without the "git" prefix).
	Args []string
	// ExitCode is the process exit code, or -1 if the process did not start.
	ExitCode int
	// Stdout is the captured standard output, trimmed.
	Stdout string
	// Stderr is the captured standard error, trimmed.
	Stderr string
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("git %s failed (exit %d): %s", e.subcommand(), e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("git %s failed (exit %d)", e.subcommand(), e.ExitCode)
}

// Unwrap makes errors.Is(err, ErrGitOperation) work on wrapped CommandErrors.
func (e *CommandError) Unwrap() error {
	return gitshiperrors.ErrGitOperation
}

func (e *CommandError) subcommand() string {
	if len(e.Args) == 0 {
		return ""
	}
	return e.Args[0]
}

// RunCommand executes a git command in the specified directory and returns its
// trimmed stdout. Failures are reported as a *CommandError wrapping
// ErrGitOperation, with the exit code and captured stderr attached.
//
// A default timeout is applied when the caller's context carries no deadline,
// so a hung remote cannot block the process forever.
func RunCommand(ctx context.Context, workDir string, args ...string) (string, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, constants.DefaultGitTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...) //#nosec G204 -- args are constructed internally, not user input
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// Report cancellation as the context error, not a git failure
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", &CommandError{
			Args:     args,
			ExitCode: exitCode(err),
			Stdout:   strings.TrimSpace(stdout.String()),
			Stderr:   strings.TrimSpace(stderr.String()),
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}

// exitCode extracts the process exit code from an exec error.
// Returns -1 when the process never started (e.g. git not installed).
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
