// Package main provides the entry point for the gitship CLI.
package main

import (
	"context"
	stderrors "errors"
	"os"

	"github.com/resea/gitship/internal/cli"
	"github.com/resea/gitship/internal/errors"
)

// Build information set via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=$(git rev-parse HEAD) -X main.date=$(date -u +%Y-%m-%d)"
var (
	version string //nolint:gochecknoglobals // Set via ldflags
	commit  string //nolint:gochecknoglobals // Set via ldflags
	date    string //nolint:gochecknoglobals // Set via ldflags
)

func main() {
	ctx := context.Background()

	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	// Cobra prints the error itself; here we only pick the exit code.
	if err := cli.Execute(ctx, info); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit code. Invalid input gets a
// distinct code so callers can tell misuse from pipeline failures.
func exitCode(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrEmptyValue),
		stderrors.Is(err, errors.ErrInvalidOutputFormat),
		stderrors.Is(err, errors.ErrConfigInvalid),
		stderrors.Is(err, errors.ErrConfigNil):
		return cli.ExitInvalidInput
	default:
		return cli.ExitError
	}
}
