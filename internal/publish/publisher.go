// Package publish implements the stage, commit, push pipeline.
// This file implements the Publisher that drives the pipeline.
package publish

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/resea/gitship/internal/ctxutil"
	gitshiperrors "github.com/resea/gitship/internal/errors"
	"github.com/resea/gitship/internal/git"
)

// Service defines the publish operation.
type Service interface {
	// Publish stages the configured files, commits them, and pushes the
	// commit, in that strict order. The returned Result records every
	// attempted step even when an error is returned.
	Publish(ctx context.Context, opts Options) (*Result, error)
}

// Compile-time interface check.
var _ Service = (*Publisher)(nil)

// Publisher implements Service on top of a git.Runner.
// The runner is injected so tests can substitute a mock and so the working
// directory is resolved once, at runner construction, instead of via a
// process-wide chdir.
type Publisher struct {
	runner git.Runner
	logger zerolog.Logger
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithLogger sets the logger for the publisher.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// NewPublisher creates a Publisher backed by the given runner.
func NewPublisher(runner git.Runner, opts ...Option) *Publisher {
	p := &Publisher{
		runner: runner,
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Publish runs the pipeline: stage, commit, push.
// A failed step returns a typed error (ErrStageFailed, ErrCommitFailed,
// ErrPushFailed, or ErrNothingToCommit) and prevents all later steps.
func (p *Publisher) Publish(ctx context.Context, opts Options) (*Result, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:  uuid.New().String(),
		Remote: opts.Remote,
		Branch: opts.Branch,
		Files:  opts.Files,
		DryRun: opts.DryRun,
	}

	logger := p.logger.With().Str("run_id", result.RunID).Logger()
	logger.Info().
		Strs("files", opts.Files).
		Str("remote", opts.Remote).
		Str("branch", opts.Branch).
		Bool("dry_run", opts.DryRun).
		Msg("starting publish")

	start := time.Now()
	defer func() {
		result.Duration = time.Since(start)
	}()

	if opts.DryRun {
		for _, step := range []Step{StepStage, StepCommit, StepPush} {
			result.Steps = append(result.Steps, StepResult{Step: step, Skipped: true})
		}
		logger.Info().Msg("dry run, no git commands invoked")
		return result, nil
	}

	// Stage
	if err := p.runStep(ctx, result, StepStage, logger, func() error {
		return p.runner.Add(ctx, opts.Files)
	}); err != nil {
		return result, fmt.Errorf("%w: %w", gitshiperrors.ErrStageFailed, err)
	}

	// The original script let git commit exit non-zero on an empty index and
	// ignored it; here the condition is surfaced before commit is attempted.
	if !opts.AllowEmpty {
		status, err := p.runner.Status(ctx)
		if err != nil {
			return result, fmt.Errorf("%w: %w", gitshiperrors.ErrStageFailed, err)
		}
		if !status.HasStagedChanges() {
			logger.Warn().Msg("no staged changes after stage step")
			return result, fmt.Errorf("%w: staged paths have no changes", gitshiperrors.ErrNothingToCommit)
		}
	}

	// Commit
	if err := p.runStep(ctx, result, StepCommit, logger, func() error {
		return p.runner.Commit(ctx, opts.Message, opts.AllowEmpty)
	}); err != nil {
		return result, fmt.Errorf("%w: %w", gitshiperrors.ErrCommitFailed, err)
	}
	result.Committed = true

	// Push
	if err := p.runStep(ctx, result, StepPush, logger, func() error {
		return p.runner.Push(ctx, opts.Remote, opts.Branch, opts.SetUpstream)
	}); err != nil {
		return result, fmt.Errorf("%w: %w", gitshiperrors.ErrPushFailed, err)
	}
	result.Pushed = true

	logger.Info().
		Dur("duration", time.Since(start)).
		Msg("publish complete")

	return result, nil
}

// runStep executes a single pipeline step and records its outcome.
func (p *Publisher) runStep(ctx context.Context, result *Result, step Step, logger zerolog.Logger, fn func() error) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	logger.Debug().Str("step", string(step)).Msg("running step")

	start := time.Now()
	err := fn()
	sr := StepResult{
		Step:     step,
		Err:      err,
		Duration: time.Since(start),
	}
	if err != nil {
		sr.Error = err.Error()
		logger.Error().Err(err).Str("step", string(step)).Msg("step failed")
	}
	result.Steps = append(result.Steps, sr)

	return err
}

// validateOptions rejects option sets the pipeline cannot act on.
func validateOptions(opts Options) error {
	if opts.Message == "" {
		return fmt.Errorf("commit message is required: %w", gitshiperrors.ErrEmptyValue)
	}
	if opts.Remote == "" {
		return fmt.Errorf("remote is required: %w", gitshiperrors.ErrEmptyValue)
	}
	if opts.Branch == "" {
		return fmt.Errorf("branch is required: %w", gitshiperrors.ErrEmptyValue)
	}
	return nil
}
