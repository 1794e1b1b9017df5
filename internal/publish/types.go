// Package publish implements the stage, commit, push pipeline.
// This file defines the option and result types for a publish run.
package publish

import "time"

// Step identifies one stage of the publish pipeline.
type Step string

// Pipeline steps, in execution order.
const (
	StepStage  Step = "stage"
	StepCommit Step = "commit"
	StepPush   Step = "push"
)

// Options configures a publish run.
type Options struct {
	// Files are the paths to stage. An empty list stages all changes.
	Files []string
	// Message is the commit message. Required.
	Message string
	// Remote is the remote to push to (e.g. "origin").
	Remote string
	// Branch is the branch to push (e.g. "main").
	Branch string
	// SetUpstream sets the upstream tracking reference on push.
	SetUpstream bool
	// AllowEmpty creates the commit even when nothing is staged.
	AllowEmpty bool
	// DryRun records the steps that would run without invoking git.
	DryRun bool
}

// StepResult records the outcome of a single pipeline step.
type StepResult struct {
	// Step is the pipeline step this result belongs to.
	Step Step `json:"step"`
	// Skipped is true for dry runs, where the step was planned but not executed.
	Skipped bool `json:"skipped,omitempty"`
	// Err is the failure, nil on success.
	Err error `json:"-"`
	// Error is the string form of Err for JSON output.
	Error string `json:"error,omitempty"`
	// Duration is how long the step took.
	Duration time.Duration `json:"duration"`
}

// Result contains the outcome of a publish run.
// Steps always reflects the attempted steps in execution order; a failed
// step is the last entry and suppresses all later steps.
type Result struct {
	// RunID uniquely identifies this publish run in logs.
	RunID string `json:"run_id"`
	// Remote is the remote that was pushed to.
	Remote string `json:"remote"`
	// Branch is the branch that was pushed.
	Branch string `json:"branch"`
	// Files are the paths that were staged.
	Files []string `json:"files,omitempty"`
	// Steps are the per-step outcomes in execution order.
	Steps []StepResult `json:"steps"`
	// Committed is true once the commit step succeeded.
	Committed bool `json:"committed"`
	// Pushed is true once the push step succeeded.
	Pushed bool `json:"pushed"`
	// DryRun is true when no git command was actually invoked.
	DryRun bool `json:"dry_run,omitempty"`
	// Duration is the total wall time of the run.
	Duration time.Duration `json:"duration"`
}

// Succeeded returns true when every attempted step completed without error.
func (r *Result) Succeeded() bool {
	for _, s := range r.Steps {
		if s.Err != nil {
			return false
		}
	}
	return len(r.Steps) > 0
}
