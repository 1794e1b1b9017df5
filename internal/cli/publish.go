// Package cli provides the command-line interface for gitship.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/resea/gitship/internal/config"
	"github.com/resea/gitship/internal/ctxutil"
	"github.com/resea/gitship/internal/git"
	"github.com/resea/gitship/internal/publish"
)

// PublishFlags holds flags specific to the publish command.
type PublishFlags struct {
	// Files are the paths to stage, overriding publish.files from config.
	Files []string
	// Message is the commit message, overriding publish.message from config.
	Message string
	// Remote overrides repo.remote from config.
	Remote string
	// Branch overrides repo.branch from config.
	Branch string
	// SetUpstream sets the upstream tracking reference on push.
	SetUpstream bool
	// AllowEmpty creates the commit even when nothing is staged.
	AllowEmpty bool
	// DryRun shows what would run without invoking git.
	DryRun bool
}

// AddPublishCommand adds the publish command to the root command.
func AddPublishCommand(root *cobra.Command, global *GlobalFlags) {
	root.AddCommand(newPublishCmd(global))
}

func newPublishCmd(global *GlobalFlags) *cobra.Command {
	flags := &PublishFlags{}

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Stage, commit, and push the configured files",
		Long: `Stage the configured files, commit them with the configured message, and
push the commit to the configured remote and branch, in that strict order.

A failed step stops the pipeline: nothing is committed if staging fails, and
nothing is pushed if the commit fails. The success line is printed only when
all three steps actually succeeded.

Examples:
  gitship publish -m "feat: complete phase 1 automation"
  gitship publish -m "docs: update changelog" --file CHANGELOG.md --file docs/notes.md
  gitship publish -m "chore: sync" --remote origin --branch main
  gitship publish -m "chore: sync" --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPublish(cmd.Context(), global, flags, os.Stdout)
		},
	}

	cmd.Flags().StringSliceVarP(&flags.Files, "file", "f", nil, "path to stage (repeatable; default: configured publish.files)")
	cmd.Flags().StringVarP(&flags.Message, "message", "m", "", "commit message (default: configured publish.message)")
	cmd.Flags().StringVar(&flags.Remote, "remote", "", "remote to push to (default: configured repo.remote)")
	cmd.Flags().StringVar(&flags.Branch, "branch", "", "branch to push (default: configured repo.branch)")
	cmd.Flags().BoolVar(&flags.SetUpstream, "set-upstream", false, "set the upstream tracking reference on push")
	cmd.Flags().BoolVar(&flags.AllowEmpty, "allow-empty", false, "commit even when nothing is staged")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "show what would run without invoking git")

	return cmd
}

// runPublish loads configuration, builds the publisher, and runs the pipeline.
func runPublish(ctx context.Context, global *GlobalFlags, flags *PublishFlags, w io.Writer) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	logger := Logger()
	ctx = logger.WithContext(ctx)

	cfg, err := config.LoadWithOverrides(ctx, publishOverrides(global, flags))
	if err != nil {
		return err
	}

	// The runner verifies the path is a git work tree, so a missing or
	// uninitialized path fails here, before any publish step runs.
	runner, err := git.NewRunner(ctx, cfg.Repo.Path)
	if err != nil {
		return err
	}

	publisher := publish.NewPublisher(runner, publish.WithLogger(logger))

	opts := publish.Options{
		Files:       cfg.Publish.Files,
		Message:     cfg.Publish.Message,
		Remote:      cfg.Repo.Remote,
		Branch:      cfg.Repo.Branch,
		SetUpstream: cfg.Publish.SetUpstream,
		AllowEmpty:  cfg.Publish.AllowEmpty,
		DryRun:      flags.DryRun,
	}

	result, pubErr := publisher.Publish(ctx, opts)

	if global.Output == OutputJSON {
		if err := writePublishJSON(w, result, pubErr); err != nil {
			return err
		}
		return pubErr
	}

	if pubErr != nil {
		return pubErr
	}

	if result.DryRun {
		fmt.Fprintf(w, "dry run: would stage %s, commit, and push to %s/%s\n",
			describeFiles(result.Files), result.Remote, result.Branch)
		return nil
	}

	// Exactly one success line, after the push, and only on success.
	fmt.Fprintf(w, "✅ Commit and push complete: %s/%s\n", result.Remote, result.Branch)
	return nil
}

// publishOverrides translates CLI flags into a config override set.
func publishOverrides(global *GlobalFlags, flags *PublishFlags) *config.Config {
	return &config.Config{
		Repo: config.RepoConfig{
			Path:   global.Repo,
			Remote: flags.Remote,
			Branch: flags.Branch,
		},
		Publish: config.PublishConfig{
			Files:       flags.Files,
			Message:     flags.Message,
			SetUpstream: flags.SetUpstream,
			AllowEmpty:  flags.AllowEmpty,
		},
	}
}

// writePublishJSON emits the result document for --output json.
// A nil result (e.g. option validation failure) produces an error document.
func writePublishJSON(w io.Writer, result *publish.Result, pubErr error) error {
	doc := struct {
		*publish.Result
		Success bool   `json:"success"`
		Error   string `json:"error,omitempty"`
	}{
		Result:  result,
		Success: pubErr == nil && result != nil,
	}
	if pubErr != nil {
		doc.Error = pubErr.Error()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// describeFiles renders a staged file list for human output.
func describeFiles(files []string) string {
	if len(files) == 0 {
		return "all changes"
	}
	if len(files) == 1 {
		return files[0]
	}
	return fmt.Sprintf("%d files", len(files))
}
