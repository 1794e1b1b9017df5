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
)

// statusReport is the machine-readable form of the status output.
type statusReport struct {
	Branch       string   `json:"branch"`
	Head         string   `json:"head,omitempty"`
	Ahead        int      `json:"ahead"`
	Behind       int      `json:"behind"`
	Staged       int      `json:"staged"`
	Unstaged     int      `json:"unstaged"`
	Untracked    int      `json:"untracked"`
	Files        []string `json:"configured_files,omitempty"`
	PendingFiles []string `json:"pending_files,omitempty"`
	Clean        bool     `json:"clean"`
}

// AddStatusCommand adds the status command to the root command.
func AddStatusCommand(root *cobra.Command, global *GlobalFlags) {
	root.AddCommand(newStatusCmd(global))
}

func newStatusCmd(global *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show what a publish would pick up",
		Long: `Show the current branch, the HEAD commit, and the pending changes a
publish would stage, including which of the configured files have changes.

Examples:
  gitship status
  gitship status --output json
  gitship status -C /path/to/repo`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd.Context(), global, os.Stdout)
		},
	}
}

// runStatus gathers the repository state a publish would act on.
func runStatus(ctx context.Context, global *GlobalFlags, w io.Writer) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	logger := Logger()
	ctx = logger.WithContext(ctx)

	cfg, err := config.LoadWithOverrides(ctx, &config.Config{
		Repo: config.RepoConfig{Path: global.Repo},
	})
	if err != nil {
		return err
	}

	runner, err := git.NewRunner(ctx, cfg.Repo.Path)
	if err != nil {
		return err
	}

	status, err := runner.Status(ctx)
	if err != nil {
		return err
	}

	head, err := runner.HeadSummary(ctx)
	if err != nil {
		return err
	}

	report := buildStatusReport(status, head, cfg.Publish.Files)

	if global.Output == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	writeStatusText(w, report)
	return nil
}

// buildStatusReport assembles the report, marking which configured files
// have pending (unstaged or untracked) changes.
func buildStatusReport(status *git.Status, head string, configured []string) *statusReport {
	report := &statusReport{
		Branch:    status.Branch,
		Head:      head,
		Ahead:     status.Ahead,
		Behind:    status.Behind,
		Staged:    len(status.Staged),
		Unstaged:  len(status.Unstaged),
		Untracked: len(status.Untracked),
		Files:     configured,
		Clean:     status.IsClean(),
	}

	pending := make(map[string]bool, len(status.Unstaged)+len(status.Untracked)+len(status.Staged))
	for _, fc := range status.Staged {
		pending[fc.Path] = true
	}
	for _, fc := range status.Unstaged {
		pending[fc.Path] = true
	}
	for _, path := range status.Untracked {
		pending[path] = true
	}

	for _, path := range configured {
		if pending[path] {
			report.PendingFiles = append(report.PendingFiles, path)
		}
	}

	return report
}

// writeStatusText renders the report for human output.
func writeStatusText(w io.Writer, report *statusReport) {
	fmt.Fprintf(w, "On branch %s", report.Branch)
	if report.Ahead > 0 || report.Behind > 0 {
		fmt.Fprintf(w, " (ahead %d, behind %d)", report.Ahead, report.Behind)
	}
	fmt.Fprintln(w)

	if report.Head != "" {
		fmt.Fprintf(w, "HEAD: %s\n", report.Head)
	}

	if report.Clean {
		fmt.Fprintln(w, "Working tree clean; a publish would have nothing to commit.")
		return
	}

	fmt.Fprintf(w, "Changes: %d staged, %d unstaged, %d untracked\n",
		report.Staged, report.Unstaged, report.Untracked)

	if len(report.Files) > 0 {
		if len(report.PendingFiles) == 0 {
			fmt.Fprintln(w, "None of the configured files have pending changes.")
			return
		}
		fmt.Fprintln(w, "Configured files with pending changes:")
		for _, path := range report.PendingFiles {
			fmt.Fprintf(w, "  %s\n", path)
		}
	}
}
