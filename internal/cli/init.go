// Package cli provides the command-line interface for gitship.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/resea/gitship/internal/config"
	"github.com/resea/gitship/internal/ctxutil"
	gitshiperrors "github.com/resea/gitship/internal/errors"
)

// InitFlags holds flags specific to the init command.
type InitFlags struct {
	// Global writes the config to ~/.gitship instead of the project.
	Global bool
	// Force overwrites an existing config file.
	Force bool
}

// AddInitCommand adds the init command to the root command.
func AddInitCommand(root *cobra.Command) {
	root.AddCommand(newInitCmd())
}

func newInitCmd() *cobra.Command {
	flags := &InitFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long: `Write a starter .gitship/config.yaml with the default settings, ready to
be edited with the project's file list and commit message.

With --global the file is written to ~/.gitship/config.yaml instead, where it
applies to every project that has no project-level config.

Examples:
  gitship init
  gitship init --global
  gitship init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.Context(), flags, os.Stdout)
		},
	}

	cmd.Flags().BoolVar(&flags.Global, "global", false, "write the global config instead of the project config")
	cmd.Flags().BoolVar(&flags.Force, "force", false, "overwrite an existing config file")

	return cmd
}

// runInit writes the default configuration to the selected location.
func runInit(ctx context.Context, flags *InitFlags, w io.Writer) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	path, err := resolveInitPath(flags.Global)
	if err != nil {
		return err
	}

	if !flags.Force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", gitshiperrors.ErrConfigExists, path)
		}
	}

	if err := writeConfigFile(path, config.DefaultConfig()); err != nil {
		return err
	}

	fmt.Fprintf(w, "Wrote %s\n", path)
	fmt.Fprintln(w, "Edit publish.files and publish.message before the first publish.")
	return nil
}

// resolveInitPath picks the target config path for init.
func resolveInitPath(global bool) (string, error) {
	if global {
		return config.GlobalConfigPath()
	}
	return config.ProjectConfigPath(), nil
}

// writeConfigFile marshals the config to YAML and writes it, creating the
// parent directory if needed.
func writeConfigFile(path string, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return gitshiperrors.Wrap(err, "failed to marshal config")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return gitshiperrors.Wrapf(err, "failed to create config directory %s", dir)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return gitshiperrors.Wrapf(err, "failed to write config file %s", path)
	}

	return nil
}
