package config

import (
	"github.com/resea/gitship/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - Repo path must not be empty
//   - Repo remote must not be empty
//   - Repo branch must not be empty
//   - Git command timeout must be positive
//
// The publish message is deliberately not validated here: it is only
// required at publish time and the status/init commands work without it.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if cfg.Repo.Path == "" {
		return errors.Wrap(errors.ErrConfigInvalid,
			"repo.path must not be empty")
	}

	if cfg.Repo.Remote == "" {
		return errors.Wrap(errors.ErrConfigInvalid,
			"repo.remote must not be empty")
	}

	if cfg.Repo.Branch == "" {
		return errors.Wrap(errors.ErrConfigInvalid,
			"repo.branch must not be empty")
	}

	if cfg.Git.CommandTimeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"git.command_timeout must be positive, got %s", cfg.Git.CommandTimeout)
	}

	return nil
}
