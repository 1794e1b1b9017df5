// Package constants provides centralized constant values used throughout gitship.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Directory and file names used by gitship for configuration and logs.
const (
	// AppHome is the hidden directory name where gitship stores its data.
	// It is resolved under the user's home directory for global state and
	// under the project root for per-project configuration.
	AppHome = ".gitship"

	// ConfigFileName is the name of the YAML configuration file.
	ConfigFileName = "config.yaml"

	// LogsDir is the directory name, under AppHome, where log files are stored.
	LogsDir = "logs"

	// CLILogFileName is the name of the rotating CLI log file.
	CLILogFileName = "gitship.log"
)

// EnvPrefix is the prefix for environment variable configuration overrides
// (e.g. GITSHIP_OUTPUT, GITSHIP_REPO_REMOTE).
const EnvPrefix = "GITSHIP"

// Git defaults mirrored from standard git conventions.
const (
	// DefaultRemote is the standard git remote name.
	DefaultRemote = "origin"

	// DefaultBranch is the modern git default branch name.
	DefaultBranch = "main"
)

// DefaultGitTimeout is the default maximum duration for a single git
// invocation. Pushes over slow links can take a while; anything beyond this
// is treated as hung.
const DefaultGitTimeout = 5 * time.Minute

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size of a log file before rotation, in megabytes.
	LogMaxSizeMB = 10

	// LogMaxBackups is the maximum number of rotated log files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age of a rotated log file, in days.
	LogMaxAgeDays = 30

	// LogCompress enables gzip compression of rotated log files.
	LogCompress = true
)
