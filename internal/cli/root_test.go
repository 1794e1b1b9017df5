package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{Version: "test"})

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRootCommandShowsHelp(t *testing.T) {
	output, err := executeCommand(t)
	require.NoError(t, err)
	assert.Contains(t, output, "gitship")
	assert.Contains(t, output, "publish")
	assert.Contains(t, output, "status")
	assert.Contains(t, output, "init")
}

func TestRootCommandInvalidOutputFormat(t *testing.T) {
	_, err := executeCommand(t, "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestRootCommandVersion(t *testing.T) {
	output, err := executeCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, output, "test")
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		name     string
		info     BuildInfo
		expected string
	}{
		{
			name:     "full info",
			info:     BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-01"},
			expected: "1.2.3 (commit: abc123, built: 2026-01-01)",
		},
		{
			name:     "empty info",
			info:     BuildInfo{},
			expected: "dev (commit: none, built: unknown)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatVersion(tt.info))
		})
	}
}
