package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gitshiperrors "github.com/resea/gitship/internal/errors"
	"github.com/resea/gitship/internal/publish"
)

func TestPublishOverrides(t *testing.T) {
	global := &GlobalFlags{Repo: "/srv/backend"}
	flags := &PublishFlags{
		Files:       []string{"a.ts", "b.ts"},
		Message:     "feat: ship it",
		Remote:      "upstream",
		Branch:      "develop",
		SetUpstream: true,
		AllowEmpty:  true,
	}

	overrides := publishOverrides(global, flags)

	assert.Equal(t, "/srv/backend", overrides.Repo.Path)
	assert.Equal(t, "upstream", overrides.Repo.Remote)
	assert.Equal(t, "develop", overrides.Repo.Branch)
	assert.Equal(t, []string{"a.ts", "b.ts"}, overrides.Publish.Files)
	assert.Equal(t, "feat: ship it", overrides.Publish.Message)
	assert.True(t, overrides.Publish.SetUpstream)
	assert.True(t, overrides.Publish.AllowEmpty)
}

func TestWritePublishJSONSuccess(t *testing.T) {
	result := &publish.Result{
		RunID:     "run-1",
		Remote:    "origin",
		Branch:    "main",
		Files:     []string{"src/server.ts"},
		Committed: true,
		Pushed:    true,
		Steps: []publish.StepResult{
			{Step: publish.StepStage},
			{Step: publish.StepCommit},
			{Step: publish.StepPush},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writePublishJSON(&buf, result, nil))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, true, doc["success"])
	assert.Equal(t, "origin", doc["remote"])
	assert.Equal(t, "main", doc["branch"])
	assert.NotContains(t, doc, "error")
}

func TestWritePublishJSONFailure(t *testing.T) {
	result := &publish.Result{
		RunID:  "run-2",
		Remote: "origin",
		Branch: "main",
		Steps: []publish.StepResult{
			{Step: publish.StepStage, Error: "boom"},
		},
	}
	pubErr := fmt.Errorf("%w: boom", gitshiperrors.ErrStageFailed)

	var buf bytes.Buffer
	require.NoError(t, writePublishJSON(&buf, result, pubErr))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, false, doc["success"])
	assert.Contains(t, doc["error"], "stage failed")
}

func TestWritePublishJSONNilResult(t *testing.T) {
	pubErr := fmt.Errorf("commit message is required: %w", gitshiperrors.ErrEmptyValue)

	var buf bytes.Buffer
	require.NoError(t, writePublishJSON(&buf, nil, pubErr))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, false, doc["success"])
}

func TestDescribeFiles(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		expected string
	}{
		{"empty stages all", nil, "all changes"},
		{"single file", []string{"README.md"}, "README.md"},
		{"multiple files", []string{"a", "b", "c"}, "3 files"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, describeFiles(tt.files))
		})
	}
}
