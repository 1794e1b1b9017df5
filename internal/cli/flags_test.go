package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidOutputFormat(t *testing.T) {
	tests := []struct {
		format string
		valid  bool
	}{
		{"text", true},
		{"json", true},
		{"yaml", false},
		{"", false},
		{"TEXT", false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidOutputFormat(tt.format))
		})
	}
}

func TestValidOutputFormats(t *testing.T) {
	assert.Equal(t, []string{OutputText, OutputJSON}, ValidOutputFormats())
}
