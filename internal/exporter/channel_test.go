package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractChannelID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare ID passes through",
			input:    "C0123ABCDEF",
			expected: "C0123ABCDEF",
		},
		{
			name:     "archive URL",
			input:    "https://example.slack.com/archives/C0123ABCDEF",
			expected: "C0123ABCDEF",
		},
		{
			name:     "archive URL with trailing path",
			input:    "https://example.slack.com/archives/C0123ABCDEF/p1700000000000100",
			expected: "C0123ABCDEF",
		},
		{
			name:     "non-archive URL passes through",
			input:    "https://example.slack.com/messages/C0123ABCDEF",
			expected: "https://example.slack.com/messages/C0123ABCDEF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractChannelID(tt.input))
		})
	}
}
