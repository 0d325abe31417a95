package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"medium skin tone thumbs up", "\U0001F44D\U0001F3FD", "\U0001F44D"},
		{"light skin tone thumbs up", "\U0001F44D\U0001F3FB", "\U0001F44D"},
		{"plain thumbs up unchanged", "\U0001F44D", "\U0001F44D"},
		{"variation selector kept", "☺️", "☺️"},
		{"zwj family sequence kept", "\U0001F469‍\U0001F469‍\U0001F467", "\U0001F469‍\U0001F469‍\U0001F467"},
		{"waving hand dark skin tone", "\U0001F44B\U0001F3FF", "\U0001F44B"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Canonicalize(tt.input))
		})
	}
}

func TestCanonicalizeCollapsesSkinTones(t *testing.T) {
	// Visually distinct skin tones must land in the same reaction bucket.
	assert.Equal(t, Canonicalize("\U0001F44D\U0001F3FD"), Canonicalize("\U0001F44D\U0001F3FB"))
}
