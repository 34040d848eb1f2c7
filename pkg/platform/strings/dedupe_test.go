package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "empty slice",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "trims whitespace",
			input:    []string{"  MIT  ", "GPL-2.0  ", "  BSD-3-Clause"},
			expected: []string{"MIT", "GPL-2.0", "BSD-3-Clause"},
		},
		{
			name:     "removes duplicates preserving order",
			input:    []string{"MIT", "GPL-2.0", "MIT", "Apache-2.0", "GPL-2.0"},
			expected: []string{"MIT", "GPL-2.0", "Apache-2.0"},
		},
		{
			name:     "keeps case-distinct names",
			input:    []string{"mit", "MIT"},
			expected: []string{"mit", "MIT"},
		},
		{
			name:     "drops blanks",
			input:    []string{"", "   ", "MIT"},
			expected: []string{"MIT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrim(tt.input))
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList("", ","))
	assert.Nil(t, SplitList("   ", ","))
	assert.Equal(t, []string{"MIT", "GPL-2.0"}, SplitList("MIT, GPL-2.0,,MIT", ","))
}
