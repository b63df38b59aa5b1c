package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already normalized",
			input:    "paris",
			expected: "paris",
		},
		{
			name:     "uppercase converted",
			input:    "TOKYO",
			expected: "tokyo",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  berlin \t",
			expected: "berlin",
		},
		{
			name:     "inner whitespace collapsed",
			input:    "ho   chi\tminh",
			expected: "ho chi minh",
		},
		{
			name:     "city suffix stripped",
			input:    "Ho Chi Minh City",
			expected: "ho chi minh",
		},
		{
			name:     "city of prefix stripped",
			input:    "City of London",
			expected: "london",
		},
		{
			name:     "prefix and suffix stripped",
			input:    "city of paris city",
			expected: "paris",
		},
		{
			name:     "repeated suffix stripped",
			input:    "tokyo city city",
			expected: "tokyo",
		},
		{
			name:     "bare city kept",
			input:    "City",
			expected: "city",
		},
		{
			name:     "suffix without separator kept",
			input:    "oldcity",
			expected: "oldcity",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeName(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNormalizeName_Idempotent(t *testing.T) {
	inputs := []string{
		"Paris",
		"  City of  Berlin City ",
		"city of city of tokyo",
		"HCMC",
		"sai gon",
		"city of",
		"x city city city",
		"",
	}

	for _, input := range inputs {
		once := NormalizeName(input)
		assert.Equal(t, once, NormalizeName(once), "normalizing %q twice", input)
	}
}

func TestDefaultAliases_TargetDefaultDestinations(t *testing.T) {
	keys := make(map[string]bool, len(DefaultDestinations))
	for _, d := range DefaultDestinations {
		keys[d.Key] = true
	}

	for _, a := range DefaultAliases {
		assert.True(t, keys[a.Key], "alias %q targets unknown key %q", a.Alias, a.Key)
	}
}
