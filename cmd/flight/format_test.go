package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/flight-desk/internal/domain/entities"
)

func TestFormatResolution(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		res      entities.Resolution
		contains []string
		excludes []string
	}{
		{
			name:  "exact",
			input: "HCMC",
			res: entities.Found{
				Key: "hochiminh", DisplayName: "Ho Chi Minh City", Price: "$1500",
				MatchedAlias: "hcmc", Stage: entities.StageExact, Score: 1,
			},
			contains: []string{"HCMC -> Ho Chi Minh City ($1500)", `exact via "hcmc"`},
			excludes: []string{"score", "corrected"},
		},
		{
			name:  "fuzzy shows score",
			input: "Pris",
			res: entities.Found{
				Key: "paris", DisplayName: "Paris", Price: "$899", Description: "The City of Light",
				MatchedAlias: "paris", Corrected: true, Stage: entities.StageFuzzy, Score: 0.8,
			},
			contains: []string{"Pris -> Paris ($899)", "(score 0.80)", "Input was corrected", "The City of Light"},
		},
		{
			name:     "not found with suggestions",
			input:    "Toronto",
			res:      entities.NotFound{NormalizedInput: "toronto", Suggestions: []string{"Tokyo"}},
			contains: []string{"Toronto: no matching destination", "Did you mean: Tokyo?"},
		},
		{
			name:     "not found without suggestions",
			input:    "Atlantis",
			res:      entities.NotFound{NormalizedInput: "atlantis", Suggestions: []string{}},
			contains: []string{"Atlantis: no matching destination"},
			excludes: []string{"Did you mean"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			formatResolution(&buf, tt.input, tt.res)

			out := buf.String()
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestFormatTicketJSON(t *testing.T) {
	var buf bytes.Buffer
	err := formatTicketJSON(&buf, "Atlantis", entities.NotFound{NormalizedInput: "atlantis", Suggestions: []string{}})
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))

	assert.Equal(t, "Unknown", parsed["price"])
	assert.Equal(t, "Atlantis", parsed["destination"])
	assert.Equal(t, false, parsed["found"])
	assert.NotContains(t, parsed, "typo_corrected")
}

func TestFormatDestinations(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		formatDestinations(&buf, nil)
		assert.Equal(t, "No destinations.\n", buf.String())
	})

	t.Run("aligned", func(t *testing.T) {
		var buf bytes.Buffer
		formatDestinations(&buf, []entities.Destination{
			{Key: "paris", DisplayName: "Paris", Price: "$899"},
			{Key: "hochiminh", DisplayName: "Ho Chi Minh City", Price: "$1500"},
		})

		out := buf.String()
		assert.Contains(t, out, "2 destinations:")
		assert.Contains(t, out, "  Paris                 $899  paris\n")
		assert.Contains(t, out, "  Ho Chi Minh City     $1500  hochiminh\n")
	})
}

func TestFormatRecords(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		formatRecords(&buf, nil)
		assert.Equal(t, "No resolutions logged.\n", buf.String())
	})

	t.Run("found and unresolved", func(t *testing.T) {
		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		var buf bytes.Buffer
		formatRecords(&buf, []entities.ResolutionRecord{
			{RawInput: "Pris", Found: true, Key: "paris", Stage: "fuzzy", Source: "cli", CreatedAt: now},
			{RawInput: "Atlantis", Stage: entities.StageUnresolved, CreatedAt: now},
		})

		out := buf.String()
		assert.Contains(t, out, `paris         "Pris"  [cli]`)
		assert.Contains(t, out, `unresolved   -             "Atlantis"`)
	})
}

func TestFormatUnresolved(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		formatUnresolved(&buf, nil)
		assert.Equal(t, "No unresolved inputs.\n", buf.String())
	})

	t.Run("ranked", func(t *testing.T) {
		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		var buf bytes.Buffer
		formatUnresolved(&buf, []entities.UnresolvedInput{
			{NormalizedInput: "atlantis", Count: 3, LastSeen: now},
			{NormalizedInput: "gotham", Count: 1, LastSeen: now},
		})

		out := buf.String()
		assert.Contains(t, out, "2 unresolved inputs:")
		assert.Contains(t, out, `1. "atlantis" seen 3 times`)
		assert.Contains(t, out, `2. "gotham" seen 1 times`)
	})
}

func TestParentDir(t *testing.T) {
	assert.Equal(t, "", parentDir(":memory:"))
	assert.Equal(t, "/tmp/.flight", parentDir("/tmp/.flight/resolutions.db"))
}
