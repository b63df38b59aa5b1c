package entities

import "time"

// ResolutionRecord is one logged call to the resolver.
type ResolutionRecord struct {
	ID              string    `json:"id"`
	RawInput        string    `json:"raw_input"`
	NormalizedInput string    `json:"normalized_input"`
	Found           bool      `json:"found"`
	Key             string    `json:"key,omitempty"`
	MatchedAlias    string    `json:"matched_alias,omitempty"`
	Corrected       bool      `json:"corrected"`
	Stage           string    `json:"stage"`
	Source          string    `json:"source,omitempty"` // cli, http, tool
	CreatedAt       time.Time `json:"created_at"`
}

// UnresolvedInput counts how often a normalized input failed to resolve.
type UnresolvedInput struct {
	NormalizedInput string    `json:"normalized_input"`
	Count           int       `json:"count"`
	LastSeen        time.Time `json:"last_seen"`
}

// StageUnresolved is the stage recorded for NotFound resolutions.
const StageUnresolved = "unresolved"

// NewResolutionRecord builds a log record from a resolution.
func NewResolutionRecord(raw string, res Resolution, source string) ResolutionRecord {
	rec := ResolutionRecord{RawInput: raw, Source: source}
	switch r := res.(type) {
	case Found:
		rec.NormalizedInput = NormalizeName(raw)
		rec.Found = true
		rec.Key = r.Key
		rec.MatchedAlias = r.MatchedAlias
		rec.Corrected = r.Corrected
		rec.Stage = string(r.Stage)
	case NotFound:
		rec.NormalizedInput = r.NormalizedInput
		rec.Stage = StageUnresolved
	}
	return rec
}
