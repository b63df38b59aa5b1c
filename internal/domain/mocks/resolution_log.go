package mocks

import (
	"context"
	"sort"

	"github.com/ersonp/flight-desk/internal/domain/entities"
)

// ResolutionLog is a mock implementation of ports.ResolutionLog.
type ResolutionLog struct {
	Records []entities.ResolutionRecord
	Err     error
}

// NewResolutionLog creates a new mock ResolutionLog.
func NewResolutionLog() *ResolutionLog {
	return &ResolutionLog{}
}

// EnsureSchema creates the database schema if it doesn't exist.
func (m *ResolutionLog) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close closes the database connection.
func (m *ResolutionLog) Close() error {
	return nil
}

// Record appends the record.
func (m *ResolutionLog) Record(_ context.Context, rec entities.ResolutionRecord) error {
	if m.Err != nil {
		return m.Err
	}
	m.Records = append(m.Records, rec)
	return nil
}

// Recent returns the last records, newest first.
func (m *ResolutionLog) Recent(_ context.Context, limit int) ([]entities.ResolutionRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]entities.ResolutionRecord, 0, len(m.Records))
	for i := len(m.Records) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, m.Records[i])
	}
	return result, nil
}

// TopUnresolved counts unresolved inputs, most frequent first.
func (m *ResolutionLog) TopUnresolved(_ context.Context, limit int) ([]entities.UnresolvedInput, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	counts := make(map[string]*entities.UnresolvedInput)
	for _, rec := range m.Records {
		if rec.Found {
			continue
		}
		u, ok := counts[rec.NormalizedInput]
		if !ok {
			u = &entities.UnresolvedInput{NormalizedInput: rec.NormalizedInput}
			counts[rec.NormalizedInput] = u
		}
		u.Count++
		if rec.CreatedAt.After(u.LastSeen) {
			u.LastSeen = rec.CreatedAt
		}
	}

	result := make([]entities.UnresolvedInput, 0, len(counts))
	for _, u := range counts {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].NormalizedInput < result[j].NormalizedInput
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
