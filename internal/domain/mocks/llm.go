// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"errors"

	"github.com/ersonp/flight-desk/internal/domain/ports"
)

// ErrNoReply is returned when a scripted LLMClient runs out of replies.
var ErrNoReply = errors.New("mock llm: no scripted reply left")

// LLMClient is a mock implementation of ports.LLMClient.
// It returns Replies in order and records every request.
type LLMClient struct {
	Replies []ports.ChatMessage
	Err     error

	// Recorded requests
	Requests [][]ports.ChatMessage
	Tools    [][]ports.ToolDefinition
}

// Complete returns the next scripted reply or the configured error.
func (m *LLMClient) Complete(_ context.Context, messages []ports.ChatMessage, tools []ports.ToolDefinition) (ports.ChatMessage, error) {
	m.Requests = append(m.Requests, append([]ports.ChatMessage(nil), messages...))
	m.Tools = append(m.Tools, tools)

	if m.Err != nil {
		return ports.ChatMessage{}, m.Err
	}
	if len(m.Replies) == 0 {
		return ports.ChatMessage{}, ErrNoReply
	}
	reply := m.Replies[0]
	m.Replies = m.Replies[1:]
	return reply, nil
}
