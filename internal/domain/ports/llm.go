// Package ports defines interfaces for external service communication.
package ports

import (
	"context"
)

// Role identifies the author of a chat message.
type Role string

// Chat message roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ChatMessage is one turn of a conversation with the model.
type ChatMessage struct {
	Role       Role       `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`  // Set on assistant turns requesting tools
	ToolCallID string     `json:"tool_call_id,omitempty"` // Set on tool turns
}

// ToolCall is a function call requested by the model.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"` // Raw JSON object
}

// ToolDefinition describes a function the model may call.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"` // JSON schema
}

// LLMClient defines the interface for LLM operations.
type LLMClient interface {
	// Complete sends the conversation and returns the next assistant message.
	// The message carries ToolCalls when the model wants functions run.
	Complete(ctx context.Context, messages []ChatMessage, tools []ToolDefinition) (ChatMessage, error)
}
