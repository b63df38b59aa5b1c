package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ersonp/flight-desk/internal/domain/ports"
)

// DefaultMaxToolRounds bounds how many times one reply may go back to the
// model with tool results.
const DefaultMaxToolRounds = 5

// ErrToolRoundsExceeded is returned when the model keeps asking for tools.
var ErrToolRoundsExceeded = errors.New("model requested tools too many times")

// SystemPrompt instructs the model to act as the airline assistant.
const SystemPrompt = `You are a helpful assistant for an Airline called FlightAI.
You help customers with flight information, ticket prices, and travel-related questions.
Give courteous and helpful answers. Always be accurate. If you don't know the answer, say so.

Here are some examples of how you should respond:

Example 1:
Customer: "How much is a ticket to Paris?"
Assistant: I'll check the ticket price to Paris for you.
[Tool call: get_ticket_price with destination_city: "Paris"]
Assistant: A return ticket to Paris costs $899.

Example 2:
Customer: "I want to travel somewhere for under $600. What options do I have?"
Assistant: Let me check our available destinations for you. Based on our current prices, Berlin is available for $499, which is under your $600 budget.

Example 3:
Customer: "What's the cheapest destination you offer?"
Assistant: Let me check all our destination prices for you. The most affordable destination we offer is Berlin at $499 for a return ticket.

Example 4:
Customer: "Can you tell me about Tokyo?"
Assistant: I'd be happy to help! Tokyo is one of our destinations with return tickets priced at $1400. For specific details about attractions, weather, or travel requirements, I'd recommend checking with our travel specialists or official travel guides.

Remember to:
- Always use the get_ticket_price function when customers ask about specific destination prices
- When a price result has typo_corrected set, tell the customer which destination you understood
- When a price result is not found, offer its suggestions or the full destination list
- Acknowledge limitations when you don't have specific information
- Maintain a friendly, professional airline customer service tone`

// ChatService runs one customer turn against the model, answering its tool calls.
type ChatService struct {
	llm       ports.LLMClient
	tools     *ToolService
	maxRounds int
}

// NewChatService creates a new chat service. maxRounds <= 0 uses DefaultMaxToolRounds.
func NewChatService(llm ports.LLMClient, tools *ToolService, maxRounds int) *ChatService {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxToolRounds
	}
	return &ChatService{
		llm:       llm,
		tools:     tools,
		maxRounds: maxRounds,
	}
}

// Reply sends history plus message to the model and returns its final answer.
// Every tool call of a round is answered before the model is asked again.
// System messages in history are dropped; SystemPrompt always leads.
func (s *ChatService) Reply(ctx context.Context, history []ports.ChatMessage, message string) (string, error) {
	messages := make([]ports.ChatMessage, 0, len(history)+2)
	messages = append(messages, ports.ChatMessage{Role: ports.RoleSystem, Content: SystemPrompt})
	for _, m := range history {
		if m.Role == ports.RoleSystem {
			continue
		}
		messages = append(messages, m)
	}
	messages = append(messages, ports.ChatMessage{Role: ports.RoleUser, Content: message})

	definitions := s.tools.Definitions()
	for round := 0; round <= s.maxRounds; round++ {
		// The last round offers no tools so the model has to answer.
		offered := definitions
		if round == s.maxRounds {
			offered = nil
		}

		//nolint:loopcall // each round depends on the previous tool results
		reply, err := s.llm.Complete(ctx, messages, offered)
		if err != nil {
			return "", fmt.Errorf("completing chat (round %d): %w", round, err)
		}
		if len(reply.ToolCalls) == 0 {
			return reply.Content, nil
		}

		messages = append(messages, reply)
		for _, call := range reply.ToolCalls {
			messages = append(messages, s.tools.Dispatch(ctx, call))
		}
	}

	return "", ErrToolRoundsExceeded
}
