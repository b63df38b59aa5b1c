package handlers

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ersonp/flight-desk/internal/domain/ports"
	"github.com/ersonp/flight-desk/internal/domain/services"
)

// ApologyMessage is the reply given when the assistant cannot answer.
const ApologyMessage = "I apologize, but I'm experiencing technical difficulties. Please try again later."

// ChatHandler handles one customer chat turn.
type ChatHandler struct {
	chatService *services.ChatService
	logger      zerolog.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(chatService *services.ChatService, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// ChatResult contains the assistant reply.
type ChatResult struct {
	Reply  string `json:"reply"`
	Failed bool   `json:"failed,omitempty"` // Reply is ApologyMessage
}

// Handle returns the assistant reply to message. Failures are logged and
// answered with ApologyMessage.
func (h *ChatHandler) Handle(ctx context.Context, history []ports.ChatMessage, message string) *ChatResult {
	reply, err := h.chatService.Reply(ctx, history, message)
	if err != nil {
		h.logger.Error().Err(err).Int("history", len(history)).Msg("chat reply failed")
		return &ChatResult{Reply: ApologyMessage, Failed: true}
	}
	return &ChatResult{Reply: reply}
}
