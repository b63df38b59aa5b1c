package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/flight-desk/internal/application/handlers"
	"github.com/ersonp/flight-desk/internal/domain/ports"
)

type recordedTurn struct {
	history []ports.ChatMessage
	message string
}

func TestChatLoop(t *testing.T) {
	var turns []recordedTurn
	reply := func(_ context.Context, history []ports.ChatMessage, message string) *handlers.ChatResult {
		turns = append(turns, recordedTurn{history: append([]ports.ChatMessage(nil), history...), message: message})
		if message == "break" {
			return &handlers.ChatResult{Reply: handlers.ApologyMessage, Failed: true}
		}
		return &handlers.ChatResult{Reply: "echo " + message}
	}

	in := strings.NewReader("hello\n\n  \nbreak\nprice to paris\nquit\nnever read\n")
	var out bytes.Buffer

	err := chatLoop(context.Background(), in, &out, reply)
	require.NoError(t, err)

	require.Len(t, turns, 3)
	assert.Equal(t, "hello", turns[0].message)
	assert.Empty(t, turns[0].history)

	// The failed turn is not carried into later history.
	assert.Len(t, turns[1].history, 2)
	assert.Equal(t, "price to paris", turns[2].message)
	require.Len(t, turns[2].history, 2)
	assert.Equal(t, ports.RoleUser, turns[2].history[0].Role)
	assert.Equal(t, "hello", turns[2].history[0].Content)
	assert.Equal(t, ports.RoleAssistant, turns[2].history[1].Role)
	assert.Equal(t, "echo hello", turns[2].history[1].Content)

	output := out.String()
	assert.True(t, strings.HasPrefix(output, welcome))
	assert.Contains(t, output, "echo hello")
	assert.Contains(t, output, handlers.ApologyMessage)
	assert.NotContains(t, output, "never read")
}

func TestChatLoop_EOF(t *testing.T) {
	called := false
	reply := func(context.Context, []ports.ChatMessage, string) *handlers.ChatResult {
		called = true
		return &handlers.ChatResult{}
	}

	var out bytes.Buffer
	err := chatLoop(context.Background(), strings.NewReader(""), &out, reply)

	require.NoError(t, err)
	assert.False(t, called)
}

func TestChatLoop_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reply := func(context.Context, []ports.ChatMessage, string) *handlers.ChatResult {
		t.Fatal("reply should not be called")
		return nil
	}

	var out bytes.Buffer
	err := chatLoop(ctx, strings.NewReader("hello\n"), &out, reply)

	assert.ErrorIs(t, err, context.Canceled)
}
