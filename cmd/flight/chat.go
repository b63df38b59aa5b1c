package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/flight-desk/internal/application/handlers"
	"github.com/ersonp/flight-desk/internal/domain/ports"
)

const welcome = "Welcome to FlightAI! Ask about ticket prices or available destinations. Type 'exit' to quit."

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat with the FlightAI assistant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				if d.ChatHandler == nil {
					return errors.New("OpenAI API key is required (set OPENAI_API_KEY or llm.api_key)")
				}
				return chatLoop(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), d.ChatHandler.Handle)
			})
		},
	}
}

// replyFunc answers one message given the previous turns.
type replyFunc func(ctx context.Context, history []ports.ChatMessage, message string) *handlers.ChatResult

// chatLoop reads messages line by line until EOF or an exit command.
// Failed turns are shown but kept out of the history.
func chatLoop(ctx context.Context, in io.Reader, out io.Writer, reply replyFunc) error {
	fmt.Fprintln(out, welcome)

	var history []ports.ChatMessage
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if slices.Contains(exitCommands, strings.ToLower(message)) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		result := reply(ctx, history, message)
		fmt.Fprintf(out, "%s\n\n", result.Reply)

		if !result.Failed {
			history = append(history,
				ports.ChatMessage{Role: ports.RoleUser, Content: message},
				ports.ChatMessage{Role: ports.RoleAssistant, Content: result.Reply},
			)
		}
	}
}
