package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/flight-desk/internal/application/handlers"
	"github.com/ersonp/flight-desk/internal/domain/entities"
	"github.com/ersonp/flight-desk/internal/domain/services"
)

func newResolveCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve <destination>",
		Short: "Resolve destination text to a catalog destination",
		Long: "Runs the resolver on the given text and prints the matched destination, " +
			"or suggestions when nothing matches. Multiple words are joined with spaces.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, strings.Join(args, " "), asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the get_ticket_price tool payload as JSON")

	return cmd
}

func runResolve(cmd *cobra.Command, input string, asJSON bool) error {
	return withDeps(cmd.Context(), func(d *Deps) error {
		res := d.ResolveHandler.Handle(cmd.Context(), input, handlers.SourceCLI)
		if asJSON {
			return formatTicketJSON(cmd.OutOrStdout(), input, res)
		}
		formatResolution(cmd.OutOrStdout(), input, res)
		return nil
	})
}

// formatTicketJSON writes the tool payload the model would receive.
func formatTicketJSON(w io.Writer, input string, res entities.Resolution) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(services.NewTicketPrice(input, res)); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// formatResolution writes a human-readable resolution.
func formatResolution(w io.Writer, input string, res entities.Resolution) {
	switch r := res.(type) {
	case entities.Found:
		fmt.Fprintf(w, "%s -> %s (%s)\n", input, r.DisplayName, r.Price)
		fmt.Fprintf(w, "   Match: %s via %q", r.Stage, r.MatchedAlias)
		if r.Stage == entities.StageFuzzy {
			fmt.Fprintf(w, " (score %.2f)", r.Score)
		}
		fmt.Fprintln(w)
		if r.Corrected {
			fmt.Fprintln(w, "   Input was corrected")
		}
		if r.Description != "" {
			fmt.Fprintf(w, "   %s\n", r.Description)
		}
	case entities.NotFound:
		fmt.Fprintf(w, "%s: no matching destination\n", input)
		if len(r.Suggestions) > 0 {
			fmt.Fprintf(w, "   Did you mean: %s?\n", strings.Join(r.Suggestions, ", "))
		}
	}
}
