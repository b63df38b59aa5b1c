package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/flight-desk/internal/domain/entities"
)

func newDestinationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "destinations",
		Short: "List destinations and ticket prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				formatDestinations(cmd.OutOrStdout(), d.Catalog.Destinations())
				return nil
			})
		},
	}
}

func formatDestinations(w io.Writer, dests []entities.Destination) {
	if len(dests) == 0 {
		fmt.Fprintln(w, "No destinations.")
		return
	}

	width := 0
	for _, d := range dests {
		width = max(width, len(d.DisplayName))
	}

	fmt.Fprintf(w, "%d destinations:\n\n", len(dests))
	for _, d := range dests {
		fmt.Fprintf(w, "  %-*s  %8s  %s\n", width, d.DisplayName, d.Price, d.Key)
	}
}
