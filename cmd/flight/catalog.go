package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/flight-desk/internal/application/handlers"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Work with destination catalog files",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a catalog file builds",
		Long:  "Parses a YAML, JSON or CSV catalog and reports duplicate keys, conflicting aliases and unknown alias targets.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := handlers.NewCatalogHandler().Validate(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d destinations, %d aliases\n",
				summary.Path, summary.Destinations, summary.Aliases)
			return nil
		},
	})

	return cmd
}
