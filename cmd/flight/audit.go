package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersonp/flight-desk/internal/domain/entities"
)

func newAuditCmd() *cobra.Command {
	var (
		limit      int
		unresolved bool
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show logged resolutions",
		Long:  "Lists recent resolutions, or with --unresolved the inputs that most often matched nothing.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 || limit > MaxAuditLimit {
				return fmt.Errorf("limit must be between 1 and %d", MaxAuditLimit)
			}
			return withDeps(cmd.Context(), func(d *Deps) error {
				if unresolved {
					inputs, err := d.AuditHandler.Unresolved(cmd.Context(), limit)
					if err != nil {
						return err
					}
					formatUnresolved(cmd.OutOrStdout(), inputs)
					return nil
				}

				records, err := d.AuditHandler.Recent(cmd.Context(), limit)
				if err != nil {
					return err
				}
				formatRecords(cmd.OutOrStdout(), records)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultAuditLimit, "Maximum number of rows")
	cmd.Flags().BoolVarP(&unresolved, "unresolved", "u", false, "Show the most frequent unresolved inputs")

	return cmd
}

func formatRecords(w io.Writer, records []entities.ResolutionRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No resolutions logged.")
		return
	}

	for _, rec := range records {
		target := "-"
		if rec.Found {
			target = rec.Key
		}
		fmt.Fprintf(w, "%s  %-11s  %-12s  %q", rec.CreatedAt.Local().Format(time.DateTime), rec.Stage, target, rec.RawInput)
		if rec.Source != "" {
			fmt.Fprintf(w, "  [%s]", rec.Source)
		}
		fmt.Fprintln(w)
	}
}

func formatUnresolved(w io.Writer, inputs []entities.UnresolvedInput) {
	if len(inputs) == 0 {
		fmt.Fprintln(w, "No unresolved inputs.")
		return
	}

	fmt.Fprintf(w, "%d unresolved inputs:\n\n", len(inputs))
	for i, u := range inputs {
		fmt.Fprintf(w, "%d. %q seen %d times (last %s)\n", i+1, u.NormalizedInput, u.Count, u.LastSeen.Local().Format(time.DateTime))
	}
}
