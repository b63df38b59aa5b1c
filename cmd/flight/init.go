package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ersonp/flight-desk/internal/application/handlers"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize flight configuration",
		Long:  "Creates a .flight directory with default configuration and the resolution log database.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	result, err := handlers.NewInitHandler(sqliteOpener).Handle(cmd.Context(), cwd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", result.ConfigPath)
	fmt.Fprintf(out, "Created %s\n", result.DatabasePath)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Set OPENAI_API_KEY to enable 'flight chat' and POST /v1/chat.")
	return nil
}

// parentDir returns the directory of path, or "" for in-memory databases.
func parentDir(path string) string {
	if path == ":memory:" {
		return ""
	}
	return filepath.Dir(path)
}
