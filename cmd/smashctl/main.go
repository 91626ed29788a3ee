// Package main provides the entry point for the smashctl maintenance tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/halvard/smashlog/cmd/smashctl/commands"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "smashctl",
		Short: "Smashlog maintenance tool - offline operations on the match log",
		Long: `Smashctl operates directly on a smashlog database file.

Commands:
  import      Import legacy CSV match history into the store
  resegment   Recompute session assignments for the whole log`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewImportCommand())
	rootCmd.AddCommand(commands.NewResegmentCommand())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "smashctl %s\n", version)
		},
	}
}
