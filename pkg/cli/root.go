// Package cli implements the bookd command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/getbookd/bookd/internal/config"
)

var (
	// Persistent flags available to all subcommands
	serverURL  string
	jsonOutput bool

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bookd",
	Short: "bookd is a small in-memory book catalog server",
	Long: `bookd serves a CRUD API for a book catalog held in memory.

Run "bookd serve" to start the server, then manage the catalog with
"bookd list", "bookd get", "bookd add", and "bookd rm". The catalog is
process-scoped: it starts with three seed records and is discarded on exit.`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server-url", config.ServerURL(), "Base URL of the bookd server")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
}
