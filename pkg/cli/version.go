package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(map[string]string{
				"version":   Version,
				"commit":    Commit,
				"buildDate": BuildDate,
			})
		}
		fmt.Printf("bookd %s (commit %s, built %s)\n", Version, Commit, BuildDate)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
