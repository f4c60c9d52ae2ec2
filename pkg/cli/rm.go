package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getbookd/bookd/pkg/client"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a book by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(serverURL)
		if err := c.DeleteBook(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to remove book: %w", err)
		}
		fmt.Printf("Removed book %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
