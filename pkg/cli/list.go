package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getbookd/bookd/pkg/client"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all books in the catalog",
	Example: `  # List all books from a running server
  bookd list

  # List as JSON
  bookd list --json

  # List from a remote server
  bookd list --server-url http://remote:3000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(serverURL)
		books, err := c.ListBooks(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list books: %w", err)
		}
		return printBooks(books)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
