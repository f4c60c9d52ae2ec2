package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getbookd/bookd/pkg/client"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a book by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(serverURL)
		b, err := c.GetBook(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get book: %w", err)
		}
		return printBook(b)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
