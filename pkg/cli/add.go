package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/getbookd/bookd/pkg/book"
	"github.com/getbookd/bookd/pkg/client"
)

var (
	addTitle  string
	addAuthor string
	addYear   string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new book to the catalog",
	Long: `Add a new book to the catalog.

Without flags, an interactive form prompts for the fields.`,
	Example: `  # Add interactively
  bookd add

  # Add with flags
  bookd add --title "Dune" --author "Frank Herbert" --year 1965`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If flags were intentionally omitted (e.g., just ran "bookd add"),
		// run the interactive prompt.
		if !cmd.Flags().Changed("title") {
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Title").
						Placeholder("Dune").
						Value(&addTitle).
						Validate(func(s string) error {
							if s == "" {
								return errors.New("title is required")
							}
							return nil
						}),
					huh.NewInput().
						Title("Author").
						Placeholder("Frank Herbert").
						Value(&addAuthor).
						Validate(func(s string) error {
							if s == "" {
								return errors.New("author is required")
							}
							return nil
						}),
					huh.NewInput().
						Title("Publication year (optional)").
						Placeholder("1965").
						Value(&addYear),
				),
			)
			if err := form.Run(); err != nil {
				return err
			}
		}

		year, err := parseYear(addYear)
		if err != nil {
			return err
		}

		c := client.New(serverURL)
		created, err := c.CreateBook(cmd.Context(), &book.Book{
			Title:           addTitle,
			Author:          addAuthor,
			PublicationYear: year,
		})
		if err != nil {
			return fmt.Errorf("failed to add book: %w", err)
		}

		if jsonOutput {
			return printBook(created)
		}
		fmt.Printf("Added book %s (%s)\n", created.ID, created.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addTitle, "title", "", "Book title")
	addCmd.Flags().StringVar(&addAuthor, "author", "", "Book author")
	addCmd.Flags().StringVar(&addYear, "year", "", "Publication year")
}

// parseYear turns the optional flag value into the year field: empty stays
// unset, a number is sent as a number.
func parseYear(s string) (any, error) {
	if s == "" {
		return nil, nil
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid year %q", s)
	}
	return year, nil
}
