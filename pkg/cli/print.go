package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/getbookd/bookd/pkg/book"
)

// printBooks renders books as a table, or as JSON with --json.
func printBooks(books []*book.Book) error {
	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(books)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tYEAR")
	for _, b := range books {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b.ID, b.Title, b.Author, formatYear(b.PublicationYear))
	}
	return w.Flush()
}

// printBook renders a single book.
func printBook(b *book.Book) error {
	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(b)
	}

	fmt.Printf("ID:      %s\n", b.ID)
	fmt.Printf("Title:   %s\n", b.Title)
	fmt.Printf("Author:  %s\n", b.Author)
	fmt.Printf("Year:    %s\n", formatYear(b.PublicationYear))
	return nil
}

// formatYear renders the untyped publication year. JSON numbers arrive as
// float64; anything else is printed as-is.
func formatYear(year any) string {
	switch v := year.(type) {
	case nil:
		return "-"
	case float64:
		return fmt.Sprintf("%d", int(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}
