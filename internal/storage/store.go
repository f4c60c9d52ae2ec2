package storage

import (
	"github.com/getbookd/bookd/pkg/book"
)

// BookStore defines the interface for storing and retrieving books.
// Listing order is insertion order.
type BookStore interface {
	// List returns all stored books in insertion order.
	List() []*book.Book

	// Get retrieves a book by ID. Returns ErrNotFound if no book matches.
	Get(id string) (*book.Book, error)

	// Create validates the draft, assigns a fresh ID, and appends the book.
	// The draft's ID field is ignored.
	Create(draft *book.Book) (*book.Book, error)

	// Replace validates the draft and replaces the whole record at the
	// position of id, keeping the existing ID.
	Replace(id string, draft *book.Book) (*book.Book, error)

	// Merge shallow-merges the supplied fields onto the stored book.
	// The id field is never overwritten; fields outside the book schema
	// are ignored. No required-field validation is performed.
	Merge(id string, fields map[string]any) (*book.Book, error)

	// Delete removes a book by ID, preserving the relative order of the rest.
	Delete(id string) error

	// Count returns the number of stored books.
	Count() int

	// Seed bulk-inserts trusted records, assigning IDs but skipping validation.
	Seed(books ...*book.Book)
}
