// Package book defines the Book record served by the catalog API.
package book

// Book is a single record in the catalog.
//
// PublicationYear is deliberately untyped: the service stores whatever JSON
// value the client supplies and only defaults it to null when the field is
// absent. The field is always serialized, so an unset year appears as an
// explicit null rather than a missing key.
type Book struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationYear any    `json:"publicationYear"`
}

// Clone returns a shallow copy of the book.
func (b *Book) Clone() *Book {
	c := *b
	return &c
}

// SeedBooks returns the records the store is initialized with at startup.
func SeedBooks() []*Book {
	return []*Book{
		{Title: "The Hobbit", Author: "J. R. R. Tolkien", PublicationYear: 1937},
		{Title: "Nineteen Eighty-Four", Author: "George Orwell", PublicationYear: 1949},
		{Title: "Fahrenheit 451", Author: "Ray Bradbury", PublicationYear: 1953},
	}
}
