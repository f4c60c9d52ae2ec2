package storage

import (
	"sync"

	"github.com/google/uuid"

	"github.com/getbookd/bookd/pkg/book"
)

// InMemoryBookStore is a thread-safe in-memory implementation of BookStore.
// Books live in a slice so listing preserves insertion order; lookups are
// linear scans, which is fine at this collection size.
type InMemoryBookStore struct {
	mu    sync.RWMutex
	books []*book.Book
}

// NewInMemoryBookStore creates an empty InMemoryBookStore.
func NewInMemoryBookStore() *InMemoryBookStore {
	return &InMemoryBookStore{}
}

// List returns all stored books in insertion order.
func (s *InMemoryBookStore) List() []*book.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*book.Book, len(s.books))
	for i, b := range s.books {
		result[i] = b.Clone()
	}
	return result
}

// Get retrieves a book by ID. Returns ErrNotFound if no book matches.
func (s *InMemoryBookStore) Get(id string) (*book.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.books[i].Clone(), nil
	}
	return nil, ErrNotFound
}

// Create validates the draft, assigns a fresh ID, and appends the book.
func (s *InMemoryBookStore) Create(draft *book.Book) (*book.Book, error) {
	if err := validate(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b := draft.Clone()
	b.ID = uuid.NewString()
	s.books = append(s.books, b)
	return b.Clone(), nil
}

// Replace validates the draft and swaps the whole record at the position
// of id, keeping the existing ID. Returns ErrNotFound for an unknown id.
func (s *InMemoryBookStore) Replace(id string, draft *book.Book) (*book.Book, error) {
	if err := validate(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}

	b := draft.Clone()
	b.ID = id
	s.books[i] = b
	return b.Clone(), nil
}

// Merge shallow-merges the supplied fields onto the stored book. A field
// present in the input overwrites the stored value, including clearing
// title or author to empty. The id field is never overwritten; keys
// outside the book schema are ignored.
func (s *InMemoryBookStore) Merge(id string, fields map[string]any) (*book.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}

	b := s.books[i]
	if v, ok := fields["title"]; ok {
		b.Title, _ = v.(string)
	}
	if v, ok := fields["author"]; ok {
		b.Author, _ = v.(string)
	}
	if v, ok := fields["publicationYear"]; ok {
		b.PublicationYear = v
	}
	return b.Clone(), nil
}

// Delete removes a book by ID. Returns ErrNotFound for an unknown id.
func (s *InMemoryBookStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.books = append(s.books[:i], s.books[i+1:]...)
	return nil
}

// Count returns the number of stored books.
func (s *InMemoryBookStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}

// Seed bulk-inserts trusted records, assigning IDs but skipping validation.
func (s *InMemoryBookStore) Seed(books ...*book.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, draft := range books {
		b := draft.Clone()
		b.ID = uuid.NewString()
		s.books = append(s.books, b)
	}
}

// indexOf returns the position of the book with the given ID, or -1.
// Callers must hold the lock.
func (s *InMemoryBookStore) indexOf(id string) int {
	for i, b := range s.books {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// validate checks the required fields for create and replace. Whitespace-only
// values pass; only truly empty fields are rejected.
func validate(draft *book.Book) error {
	if draft.Title == "" {
		return ErrTitleRequired
	}
	if draft.Author == "" {
		return ErrAuthorRequired
	}
	return nil
}

// Ensure InMemoryBookStore implements BookStore.
var _ BookStore = (*InMemoryBookStore)(nil)
