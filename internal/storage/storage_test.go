package storage

import (
	"errors"
	"testing"

	"github.com/getbookd/bookd/pkg/book"
)

// --- Helpers ---

func newDraft(title, author string, year any) *book.Book {
	return &book.Book{Title: title, Author: author, PublicationYear: year}
}

func seededStore(t *testing.T) *InMemoryBookStore {
	t.Helper()
	s := NewInMemoryBookStore()
	s.Seed(book.SeedBooks()...)
	return s
}

// --- InMemoryBookStore tests ---

func TestNewInMemoryBookStore(t *testing.T) {
	s := NewInMemoryBookStore()
	if s == nil {
		t.Fatal("NewInMemoryBookStore() returned nil")
	}
	if s.Count() != 0 {
		t.Errorf("new store Count() = %d, want 0", s.Count())
	}
}

func TestCreateAndGet(t *testing.T) {
	s := NewInMemoryBookStore()

	created, err := s.Create(newDraft("Dune", "Frank Herbert", nil))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == "" {
		t.Fatal("Create() assigned empty ID")
	}
	if created.PublicationYear != nil {
		t.Errorf("Create() PublicationYear = %v, want nil", created.PublicationYear)
	}

	got, err := s.Get(created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ID != created.ID || got.Title != created.Title || got.Author != created.Author {
		t.Errorf("Get() = %+v, want %+v", got, created)
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		draft   *book.Book
		wantErr error
	}{
		{"missing title", newDraft("", "Frank Herbert", nil), ErrTitleRequired},
		{"missing author", newDraft("Dune", "", nil), ErrAuthorRequired},
		{"missing both reports title first", newDraft("", "", nil), ErrTitleRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seededStore(t)
			before := s.Count()

			if _, err := s.Create(tt.draft); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Create() error = %v, want %v", err, tt.wantErr)
			}
			if s.Count() != before {
				t.Errorf("Count() = %d after failed Create, want %d", s.Count(), before)
			}
		})
	}
}

func TestCreateIgnoresDraftID(t *testing.T) {
	s := NewInMemoryBookStore()
	draft := newDraft("Dune", "Frank Herbert", 1965)
	draft.ID = "chosen-by-caller"

	created, err := s.Create(draft)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == "chosen-by-caller" {
		t.Error("Create() kept the caller-supplied ID")
	}
}

func TestCreateGeneratesUniqueIDs(t *testing.T) {
	s := NewInMemoryBookStore()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		created, err := s.Create(newDraft("Dune", "Frank Herbert", nil))
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if seen[created.ID] {
			t.Fatalf("duplicate ID %q", created.ID)
		}
		seen[created.ID] = true
	}
}

func TestListInsertionOrder(t *testing.T) {
	s := NewInMemoryBookStore()
	titles := []string{"A", "B", "C", "D"}
	for _, title := range titles {
		if _, err := s.Create(newDraft(title, "author", nil)); err != nil {
			t.Fatalf("Create(%q) error = %v", title, err)
		}
	}

	books := s.List()
	if len(books) != len(titles) {
		t.Fatalf("List() returned %d books, want %d", len(books), len(titles))
	}
	for i, b := range books {
		if b.Title != titles[i] {
			t.Errorf("List()[%d].Title = %q, want %q", i, b.Title, titles[i])
		}
	}
}

func TestListCopies(t *testing.T) {
	s := seededStore(t)

	books := s.List()
	books[0].Title = "mutated"

	again := s.List()
	if again[0].Title == "mutated" {
		t.Error("List() exposed internal state to caller mutation")
	}
}

func TestGetNotFound(t *testing.T) {
	s := seededStore(t)
	if _, err := s.Get("no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestReplace(t *testing.T) {
	s := NewInMemoryBookStore()
	created, _ := s.Create(newDraft("Dune", "Frank Herbert", 1965))

	replaced, err := s.Replace(created.ID, newDraft("Dune Messiah", "Frank Herbert", nil))
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if replaced.ID != created.ID {
		t.Errorf("Replace() changed ID: %q -> %q", created.ID, replaced.ID)
	}
	if replaced.Title != "Dune Messiah" {
		t.Errorf("Replace() Title = %q, want %q", replaced.Title, "Dune Messiah")
	}
	if replaced.PublicationYear != nil {
		t.Errorf("Replace() kept prior PublicationYear %v, want nil", replaced.PublicationYear)
	}
	if s.Count() != 1 {
		t.Errorf("Count() = %d after Replace, want 1", s.Count())
	}
}

func TestReplaceNotFound(t *testing.T) {
	s := seededStore(t)
	if _, err := s.Replace("no-such-id", newDraft("Dune", "Frank Herbert", nil)); !errors.Is(err, ErrNotFound) {
		t.Errorf("Replace() error = %v, want ErrNotFound", err)
	}
}

func TestReplaceValidation(t *testing.T) {
	s := NewInMemoryBookStore()
	created, _ := s.Create(newDraft("Dune", "Frank Herbert", 1965))

	if _, err := s.Replace(created.ID, newDraft("", "Frank Herbert", nil)); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("Replace() error = %v, want ErrTitleRequired", err)
	}

	got, _ := s.Get(created.ID)
	if got.Title != "Dune" {
		t.Errorf("failed Replace mutated the record: Title = %q", got.Title)
	}
}

func TestMerge(t *testing.T) {
	s := NewInMemoryBookStore()
	created, _ := s.Create(newDraft("Dune", "Frank Herbert", nil))

	merged, err := s.Merge(created.ID, map[string]any{"publicationYear": 1965})
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if merged.PublicationYear != 1965 {
		t.Errorf("Merge() PublicationYear = %v, want 1965", merged.PublicationYear)
	}
	if merged.Title != "Dune" || merged.Author != "Frank Herbert" {
		t.Errorf("Merge() touched untouched fields: %+v", merged)
	}
}

func TestMergeNeverChangesID(t *testing.T) {
	s := NewInMemoryBookStore()
	created, _ := s.Create(newDraft("Dune", "Frank Herbert", nil))

	merged, err := s.Merge(created.ID, map[string]any{"id": "hijacked", "title": "Dune Messiah"})
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if merged.ID != created.ID {
		t.Errorf("Merge() changed ID: %q -> %q", created.ID, merged.ID)
	}
	if merged.Title != "Dune Messiah" {
		t.Errorf("Merge() Title = %q, want %q", merged.Title, "Dune Messiah")
	}
}

func TestMergeAllowsClearingRequiredFields(t *testing.T) {
	s := NewInMemoryBookStore()
	created, _ := s.Create(newDraft("Dune", "Frank Herbert", nil))

	merged, err := s.Merge(created.ID, map[string]any{"title": ""})
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if merged.Title != "" {
		t.Errorf("Merge() Title = %q, want empty", merged.Title)
	}
}

func TestMergeNotFound(t *testing.T) {
	s := seededStore(t)
	if _, err := s.Merge("no-such-id", map[string]any{"title": "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Merge() error = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	s := seededStore(t)
	books := s.List()
	before := len(books)

	if err := s.Delete(books[1].ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if s.Count() != before-1 {
		t.Errorf("Count() = %d after Delete, want %d", s.Count(), before-1)
	}

	// Deleting a non-last book preserves the relative order of the rest.
	rest := s.List()
	if rest[0].ID != books[0].ID || rest[1].ID != books[2].ID {
		t.Errorf("Delete() disturbed ordering: %v", rest)
	}

	if _, err := s.Get(books[1].ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete error = %v, want ErrNotFound", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	s := seededStore(t)
	if err := s.Delete("no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestSeed(t *testing.T) {
	s := NewInMemoryBookStore()
	s.Seed(book.SeedBooks()...)

	if s.Count() != 3 {
		t.Fatalf("Count() = %d after Seed, want 3", s.Count())
	}
	for _, b := range s.List() {
		if b.ID == "" {
			t.Errorf("seeded book %q has empty ID", b.Title)
		}
	}
}
