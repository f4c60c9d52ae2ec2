package storage

import "errors"

var (
	// ErrNotFound is returned when no book with the given ID exists.
	ErrNotFound = errors.New("book not found")

	// ErrTitleRequired is returned when a create or replace is missing a title.
	ErrTitleRequired = errors.New("title is required")

	// ErrAuthorRequired is returned when a create or replace is missing an author.
	ErrAuthorRequired = errors.New("author is required")
)
