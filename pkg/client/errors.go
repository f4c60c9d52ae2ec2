package client

import "errors"

var (
	// ErrNotFound indicates the server has no book with the given ID.
	ErrNotFound = errors.New("book not found")

	// ErrInvalidInput indicates the server rejected the request body.
	ErrInvalidInput = errors.New("invalid input")
)
