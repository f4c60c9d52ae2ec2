// Package client is an HTTP client for the book catalog API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/getbookd/bookd/pkg/book"
)

// Client talks to a running bookd server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the server at baseURL, e.g. "http://localhost:3000".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Health checks if the server is reachable and healthy.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

// ListBooks returns all books in insertion order.
func (c *Client) ListBooks(ctx context.Context) ([]*book.Book, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/books", nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	var books []*book.Book
	if err := json.NewDecoder(resp.Body).Decode(&books); err != nil {
		return nil, fmt.Errorf("failed to decode books: %w", err)
	}
	return books, nil
}

// GetBook returns the book with the given ID.
func (c *Client) GetBook(ctx context.Context, id string) (*book.Book, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/books/"+id, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}
	return decodeBook(resp)
}

// CreateBook creates a book. The draft's ID is ignored by the server.
func (c *Client) CreateBook(ctx context.Context, draft *book.Book) (*book.Book, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/books", draft)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return nil, c.parseError(resp)
	}
	return decodeBook(resp)
}

// ReplaceBook fully replaces the book with the given ID.
func (c *Client) ReplaceBook(ctx context.Context, id string, draft *book.Book) (*book.Book, error) {
	resp, err := c.do(ctx, http.MethodPut, "/api/books/"+id, draft)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}
	return decodeBook(resp)
}

// MergeBook applies a partial update to the book with the given ID.
func (c *Client) MergeBook(ctx context.Context, id string, fields map[string]any) (*book.Book, error) {
	resp, err := c.do(ctx, http.MethodPatch, "/api/books/"+id, fields)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}
	return decodeBook(resp)
}

// DeleteBook removes the book with the given ID.
func (c *Client) DeleteBook(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/api/books/"+id, nil)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent {
		return c.parseError(resp)
	}
	return nil
}

// do issues a request with an optional JSON body.
func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// parseError turns an error response into a typed error carrying the
// server's message.
func (c *Client) parseError(resp *http.Response) error {
	var errResp struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&errResp)
	if errResp.Message == "" {
		errResp.Message = fmt.Sprintf("status %d", resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, errResp.Message)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidInput, errResp.Message)
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, errResp.Message)
	}
}

func decodeBook(resp *http.Response) (*book.Book, error) {
	var b book.Book
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		return nil, fmt.Errorf("failed to decode book: %w", err)
	}
	return &b, nil
}
