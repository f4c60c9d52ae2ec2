package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/getbookd/bookd/internal/storage"
	"github.com/getbookd/bookd/pkg/book"
	"github.com/getbookd/bookd/pkg/httputil"
)

// bookDraft is the decoded body of POST and PUT requests. Fields outside
// the schema are dropped by the decoder, which is what makes PUT a total
// replacement rather than a merge.
type bookDraft struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationYear any    `json:"publicationYear"`
}

func (d *bookDraft) toBook() *book.Book {
	return &book.Book{
		Title:           d.Title,
		Author:          d.Author,
		PublicationYear: d.PublicationYear,
	}
}

// handleHealth handles GET /health.
func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteOK(w, HealthResponse{
		Status: "ok",
		Uptime: a.Uptime(),
	})
}

// handleStatus handles GET /status.
func (a *API) handleStatus(w http.ResponseWriter, r *http.Request) {
	version := a.version
	if version == "" {
		version = "dev"
	}

	httputil.WriteOK(w, StatusResponse{
		Status:    "ok",
		Port:      a.port,
		Uptime:    a.Uptime(),
		BookCount: a.store.Count(),
		Version:   version,
	})
}

// handleListBooks handles GET /api/books.
func (a *API) handleListBooks(w http.ResponseWriter, r *http.Request) {
	books := a.store.List()
	if books == nil {
		books = []*book.Book{}
	}
	httputil.WriteOK(w, books)
}

// handleGetBook handles GET /api/books/{id}.
func (a *API) handleGetBook(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	b, err := a.store.Get(id)
	if err != nil {
		a.writeStoreError(w, err, "get", id)
		return
	}
	httputil.WriteOK(w, b)
}

// handleCreateBook handles POST /api/books.
func (a *API) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var draft bookDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		httputil.WriteBadRequest(w, "invalid JSON in request body")
		return
	}

	b, err := a.store.Create(draft.toBook())
	if err != nil {
		a.writeStoreError(w, err, "create", "")
		return
	}

	a.log.Info("book created", "id", b.ID, "title", b.Title)
	httputil.WriteCreated(w, b)
}

// handleReplaceBook handles PUT /api/books/{id}.
func (a *API) handleReplaceBook(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var draft bookDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		httputil.WriteBadRequest(w, "invalid JSON in request body")
		return
	}

	b, err := a.store.Replace(id, draft.toBook())
	if err != nil {
		a.writeStoreError(w, err, "update", id)
		return
	}

	a.log.Info("book replaced", "id", b.ID)
	httputil.WriteOK(w, b)
}

// handleMergeBook handles PATCH /api/books/{id}.
func (a *API) handleMergeBook(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		httputil.WriteBadRequest(w, "invalid JSON in request body")
		return
	}

	b, err := a.store.Merge(id, fields)
	if err != nil {
		a.writeStoreError(w, err, "update", id)
		return
	}

	a.log.Info("book patched", "id", b.ID)
	httputil.WriteOK(w, b)
}

// handleDeleteBook handles DELETE /api/books/{id}.
func (a *API) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := a.store.Delete(id); err != nil {
		a.writeStoreError(w, err, "delete", id)
		return
	}

	a.log.Info("book deleted", "id", id)
	httputil.WriteNoContent(w)
}

// writeStoreError maps store errors to HTTP responses. Not-found messages
// name the id and the attempted operation.
func (a *API) writeStoreError(w http.ResponseWriter, err error, op, id string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		httputil.WriteNotFound(w, fmt.Sprintf("cannot %s: no book with id %q", op, id))
	case errors.Is(err, storage.ErrTitleRequired), errors.Is(err, storage.ErrAuthorRequired):
		httputil.WriteBadRequest(w, err.Error())
	default:
		a.log.Error("store operation failed", "operation", op, "id", id, "error", err)
		httputil.WriteError(w, http.StatusInternalServerError, "operation failed")
	}
}
