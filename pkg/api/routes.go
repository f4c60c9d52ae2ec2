// Route registration for the book API.

package api

import (
	"net/http"
)

// registerRoutes sets up all API routes.
func (a *API) registerRoutes(mux *http.ServeMux) {
	// Health check and status
	mux.HandleFunc("GET /health", a.handleHealth)
	mux.HandleFunc("GET /status", a.handleStatus)

	// Book collection
	mux.HandleFunc("GET /api/books", a.handleListBooks)
	mux.HandleFunc("POST /api/books", a.handleCreateBook)
	mux.HandleFunc("GET /api/books/{id}", a.handleGetBook)
	mux.HandleFunc("PUT /api/books/{id}", a.handleReplaceBook)
	mux.HandleFunc("PATCH /api/books/{id}", a.handleMergeBook)
	mux.HandleFunc("DELETE /api/books/{id}", a.handleDeleteBook)
}
