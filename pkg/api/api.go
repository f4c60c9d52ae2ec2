// Package api exposes the REST API for the book catalog.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/getbookd/bookd/internal/storage"
	"github.com/getbookd/bookd/pkg/logging"
)

const shutdownTimeout = 5 * time.Second

// API serves the book catalog over HTTP.
type API struct {
	store      storage.BookStore
	httpServer *http.Server
	handler    http.Handler
	port       int
	startTime  time.Time
	log        *slog.Logger
	version    string
}

// Option configures an API.
type Option func(*API)

// WithStore sets the book store. Defaults to an empty in-memory store.
func WithStore(s storage.BookStore) Option {
	return func(a *API) {
		a.store = s
	}
}

// WithLogger sets the operational logger. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *API) {
		if log != nil {
			a.log = log
		}
	}
}

// WithVersion sets the version string reported by the status endpoint.
func WithVersion(version string) Option {
	return func(a *API) {
		a.version = version
	}
}

// New creates an API listening on the given port once started.
func New(port int, opts ...Option) *API {
	a := &API{
		port: port,
		log:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.store == nil {
		a.store = storage.NewInMemoryBookStore()
	}

	mux := http.NewServeMux()
	a.registerRoutes(mux)
	a.handler = a.withMiddleware(mux)

	a.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return a
}

// Handler returns the fully wrapped HTTP handler. Used by tests to serve
// the API without binding a port.
func (a *API) Handler() http.Handler {
	return a.handler
}

// Port returns the configured listen port.
func (a *API) Port() int {
	return a.port
}

// Start starts the API server in the background.
func (a *API) Start() error {
	a.startTime = time.Now()

	a.log.Info("starting book API", "port", a.port)
	go func() {
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("book API error", "error", err)
		}
	}()
	return nil
}

// Stop gracefully shuts down the API server.
func (a *API) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return a.httpServer.Shutdown(ctx)
}

// Uptime returns the seconds since Start.
func (a *API) Uptime() float64 {
	if a.startTime.IsZero() {
		return 0
	}
	return time.Since(a.startTime).Seconds()
}
