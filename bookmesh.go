// Package bookmesh provides a high-level façade over the record store and
// its surfaces (HTTP routes, tool discovery & logging) enabling rapid
// construction of a book management service. Most applications interact
// with this package by:
//  1. Creating a BookMesh via New() (optionally overriding the default in-memory store)
//  2. Using the five operations directly (AddBook, GetBook, ListBooks, DeleteBook, SearchBooks)
//  3. Mounting Handler() on an http.Server to expose the HTTP and MCP surfaces
//
// The façade delegates storage to a core.BookStore while keeping setup and
// usage ergonomics concise. All defaults are safe for local development and
// testing; deployments typically supply a structured logger and explicit
// CORS origins.
package bookmesh

import (
	"net/http"

	"github.com/hupe1980/bookmesh/core"
	"github.com/hupe1980/bookmesh/logging"
	"github.com/hupe1980/bookmesh/mcp"
	"github.com/hupe1980/bookmesh/server"
	"github.com/hupe1980/bookmesh/shelf"
)

// Options configures the BookMesh instance.
type Options struct {
	// Store holds the records (defaults to the in-memory shelf if not provided).
	Store core.BookStore

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger

	// CORSAllowedOrigins lists origins the HTTP surface accepts; ["*"]
	// allows any origin.
	CORSAllowedOrigins []string

	// EnableMCP mounts the tool-discovery surface at /mcp.
	EnableMCP bool
}

// BookMesh is the high-level façade aggregating the store and its surfaces.
type BookMesh struct {
	opts  Options
	store core.BookStore
}

// New creates a new BookMesh instance with optional overrides. Any unset
// service is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *BookMesh {
	opts := Options{
		Store:              shelf.NewInMemoryStore(),
		Logger:             logging.NoOpLogger{},
		CORSAllowedOrigins: []string{"*"},
		EnableMCP:          true,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &BookMesh{opts: opts, store: opts.Store}
}

// Store returns the underlying record store.
func (m *BookMesh) Store() core.BookStore { return m.store }

// AddBook validates, normalizes and stores a new record, returning its id.
func (m *BookMesh) AddBook(title, author, category string) (int, error) {
	return m.store.Add(title, author, category)
}

// GetBook returns the record with the given id.
func (m *BookMesh) GetBook(id int) (core.Book, error) { return m.store.Get(id) }

// ListBooks returns all current records in insertion order.
func (m *BookMesh) ListBooks() []core.Book { return m.store.ListAll() }

// DeleteBook removes the record with the given id.
func (m *BookMesh) DeleteBook(id int) error { return m.store.Delete(id) }

// SearchBooks returns the records matching any active criterion.
func (m *BookMesh) SearchBooks(query core.SearchQuery) ([]core.Book, error) {
	return m.store.Search(query)
}

// Handler composes the HTTP routes with the optional MCP mount into a
// single http.Handler ready for ListenAndServe.
func (m *BookMesh) Handler() http.Handler {
	srv := server.New(m.store, func(o *server.Options) {
		o.Logger = m.opts.Logger
		o.AllowedOrigins = m.opts.CORSAllowedOrigins
	})

	if !m.opts.EnableMCP {
		return srv.Handler()
	}

	tools := mcp.New(m.store, func(o *mcp.Options) {
		o.Logger = m.opts.Logger
	})

	mux := http.NewServeMux()
	mux.Handle("/mcp", tools.HTTPHandler())
	mux.Handle("/", srv.Handler())
	return mux
}
