package server

import (
	"encoding/json"
	"net/http"

	"github.com/hupe1980/bookmesh/core"
	"github.com/hupe1980/bookmesh/logging"
)

// Options configures the HTTP server adapter.
type Options struct {
	// Logger receives access and store-operation logs (defaults to NoOp).
	Logger logging.Logger
	// AllowedOrigins lists CORS origins; ["*"] allows any origin.
	AllowedOrigins []string
}

// Server exposes a core.BookStore over HTTP. It holds no state of its own
// beyond the store handle and is safe for concurrent use if the store is.
type Server struct {
	store core.BookStore
	opts  Options
}

// New creates a Server around the given store with optional overrides.
func New(store core.BookStore, optFns ...func(o *Options)) *Server {
	opts := Options{
		Logger:         logging.NoOpLogger{},
		AllowedOrigins: []string{"*"},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Server{store: store, opts: opts}
}

// Handler returns the fully wired http.Handler: routes plus request-id,
// access-log and CORS middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /books", s.handleAddBook)
	mux.HandleFunc("GET /books", s.handleListBooks)
	mux.HandleFunc("GET /books/search", s.handleSearchBooks)
	mux.HandleFunc("GET /books/id/{id}", s.handleGetBook)
	mux.HandleFunc("DELETE /books/id/{id}", s.handleDeleteBook)

	var h http.Handler = mux
	h = withCORS(s.opts.AllowedOrigins, h)
	h = withAccessLog(s.opts.Logger, h)
	h = withRequestID(h)
	return h
}

// writeJSON encodes v with the given status. Encoding failures are logged
// but cannot be reported to the client once the header is written.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.opts.Logger.Error("response encoding failed", "error", err.Error())
	}
}

// errorBody is the JSON error shape: {"detail": "..."}.
type errorBody struct {
	Detail string `json:"detail"`
}

// writeError emits the JSON error body with the given status.
func (s *Server) writeError(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, errorBody{Detail: detail})
}

// writeStoreError maps the store's two error kinds onto status codes.
func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case core.IsInvalidInput(err):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case core.IsNotFound(err):
		s.writeError(w, http.StatusNotFound, err.Error())
	default:
		s.writeError(w, http.StatusInternalServerError, err.Error())
	}
}
