package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/hupe1980/bookmesh/core"
)

// addBookRequest is the POST /books payload. A null or missing category is
// decoded as "" and stored as absent.
type addBookRequest struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

// addBookResponse confirms a successful add with the assigned id.
type addBookResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// messageResponse is a bare confirmation message.
type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleAddBook(w http.ResponseWriter, r *http.Request) {
	var req addBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	start := time.Now()
	id, err := s.store.Add(req.Title, req.Author, req.Category)
	s.logStoreOp("add", start, err)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, addBookResponse{
		Message: fmt.Sprintf("Book added successfully with ID %d", id),
		ID:      id,
	})
}

func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.ListAll())
}

func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := s.bookID(w, r)
	if !ok {
		return
	}
	book, err := s.store.Get(id)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, book)
}

func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := s.bookID(w, r)
	if !ok {
		return
	}
	start := time.Now()
	err := s.store.Delete(id)
	s.logStoreOp("delete", start, err)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Book with ID %d removed successfully", id),
	})
}

func (s *Server) handleSearchBooks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := core.SearchQuery{
		Author:   q.Get("author"),
		Title:    q.Get("title"),
		Category: q.Get("category"),
	}

	start := time.Now()
	books, err := s.store.Search(query)
	s.logStoreOp("search", start, err)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, books)
}

// bookID parses the {id} path segment, writing a 400 on non-integer input.
func (s *Server) bookID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid book id %q", r.PathValue("id")))
		return 0, false
	}
	return id, true
}

func (s *Server) logStoreOp(op string, start time.Time, err error) {
	if err != nil {
		s.opts.Logger.Debug("store operation rejected", "operation", op, "duration", time.Since(start).String(), "error", err.Error())
		return
	}
	s.opts.Logger.Debug("store operation completed", "operation", op, "duration", time.Since(start).String())
}
