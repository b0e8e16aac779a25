package shelf

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hupe1980/bookmesh/core"
)

// InMemoryStore is a volatile BookStore implementation storing records in a
// process local map. It is safe for concurrent access and is empty at
// process start; all data is lost when the process ends. Each returned book
// is cloned to prevent external mutation of internal state.
//
// Ids come from a strictly monotonic counter, so an id is never reused
// within the store's lifetime, even after deletion. Insertion order is
// tracked explicitly (Go maps iterate in random order) so ListAll and
// Search enumerate records deterministically.
type InMemoryStore struct {
	mu     sync.RWMutex
	books  map[int]*core.Book
	order  []int // ids in insertion order
	nextID int
}

// Compile-time interface assertion.
var _ core.BookStore = (*InMemoryStore)(nil)

// NewInMemoryStore constructs an empty in-memory book store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{books: make(map[int]*core.Book)}
}

// Add validates and normalizes the input, assigns the next id and stores
// the record. Validation failures leave the store untouched.
func (s *InMemoryStore) Add(title, author, category string) (int, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	if title == "" {
		return 0, &core.InvalidInputError{Field: "title", Message: "must be non-empty"}
	}
	if author == "" {
		return 0, &core.InvalidInputError{Field: "author", Message: "must be non-empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.books[id] = &core.Book{
		ID:       id,
		Title:    title,
		Author:   author,
		Category: core.NormalizeCategory(category),
	}
	s.order = append(s.order, id)
	return id, nil
}

// Get returns a clone of the record with the given id.
func (s *InMemoryStore) Get(id int) (core.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	book, ok := s.books[id]
	if !ok {
		return core.Book{}, fmt.Errorf("book with id %d: %w", id, core.ErrNotFound)
	}
	return book.Clone(), nil
}

// ListAll returns clones of all current records in insertion order.
func (s *InMemoryStore) ListAll() []core.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Book, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.books[id].Clone())
	}
	return result
}

// Delete removes the record with the given id. The id is never reassigned
// by subsequent Adds.
func (s *InMemoryStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[id]; !ok {
		return fmt.Errorf("book with id %d: %w", id, core.ErrNotFound)
	}
	delete(s.books, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Search performs a linear scan returning clones of the records matching
// any active criterion, in insertion order.
func (s *InMemoryStore) Search(query core.SearchQuery) ([]core.Book, error) {
	if query.IsZero() {
		return nil, &core.InvalidInputError{
			Field:   "query",
			Message: "at least one of 'author', 'title' or 'category' must be provided",
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	results := make([]core.Book, 0)
	for _, id := range s.order {
		if query.Matches(*s.books[id]) {
			results = append(results, s.books[id].Clone())
		}
	}
	return results, nil
}

// Len returns the number of records currently held.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}
