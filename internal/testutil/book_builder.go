package testutil

import (
	"testing"

	"github.com/hupe1980/bookmesh/core"
)

// BookBuilder assembles book fixtures with sensible defaults.
type BookBuilder struct {
	title    string
	author   string
	category string
}

// NewBookBuilder creates a builder preloaded with a valid default book.
func NewBookBuilder() *BookBuilder {
	return &BookBuilder{title: "Dune", author: "Frank Herbert", category: "sci-fi"}
}

// WithTitle overrides the title.
func (b *BookBuilder) WithTitle(title string) *BookBuilder {
	b.title = title
	return b
}

// WithAuthor overrides the author.
func (b *BookBuilder) WithAuthor(author string) *BookBuilder {
	b.author = author
	return b
}

// WithCategory overrides the category ("" means uncategorized).
func (b *BookBuilder) WithCategory(category string) *BookBuilder {
	b.category = category
	return b
}

// AddTo stores the fixture, failing the test on error, and returns the id.
func (b *BookBuilder) AddTo(t *testing.T, store core.BookStore) int {
	t.Helper()
	id, err := store.Add(b.title, b.author, b.category)
	if err != nil {
		t.Fatalf("seeding book failed: %v", err)
	}
	return id
}

// SeedLibrary adds the canonical two-book fixture (Dune / Hobbit) and
// returns their ids.
func SeedLibrary(t *testing.T, store core.BookStore) (duneID, hobbitID int) {
	t.Helper()
	duneID = NewBookBuilder().AddTo(t, store)
	hobbitID = NewBookBuilder().
		WithTitle("Hobbit").
		WithAuthor("J.R.R. Tolkien").
		WithCategory("fantasy").
		AddTo(t, store)
	return duneID, hobbitID
}
