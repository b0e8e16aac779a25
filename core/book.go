package core

import "strings"

// Book is a single stored book record. The ID is assigned by the store and is
// never client-supplied. Title and author are stored trimmed and are never
// empty. Category is optional: when present it is stored trimmed and
// lower-cased, when absent it is nil (never an empty string), which encodes
// to null in JSON.
type Book struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Author   string  `json:"author"`
	Category *string `json:"category"`
}

// Clone returns a copy of the book with its own category pointer so callers
// cannot mutate store-internal state through the returned value.
func (b Book) Clone() Book {
	cp := b
	if b.Category != nil {
		c := *b.Category
		cp.Category = &c
	}
	return cp
}

// CategoryValue returns the stored category or "" when absent.
func (b Book) CategoryValue() string {
	if b.Category == nil {
		return ""
	}
	return *b.Category
}

// NormalizeCategory applies the category normalization rule: trim whitespace
// and lower-case. Empty or whitespace-only input means "uncategorized" and
// yields nil.
func NormalizeCategory(s string) *string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil
	}
	return &s
}
