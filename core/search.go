package core

import "strings"

// SearchQuery carries the optional search criteria. An empty or
// whitespace-only field means the criterion is absent; absent criteria never
// contribute a match. Criteria combine with OR, not AND:
//
//   - Author: case-insensitive substring match against the stored author
//   - Title: case-insensitive substring match against the stored title
//   - Category: exact match against the stored (normalized) category
type SearchQuery struct {
	Author   string
	Title    string
	Category string
}

// IsZero reports whether no criterion is active. Stores reject zero queries
// with an InvalidInputError rather than treating them as "match everything".
func (q SearchQuery) IsZero() bool {
	return strings.TrimSpace(q.Author) == "" &&
		strings.TrimSpace(q.Title) == "" &&
		strings.TrimSpace(q.Category) == ""
}

// Matches reports whether the book satisfies at least one active criterion.
// The category criterion is normalized (trim + lower-case) before the exact
// comparison, mirroring how categories are stored; an uncategorized book
// never matches a category criterion.
func (q SearchQuery) Matches(b Book) bool {
	if author := strings.TrimSpace(q.Author); author != "" {
		if strings.Contains(strings.ToLower(b.Author), strings.ToLower(author)) {
			return true
		}
	}
	if title := strings.TrimSpace(q.Title); title != "" {
		if strings.Contains(strings.ToLower(b.Title), strings.ToLower(title)) {
			return true
		}
	}
	if category := NormalizeCategory(q.Category); category != nil {
		if b.Category != nil && *b.Category == *category {
			return true
		}
	}
	return false
}
