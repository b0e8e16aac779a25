package core

// BookStore defines the record-store contract: create, read, delete and
// search over the current set of books. Implementations own id assignment
// and field normalization; callers never supply ids or pre-normalized
// values. All operations are synchronous and non-blocking, and
// implementations used from concurrent transports must make each operation
// atomic (Add reads the current state to assign an id, so interleaving two
// mutations is unsafe).
type BookStore interface {
	// Add validates and normalizes the input, stores a new record and
	// returns its assigned id. Returns an InvalidInputError when title or
	// author is blank after trimming. An empty or whitespace-only category
	// is stored as absent.
	Add(title, author, category string) (int, error)

	// Get returns the record with the given id or an error wrapping
	// ErrNotFound.
	Get(id int) (Book, error)

	// ListAll returns all current records in insertion order. Never fails.
	ListAll() []Book

	// Delete removes the record with the given id or returns an error
	// wrapping ErrNotFound. Deleted ids are not reassigned.
	Delete(id int) error

	// Search returns the records matching any active criterion of the
	// query, in insertion order. Returns an InvalidInputError when the
	// query has no active criterion. An empty result is not an error.
	Search(query SearchQuery) ([]Book, error)
}
