package shelf

import (
	"reflect"
	"sync"
	"testing"

	"github.com/hupe1980/bookmesh/core"
)

func TestInMemoryStore_AddAndGet(t *testing.T) {
	store := NewInMemoryStore()
	id, err := store.Add("  Dune ", " Frank Herbert ", "Sci-Fi")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected first id 1, got %d", id)
	}
	book, err := store.Get(id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if book.Title != "Dune" || book.Author != "Frank Herbert" {
		t.Fatalf("expected trimmed fields, got %#v", book)
	}
	if book.Category == nil || *book.Category != "sci-fi" {
		t.Fatalf("expected normalized category 'sci-fi', got %#v", book.Category)
	}
	if book.ID != id {
		t.Fatalf("expected returned record to carry id %d, got %d", id, book.ID)
	}
}

func TestInMemoryStore_AddValidation(t *testing.T) {
	store := NewInMemoryStore()
	cases := []struct{ title, author string }{
		{"", "Author"},
		{"Title", ""},
		{"   ", "   "},
		{"\t\n", "Author"},
	}
	for _, c := range cases {
		if _, err := store.Add(c.title, c.author, ""); !core.IsInvalidInput(err) {
			t.Fatalf("Add(%q, %q): expected invalid input error, got %v", c.title, c.author, err)
		}
	}
	if store.Len() != 0 {
		t.Fatalf("rejected adds must not mutate the store, len=%d", store.Len())
	}
}

func TestInMemoryStore_CategoryAbsent(t *testing.T) {
	store := NewInMemoryStore()
	for _, category := range []string{"", "   "} {
		id, err := store.Add("Book", "Author", category)
		if err != nil {
			t.Fatalf("add failed: %v", err)
		}
		book, _ := store.Get(id)
		if book.Category != nil {
			t.Fatalf("expected absent category, got %q", *book.Category)
		}
	}
}

func TestInMemoryStore_GetDeleteNotFound(t *testing.T) {
	store := NewInMemoryStore()
	mustAdd(t, store, "Dune", "Frank Herbert", "sci-fi")

	if _, err := store.Get(99); !core.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := store.Delete(99); !core.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	// failed lookups leave the store unaffected
	if got := len(store.ListAll()); got != 1 {
		t.Fatalf("expected 1 record, got %d", got)
	}
}

func TestInMemoryStore_DeleteThenGet(t *testing.T) {
	store := NewInMemoryStore()
	id := mustAdd(t, store, "Hobbit", "J.R.R. Tolkien", "fantasy")
	if err := store.Delete(id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(id); !core.IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestInMemoryStore_IDsNeverReused(t *testing.T) {
	store := NewInMemoryStore()
	id1 := mustAdd(t, store, "One", "A", "")
	id2 := mustAdd(t, store, "Two", "B", "")
	if err := store.Delete(id1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	// the original count-based rule would hand out id2 again here
	id3 := mustAdd(t, store, "Three", "C", "")
	if id3 == id2 || id3 == id1 {
		t.Fatalf("expected fresh id, got %d (existing %d, deleted %d)", id3, id2, id1)
	}
	if id3 != 3 {
		t.Fatalf("expected monotonic id 3, got %d", id3)
	}
}

func TestInMemoryStore_ListAllOrderAndIdempotence(t *testing.T) {
	store := NewInMemoryStore()
	mustAdd(t, store, "One", "A", "")
	mustAdd(t, store, "Two", "B", "")
	mustAdd(t, store, "Three", "C", "")

	first := store.ListAll()
	second := store.ListAll()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("consecutive ListAll calls differ:\n%#v\n%#v", first, second)
	}
	for i, book := range first {
		if book.ID != i+1 {
			t.Fatalf("expected insertion order, got %#v", first)
		}
	}
}

func TestInMemoryStore_Search(t *testing.T) {
	store := NewInMemoryStore()
	duneID := mustAdd(t, store, "Dune", "Frank Herbert", "sci-fi")
	hobbitID := mustAdd(t, store, "Hobbit", "J.R.R. Tolkien", "fantasy")
	mustAdd(t, store, "Quest", "Someone", "fantasy-adventure")

	if _, err := store.Search(core.SearchQuery{}); !core.IsInvalidInput(err) {
		t.Fatalf("expected invalid input for empty query, got %v", err)
	}

	res, err := store.Search(core.SearchQuery{Author: "tolkien"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(res) != 1 || res[0].ID != hobbitID {
		t.Fatalf("expected only the Tolkien record, got %#v", res)
	}

	res, _ = store.Search(core.SearchQuery{Category: "sci-fi"})
	if len(res) != 1 || res[0].ID != duneID {
		t.Fatalf("expected only the sci-fi record, got %#v", res)
	}

	// substring applies to title, not category
	res, _ = store.Search(core.SearchQuery{Title: "o"})
	if len(res) != 1 || res[0].ID != hobbitID {
		t.Fatalf("expected only 'Hobbit' to contain 'o', got %#v", res)
	}
	res, _ = store.Search(core.SearchQuery{Category: "fantasy"})
	if len(res) != 1 || res[0].ID != hobbitID {
		t.Fatalf("category match must be exact, got %#v", res)
	}

	// no match is an empty result, not an error
	res, err = store.Search(core.SearchQuery{Author: "nobody"})
	if err != nil || len(res) != 0 {
		t.Fatalf("expected empty result, got %#v, %v", res, err)
	}
}

func TestInMemoryStore_CloneIsolation(t *testing.T) {
	store := NewInMemoryStore()
	id := mustAdd(t, store, "Dune", "Frank Herbert", "sci-fi")
	book, _ := store.Get(id)
	*book.Category = "changed"
	book.Title = "changed"
	again, _ := store.Get(id)
	if again.Title != "Dune" || *again.Category != "sci-fi" {
		t.Fatalf("expected copy isolation, got %#v", again)
	}
}

func TestInMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewInMemoryStore()
	wg := sync.WaitGroup{}
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := store.Add("Book", "Author", "category"); err != nil {
				t.Errorf("add error: %v", err)
			}
			store.ListAll()
			if _, err := store.Search(core.SearchQuery{Author: "auth"}); err != nil {
				t.Errorf("search error: %v", err)
			}
		}(i)
	}
	wg.Wait()
	if store.Len() != 25 {
		t.Fatalf("expected 25 records after concurrent adds, got %d", store.Len())
	}
	// ids must all be distinct
	seen := map[int]bool{}
	for _, b := range store.ListAll() {
		if seen[b.ID] {
			t.Fatalf("duplicate id %d", b.ID)
		}
		seen[b.ID] = true
	}
}

func mustAdd(t *testing.T, store *InMemoryStore, title, author, category string) int {
	t.Helper()
	id, err := store.Add(title, author, category)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	return id
}
