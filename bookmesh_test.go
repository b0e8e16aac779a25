package bookmesh

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hupe1980/bookmesh/core"
	"github.com/hupe1980/bookmesh/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacadeOperations(t *testing.T) {
	mesh := New()
	duneID, hobbitID := testutil.SeedLibrary(t, mesh.Store())

	book, err := mesh.GetBook(duneID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", book.Title)

	books, err := mesh.SearchBooks(core.SearchQuery{Author: "tolkien"})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, hobbitID, books[0].ID)

	require.NoError(t, mesh.DeleteBook(duneID))
	assert.Len(t, mesh.ListBooks(), 1)

	id, err := mesh.AddBook("Emma", "Jane Austen", "")
	require.NoError(t, err)
	assert.NotEqual(t, duneID, id)
}

func TestHandlerServesRoutes(t *testing.T) {
	mesh := New()
	testutil.NewBookBuilder().AddTo(t, mesh.Store())

	ts := httptest.NewServer(mesh.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/books")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var books []core.Book
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&books))
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
}

func TestHandlerWithoutMCP(t *testing.T) {
	mesh := New(func(o *Options) { o.EnableMCP = false })
	ts := httptest.NewServer(mesh.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/books")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
