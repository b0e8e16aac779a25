// Package server is the HTTP adapter over core.BookStore. It translates
// verbs and paths onto the five store operations, shapes JSON requests and
// responses, and maps the two recoverable error kinds onto status codes
// (invalid input -> 400, not found -> 404). Routing, CORS and request-id
// middleware live here; no data or control logic does.
//
// Route table:
//
//	POST   /books            add a book
//	GET    /books            list all books
//	GET    /books/id/{id}    fetch one book
//	DELETE /books/id/{id}    delete one book
//	GET    /books/search     search by author/title/category query params
package server
