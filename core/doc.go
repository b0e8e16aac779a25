// Package core provides the foundational domain types and interfaces used by
// BookMesh. It defines the core abstractions for:
//
//   - Book (the stored record: id, title, author, optional category)
//   - BookStore (the five-operation contract: Add, Get, ListAll, Delete, Search)
//   - SearchQuery (the OR-combined search criteria and their matching rules)
//   - The two recoverable error kinds (invalid input, not found)
//
// The package intentionally keeps implementation concerns (storage backends,
// transport adapters, tool discovery) out of scope, exposing small interfaces
// so that backends and surfaces can be swapped without touching calling code.
package core
