// Package shelf contains concrete implementations of the core.BookStore.
// The interface itself (and the Book record) live in the core package to
// centralize domain contracts. Keeping only implementations here prevents
// higher level packages (server, mcp, façade) from depending on concrete
// storage.
//
// Add additional backends in sub-packages without changing any calling
// code – only the wiring layer needs to decide which implementation to
// instantiate.
package shelf
