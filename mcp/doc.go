// Package mcp exposes the book store's five operations as Model Context
// Protocol tools so automated agents can discover and call them. It mirrors
// the HTTP surface one-to-one (same operation ids, same error semantics:
// invalid input and missing ids become tool errors, never protocol faults)
// and mounts as a streamable HTTP handler next to the regular routes.
//
// Tool input schemas are generated from Go argument structs and every call
// is validated against its schema before it reaches the store.
package mcp
