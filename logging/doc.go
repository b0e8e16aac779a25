// Package logging provides a minimal logging interface and adapters for BookMesh.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the server and store wiring use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - BookMeshLogger with contextual helpers (component, request id) and
//     domain specific helpers for HTTP requests, store operations and tool calls
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	srv := server.New(store, func(o *server.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor lock-in
// while supporting structured logging where available.
package logging
