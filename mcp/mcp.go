package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/hupe1980/bookmesh/core"
	"github.com/hupe1980/bookmesh/internal/util"
	"github.com/hupe1980/bookmesh/logging"
)

// Options configures the tool server.
type Options struct {
	// ServerName is advertised to clients during initialization.
	ServerName string
	// Version is the advertised server version.
	Version string
	// Logger receives tool-call logs (defaults to NoOp).
	Logger logging.Logger
}

// ToolServer wraps a core.BookStore behind an MCP server. All state lives in
// the store; the tool server itself is safe for concurrent use.
type ToolServer struct {
	store  core.BookStore
	server *mcpserver.MCPServer
	opts   Options
}

// tool argument structs; schemas are derived from the json/description tags.
type addBookArgs struct {
	Title    string  `json:"title" description:"Title of the book (must be non-empty)"`
	Author   string  `json:"author" description:"Author of the book (must be non-empty)"`
	Category *string `json:"category,omitempty" description:"Optional category, stored lower-cased"`
}

type bookIDArgs struct {
	ID int `json:"book_id" description:"Identifier assigned when the book was added"`
}

type searchBooksArgs struct {
	Author   *string `json:"author,omitempty" description:"Case-insensitive substring match on author"`
	Title    *string `json:"title,omitempty" description:"Case-insensitive substring match on title"`
	Category *string `json:"category,omitempty" description:"Exact match on normalized category"`
}

// New builds a ToolServer exposing the store's operations as tools. The
// tool names match the original operation ids (add_book, get_all_books,
// get_book, delete_book, search_books).
func New(store core.BookStore, optFns ...func(o *Options)) *ToolServer {
	opts := Options{
		ServerName: "Books Server",
		Version:    "1.1.0",
		Logger:     logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	ts := &ToolServer{store: store, opts: opts}
	srv := mcpserver.NewMCPServer(
		opts.ServerName,
		opts.Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithInstructions("A simple book management server with categories."),
	)

	ts.register(srv, "add_book", "Add a new book to the library.", addBookArgs{}, ts.handleAddBook)
	ts.register(srv, "get_all_books", "List all books in the library.", struct{}{}, ts.handleGetAllBooks)
	ts.register(srv, "get_book", "Fetch a single book by its id.", bookIDArgs{}, ts.handleGetBook)
	ts.register(srv, "delete_book", "Remove a book by its id.", bookIDArgs{}, ts.handleDeleteBook)
	ts.register(srv, "search_books", "Search books by author, title and/or category; criteria combine with OR.", searchBooksArgs{}, ts.handleSearchBooks)

	ts.server = srv
	return ts
}

// Server returns the underlying MCP server, e.g. for stdio serving.
func (ts *ToolServer) Server() *mcpserver.MCPServer { return ts.server }

// HTTPHandler returns the streamable HTTP transport for mounting next to
// the regular routes (conventionally at /mcp).
func (ts *ToolServer) HTTPHandler() http.Handler {
	return mcpserver.NewStreamableHTTPServer(ts.server)
}

// register derives the schema from the args struct and wires the handler
// with schema validation and tool-call logging.
func (ts *ToolServer) register(
	srv *mcpserver.MCPServer,
	name, description string,
	args any,
	handler func(ctx context.Context, args map[string]any) (any, error),
) {
	schema := util.CreateSchema(args)
	raw, err := json.Marshal(schema)
	if err != nil {
		// schemas come from static structs; this cannot fail at runtime
		panic(fmt.Sprintf("mcp: marshaling schema for %s: %v", name, err))
	}

	srv.AddTool(mcpgo.NewToolWithRawSchema(name, description, raw), func(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		start := time.Now()
		callArgs := req.GetArguments()
		if callArgs == nil {
			callArgs = map[string]any{}
		}

		if err := util.ValidateParameters(callArgs, schema); err != nil {
			ts.opts.Logger.Warn("tool validation failed", "tool", name, "error", err.Error())
			return mcpgo.NewToolResultError(err.Error()), nil
		}

		result, err := handler(ctx, callArgs)
		if err != nil {
			ts.opts.Logger.Error("tool call failed", "tool", name, "error", err.Error(), "duration", time.Since(start).String())
			return mcpgo.NewToolResultError(err.Error()), nil
		}

		payload, err := json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("encoding %s result: %w", name, err)
		}
		ts.opts.Logger.Debug("tool call completed", "tool", name, "duration", time.Since(start).String())
		return mcpgo.NewToolResultText(string(payload)), nil
	})
}

func (ts *ToolServer) handleAddBook(_ context.Context, args map[string]any) (any, error) {
	title, _ := args["title"].(string)
	author, _ := args["author"].(string)
	category, _ := args["category"].(string)

	id, err := ts.store.Add(title, author, category)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"message": fmt.Sprintf("Book added successfully with ID %d", id),
		"id":      id,
	}, nil
}

func (ts *ToolServer) handleGetAllBooks(_ context.Context, _ map[string]any) (any, error) {
	return ts.store.ListAll(), nil
}

func (ts *ToolServer) handleGetBook(_ context.Context, args map[string]any) (any, error) {
	id, err := intArg(args, "book_id")
	if err != nil {
		return nil, err
	}
	return ts.store.Get(id)
}

func (ts *ToolServer) handleDeleteBook(_ context.Context, args map[string]any) (any, error) {
	id, err := intArg(args, "book_id")
	if err != nil {
		return nil, err
	}
	if err := ts.store.Delete(id); err != nil {
		return nil, err
	}
	return map[string]any{
		"message": fmt.Sprintf("Book with ID %d removed successfully", id),
	}, nil
}

func (ts *ToolServer) handleSearchBooks(_ context.Context, args map[string]any) (any, error) {
	author, _ := args["author"].(string)
	title, _ := args["title"].(string)
	category, _ := args["category"].(string)

	return ts.store.Search(core.SearchQuery{Author: author, Title: title, Category: category})
}

// intArg extracts an integer argument; JSON decoding delivers numbers as
// float64, schema validation has already rejected non-integral values.
func intArg(args map[string]any, name string) (int, error) {
	switch v := args[name].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, &util.ValidationError{Field: name, Value: v, Message: "expected an integer"}
	}
}
