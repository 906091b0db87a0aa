// Package mcpserver exposes the document store as MCP tools over stdio or
// streamable HTTP transport. Handlers convert every store failure into a
// human-readable tool result; no Go error crosses the protocol boundary.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ceciliomichael/folder-structure-mcp/internal/apperr"
	"github.com/ceciliomichael/folder-structure-mcp/internal/docstore"
)

// separator frames each document section in read_docs output.
var separator = strings.Repeat("=", 50)

// Server wraps the MCP server with the docs-manager tools.
type Server struct {
	mcp   *server.MCPServer
	store *docstore.Store
}

// New creates a new MCP server with all docs-manager tools registered.
func New(store *docstore.Store) *Server {
	s := &Server{store: store}

	s.mcp = server.NewMCPServer(
		"docs-manager",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s.mcp.AddTool(mcp.NewTool("list_docs",
		mcp.WithDescription("List all documentation files available in the docs folder"),
	), s.listDocs)

	s.mcp.AddTool(mcp.NewTool("read_docs",
		mcp.WithDescription("Read content from one or more documentation files"),
		mcp.WithArray("filenames", mcp.Required(),
			mcp.Description("List of documentation filenames to read (without the path)"),
			mcp.WithStringItems(),
		),
	), s.readDocs)

	s.mcp.AddTool(mcp.NewTool("save_docs",
		mcp.WithDescription("Save content to a documentation file"),
		mcp.WithString("filename", mcp.Required(),
			mcp.Description("Name for the documentation file (will be converted to kebab-case if needed)")),
		mcp.WithString("content", mcp.Required(),
			mcp.Description("The content to save to the file")),
	), s.saveDocs)

	s.mcp.AddTool(mcp.NewTool("remove_docs",
		mcp.WithDescription("Remove a documentation file"),
		mcp.WithString("filename", mcp.Required(),
			mcp.Description("Name of the documentation file to remove")),
	), s.removeDocs)

	return s
}

// ServeStdio serves MCP requests on stdin/stdout until ctx is cancelled
// or stdin is closed.
func (s *Server) ServeStdio(ctx context.Context) error {
	return server.NewStdioServer(s.mcp).Listen(ctx, os.Stdin, os.Stdout)
}

// MCPServer returns the underlying server, for HTTP transport wiring and tests.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listDocs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := s.store.List()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(names) == 0 {
		return mcp.NewToolResultText("No documentation files found."), nil
	}

	var b strings.Builder
	b.WriteString("Available documentation files:\n\n")
	for _, name := range names {
		fmt.Fprintf(&b, "- %s\n", name)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// readDocs aggregates the requested documents in input order. A missing or
// unreadable file produces an inline notice for that name and the batch
// continues; it never aborts early.
func (s *Server) readDocs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filenames, err := req.RequireStringSlice("filenames")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(filenames) == 0 {
		return mcp.NewToolResultError("Error: No filenames provided."), nil
	}

	var b strings.Builder
	for _, name := range filenames {
		filename := docstore.Filename(name)
		data, readErr := s.store.Read(name)
		switch {
		case errors.Is(readErr, apperr.ErrNotFound):
			fmt.Fprintf(&b, "Error: File '%s' not found.\n\n", filename)
		case errors.Is(readErr, apperr.ErrInvalidName):
			fmt.Fprintf(&b, "Error: Invalid filename '%s'.\n\n", name)
		case readErr != nil:
			fmt.Fprintf(&b, "Error reading '%s': %v\n\n", filename, readErr)
		default:
			fmt.Fprintf(&b, "## %s\n\n%s\n\n%s\n\n", filename, data, separator)
		}
	}
	return mcp.NewToolResultText(strings.TrimSpace(b.String())), nil
}

func (s *Server) saveDocs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename, err := req.RequireString("filename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	saved, err := s.store.Save(filename, content)
	if errors.Is(err, apperr.ErrInvalidName) {
		return mcp.NewToolResultError(fmt.Sprintf("Error: Invalid filename '%s'.", filename)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error saving documentation: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Successfully saved documentation to %s in %s", saved, s.store.Root())), nil
}

func (s *Server) removeDocs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename, err := req.RequireString("filename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	target := docstore.Filename(filename)
	removeErr := s.store.Remove(filename)
	switch {
	case errors.Is(removeErr, apperr.ErrNotFound):
		return mcp.NewToolResultError(fmt.Sprintf("Error: File '%s' not found.", target)), nil
	case errors.Is(removeErr, apperr.ErrInvalidName):
		return mcp.NewToolResultError(fmt.Sprintf("Error: Invalid filename '%s'.", filename)), nil
	case removeErr != nil:
		return mcp.NewToolResultError(fmt.Sprintf("Error removing documentation: %v", removeErr)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Successfully removed %s from %s", target, s.store.Root())), nil
}
