// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the sutra corpus for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/arindamsaha1507/vyakarana/internal/apperr"
	"github.com/arindamsaha1507/vyakarana/internal/sutraservice"
)

// Server wraps the MCP server with corpus query tools.
type Server struct {
	mcp *server.MCPServer
	svc *sutraservice.Service
}

// New creates a new MCP server with all corpus tools registered.
func New(svc *sutraservice.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Vyakarana",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("get_sutra",
		mcp.WithDescription("Get a sutra with its full metadata: text, type classifications, "+
			"word analysis, and decoded anuvritti/adhikara backlinks."),
		mcp.WithString("ref", mcp.Required(), mcp.Description("Canonical reference of the sutra (e.g. 1.1.1)")),
	), s.getSutra)

	s.mcp.AddTool(mcp.NewTool("search_sutras",
		mcp.WithDescription("Full-text search through sutra text, transliteration, and sandhi text."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.searchSutras)

	s.mcp.AddTool(mcp.NewTool("list_pada",
		mcp.WithDescription("List the sutras of one pada (quarter) of an adhyaya (chapter)."),
		mcp.WithNumber("adhyaya", mcp.Required(), mcp.Description("Adhyaya number, 1-8")),
		mcp.WithNumber("pada", mcp.Required(), mcp.Description("Pada number, 1-4")),
	), s.listPada)

	s.mcp.AddTool(mcp.NewTool("get_carryover",
		mcp.WithDescription("Get the decoded carryover backlinks (anuvritti and adhikara) of a sutra, "+
			"each reference pointing to the earlier sutra the text is borrowed from."),
		mcp.WithString("ref", mcp.Required(), mcp.Description("Canonical reference of the sutra (e.g. 1.1.1)")),
	), s.getCarryover)

	// Resource: encoding format of the corpus annotation fields.
	s.mcp.AddResource(
		mcp.NewResource("vyakarana://encoding-format", "Corpus Encoding Format",
			mcp.WithResourceDescription("The delimiter-based encodings used by the corpus annotation fields."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readEncodingFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) getSutra(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := req.RequireString("ref")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	detail, err := s.svc.GetSutra(ctx, ref)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("sutra not found: %s", ref)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(detail, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) searchSutras(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results, err := s.svc.Search(ctx, query, 20)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listPada(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	adhyaya, err := req.RequireInt("adhyaya")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pada, err := req.RequireInt("pada")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	items, total, err := s.svc.ListSutras(ctx, 0, 0, adhyaya, pada)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if total == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("no sutras in %d.%d", adhyaya, pada)), nil
	}
	out, _ := json.MarshalIndent(items, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getCarryover(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := req.RequireString("ref")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	detail, err := s.svc.GetSutra(ctx, ref)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("sutra not found: %s", ref)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(map[string]any{
		"ref":       detail.Ref,
		"anuvritti": detail.Anuvritti,
		"adhikara":  detail.Adhikara,
	}, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readEncodingFormatResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "vyakarana://encoding-format",
			MIMEType: "text/markdown",
			Text:     EncodingFormatContract,
		},
	}, nil
}
