package mcp

import (
	"context"
	"log"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/promptlab-io/labhub/internal/db"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
	DB      *db.Database
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"labhub-server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	toolDefinitions := map[string]mcp.Tool{
		"diff_prompts": mcp.NewTool("diff_prompts",
			mcp.WithDescription("Compute a line-level diff between two prompt texts. Returns tagged lines (unchanged/added/removed) plus summary statistics."),
			mcp.WithString("old_text",
				mcp.Description("Previous prompt text"),
			),
			mcp.WithString("new_text",
				mcp.Description("Current prompt text"),
			),
		),
		"reconstruct_template": mcp.NewTool("reconstruct_template",
			mcp.WithDescription("Recover a {{PARAM}} template from generated text and the parameter values substituted into it. Longer values are replaced first."),
			mcp.WithString("text",
				mcp.Required(),
				mcp.Description("Generated text carrying concrete parameter values"),
			),
			mcp.WithObject("parameters",
				mcp.Description("Mapping of parameter name to substituted value"),
			),
		),
		"get_session": mcp.NewTool("get_session",
			mcp.WithDescription("Retrieve a prompt-lab session by id, including its current system prompt and status."),
			mcp.WithString("session_id",
				mcp.Required(),
				mcp.Description("Session identifier"),
			),
		),
		"list_prompt_versions": mcp.NewTool("list_prompt_versions",
			mcp.WithDescription("List the cached prompt versions of a lab with scores and token counts, oldest first."),
			mcp.WithString("lab_id",
				mcp.Required(),
				mcp.Description("Prompt lab identifier"),
			),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool := toolDefinitions[name]
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
		DB:      cfg.Database,
	}
}

func (s *Server) Close() {
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			log.Printf("error closing database: %v", err)
		}
	}
}
