package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/promptlab-io/labhub/internal/mcp/tools/types"
	"github.com/promptlab-io/labhub/internal/textdiff"
)

// DiffPromptsHandler computes a line diff between two prompt texts. The diff
// engine is pure, so this handler carries no service dependency.
type DiffPromptsHandler struct{}

func (h *DiffPromptsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	oldText, _ := args["old_text"].(string)
	newText, _ := args["new_text"].(string)
	if oldText == "" && newText == "" {
		return mcp.NewToolResultError("at least one of old_text or new_text is required"), nil
	}

	lines := textdiff.Generate(oldText, newText)
	result := types.DiffResult{Lines: lines, Stats: textdiff.Summarize(lines)}
	return mcp.NewToolResultText(string(mustMarshal(result))), nil
}
