package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/promptlab-io/labhub/internal/template"
)

// ReconstructTemplateHandler recovers a {{KEY}} template from generated text
// and the parameter values that were substituted into it.
type ReconstructTemplateHandler struct{}

func (h *ReconstructTemplateHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	text, _ := args["text"].(string)
	if text == "" {
		return mcp.NewToolResultError("text parameter is required"), nil
	}
	params, _ := args["parameters"].(map[string]any)

	reconstructed := template.Reconstruct(text, params)
	payload := map[string]any{
		"template":   reconstructed,
		"parameters": template.ExtractParams(reconstructed),
	}
	return mcp.NewToolResultText(string(mustMarshal(payload))), nil
}
