package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/promptlab-io/labhub/internal/api"
	"github.com/promptlab-io/labhub/internal/mcp/tools/types"
)

type SessionService interface {
	GetSession(ctx context.Context, id string) (types.SessionResult, error)
}

type GetSessionHandler struct {
	Service SessionService
}

type apiSessionService struct {
	client *api.Client
}

func NewAPISessionService(client *api.Client) SessionService {
	return &apiSessionService{client: client}
}

func (s *apiSessionService) GetSession(ctx context.Context, id string) (types.SessionResult, error) {
	session, err := s.client.GetSession(ctx, id)
	if err != nil {
		return types.SessionResult{}, err
	}
	return types.SessionResult{
		ID:            session.ID,
		Name:          session.Name,
		Description:   session.Description,
		Status:        session.Status,
		InitialPrompt: session.InitialPrompt,
		CreatedAt:     session.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     session.UpdatedAt.Format(time.RFC3339),
	}, nil
}

func (h *GetSessionHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, _ := req.GetArguments()["session_id"].(string)
	if id == "" {
		return mcp.NewToolResultError("session_id parameter is required"), nil
	}
	session, err := h.Service.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultJSON(session)
}
