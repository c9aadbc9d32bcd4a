package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/promptlab-io/labhub/internal/db"
	"github.com/promptlab-io/labhub/internal/mcp/tools/types"
)

type VersionsService interface {
	ListVersions(ctx context.Context, labID string) ([]types.VersionResult, error)
}

type ListVersionsHandler struct {
	Service VersionsService
}

// cacheVersionsService answers from the local snapshot cache rather than the
// backend, matching what the console shows offline.
type cacheVersionsService struct {
	repo *db.SnapshotRepository
}

func NewCacheVersionsService(repo *db.SnapshotRepository) VersionsService {
	return &cacheVersionsService{repo: repo}
}

func (s *cacheVersionsService) ListVersions(ctx context.Context, labID string) ([]types.VersionResult, error) {
	records, err := s.repo.ListVersions(ctx, labID)
	if err != nil {
		return nil, err
	}
	results := make([]types.VersionResult, 0, len(records))
	for _, record := range records {
		results = append(results, types.VersionResult{
			LabID:      record.LabID,
			Version:    record.Version,
			Content:    record.Content,
			Score:      record.Score,
			TokenCount: record.TokenCount,
			CreatedAt:  record.CreatedAt.Format(time.RFC3339),
		})
	}
	return results, nil
}

func (h *ListVersionsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	labID, _ := req.GetArguments()["lab_id"].(string)
	if labID == "" {
		return mcp.NewToolResultError("lab_id parameter is required"), nil
	}
	versions, err := h.Service.ListVersions(ctx, labID)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(mustMarshal(versions))), nil
}
