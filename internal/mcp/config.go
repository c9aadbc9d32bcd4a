package mcp

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/promptlab-io/labhub/internal/api"
	"github.com/promptlab-io/labhub/internal/config"
	"github.com/promptlab-io/labhub/internal/db"
	"github.com/promptlab-io/labhub/internal/logging"
	"github.com/promptlab-io/labhub/internal/mcp/tools"
	"github.com/promptlab-io/labhub/internal/snapshot"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
	Database     *db.Database
}

func DefaultConfig() Config {
	snapCfg, err := snapshot.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load snapshot config: %v", err)
	}

	database, err := db.NewDatabase(db.Config{DSN: snapCfg.PostgresURL})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	baseLogger := logging.ForLevel(config.LogLevel())
	client := api.NewClient(snapCfg.APIBaseURL, snapCfg.APIToken, snapCfg.CallTimeout,
		logging.New(baseLogger.WithName("api")))
	repo := db.NewSnapshotRepository(database)

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"diff_prompts":         &tools.DiffPromptsHandler{},
			"reconstruct_template": &tools.ReconstructTemplateHandler{},
			"get_session":          &tools.GetSessionHandler{Service: tools.NewAPISessionService(client)},
			"list_prompt_versions": &tools.ListVersionsHandler{Service: tools.NewCacheVersionsService(repo)},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
		Database: database,
	}
}
