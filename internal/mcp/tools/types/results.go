package types

import "github.com/promptlab-io/labhub/internal/textdiff"

type DiffResult struct {
	Lines []textdiff.Line `json:"lines"`
	Stats textdiff.Stats  `json:"stats"`
}

type SessionResult struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Status        string `json:"status"`
	InitialPrompt string `json:"initial_prompt,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type VersionResult struct {
	LabID      string   `json:"lab_id"`
	Version    int      `json:"version"`
	Content    string   `json:"content"`
	Score      *float64 `json:"score,omitempty"`
	TokenCount int      `json:"token_count"`
	CreatedAt  string   `json:"created_at"`
}
