package db

import (
	"time"

	"github.com/uptrace/bun"
)

// SessionSnapshot is the locally cached view of a backend session.
type SessionSnapshot struct {
	bun.BaseModel `bun:"table:session_snapshots"`

	ID            string    `bun:"id,pk"`
	Name          string    `bun:"name"`
	Description   string    `bun:"description"`
	Status        string    `bun:"status"`
	InitialPrompt string    `bun:"initial_prompt"`
	CreatedAt     time.Time `bun:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at"`
	SyncedAt      time.Time `bun:"synced_at"`
}

// PromptVersionRecord is one cached prompt version of a lab. TokenCount is
// computed at sync time so history listings don't re-encode every prompt.
type PromptVersionRecord struct {
	bun.BaseModel `bun:"table:prompt_versions"`

	ID         int64     `bun:"id,pk,autoincrement"`
	LabID      string    `bun:"lab_id,unique:lab_version"`
	Version    int       `bun:"version,unique:lab_version"`
	Content    string    `bun:"content"`
	Score      *float64  `bun:"score"`
	TokenCount int       `bun:"token_count"`
	CreatedAt  time.Time `bun:"created_at"`
	SyncedAt   time.Time `bun:"synced_at"`
}
