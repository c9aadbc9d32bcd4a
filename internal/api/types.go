package api

import "time"

// Session is one prompt-optimization workspace owned by the backend.
type Session struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	InitialPrompt string    `json:"initial_prompt,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateSessionRequest is the payload for opening a new session.
type CreateSessionRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	InitialPrompt string `json:"initial_prompt,omitempty"`
}

// PromptLab is an optimization workspace bound to a session and a target
// model.
type PromptLab struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	Name        string    `json:"name"`
	TargetModel string    `json:"target_model,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// PromptVersion is one iteration of a lab's system prompt.
type PromptVersion struct {
	ID        string    `json:"id"`
	LabID     string    `json:"lab_id"`
	Version   int       `json:"version"`
	Content   string    `json:"content"`
	Score     *float64  `json:"score,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EvalRun is one execution of an evaluation dataset against a prompt version.
type EvalRun struct {
	ID          string    `json:"id"`
	LabID       string    `json:"lab_id"`
	DatasetName string    `json:"dataset_name"`
	Status      string    `json:"status"`
	CaseCount   int       `json:"case_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// DatasetCase is a single generated or curated evaluation case. Params holds
// the concrete values substituted into the case template by the generator.
type DatasetCase struct {
	ID       string         `json:"id"`
	RunID    string         `json:"run_id"`
	Input    string         `json:"input"`
	Expected string         `json:"expected,omitempty"`
	Output   string         `json:"output,omitempty"`
	Params   map[string]any `json:"params,omitempty"`
}

// ProgressPoint is one sample of a lab's learning curve.
type ProgressPoint struct {
	Iteration int     `json:"iteration"`
	Score     float64 `json:"score"`
	BestScore float64 `json:"best_score"`
}
