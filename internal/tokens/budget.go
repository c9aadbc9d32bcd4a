package tokens

import (
	"sort"

	"github.com/tmc/langchaingo/textsplitter"

	"github.com/promptlab-io/labhub/internal/logging"
)

// Chunk is one context-sized slice of a prompt.
type Chunk struct {
	Index      int    `json:"index"`
	Total      int    `json:"total"`
	Content    string `json:"content"`
	TokenCount int    `json:"token_count"`
}

// BudgetReport describes how a prompt fits a model context window.
type BudgetReport struct {
	ContextTokens int     `json:"context_tokens"`
	TotalTokens   int     `json:"total_tokens"`
	MaxTokens     int     `json:"max_tokens"`
	MedianTokens  int     `json:"median_tokens"`
	Fits          bool    `json:"fits"`
	Chunks        []Chunk `json:"chunks"`
}

// SplitForBudget splits a prompt into chunks that fit the given context
// window, targeting 3/4 of the window per chunk to leave room for the model
// response. Prompts already within budget come back as a single chunk.
func SplitForBudget(text string, contextTokens int, log logging.Logger) BudgetReport {
	if contextTokens <= 0 {
		contextTokens = 4096
	}
	targetTokens := contextTokens * 3 / 4

	total := Estimate(text)
	report := BudgetReport{
		ContextTokens: contextTokens,
		TotalTokens:   total,
		Fits:          total <= contextTokens,
	}

	parts := []string{text}
	if total > targetTokens {
		splitter := textsplitter.NewRecursiveCharacter(
			textsplitter.WithSeparators([]string{"\n\n", "\n", " ", ""}),
			textsplitter.WithChunkSize(targetTokens*approxCharsPerToken),
			textsplitter.WithChunkOverlap(0),
		)
		split, err := splitter.SplitText(text)
		if err != nil || len(split) == 0 {
			log.Error(err, "split prompt failed; keeping single chunk")
		} else {
			parts = split
		}
	}

	counts := make([]int, 0, len(parts))
	for idx, part := range parts {
		count := Estimate(part)
		report.Chunks = append(report.Chunks, Chunk{
			Index:      idx + 1,
			Total:      len(parts),
			Content:    part,
			TokenCount: count,
		})
		counts = append(counts, count)
	}

	sort.Ints(counts)
	report.MaxTokens = counts[len(counts)-1]
	report.MedianTokens = counts[len(counts)/2]
	return report
}
