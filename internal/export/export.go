package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	sigsyaml "sigs.k8s.io/yaml"

	"github.com/promptlab-io/labhub/internal/api"
	"github.com/promptlab-io/labhub/internal/textdiff"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format: %s (must be json or yaml)", value)
	}
}

// Write serializes payload to the writer in the requested format.
func Write(w io.Writer, format Format, payload any) error {
	switch format {
	case FormatYAML:
		out, err := sigsyaml.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}
}

// VersionEntry is one prompt version with its diff against the previous one.
type VersionEntry struct {
	Version   int             `json:"version"`
	Content   string          `json:"content"`
	Score     *float64        `json:"score,omitempty"`
	Diff      []textdiff.Line `json:"diff,omitempty"`
	DiffStats textdiff.Stats  `json:"diff_stats"`
}

// PromptHistory is the exportable view of a lab's prompt evolution.
type PromptHistory struct {
	LabID    string         `json:"lab_id"`
	Versions []VersionEntry `json:"versions"`
}

// BuildPromptHistory annotates each version with the line diff from its
// predecessor. The first version diffs against the empty prompt.
func BuildPromptHistory(labID string, versions []api.PromptVersion) PromptHistory {
	history := PromptHistory{LabID: labID}
	previous := ""
	for _, version := range versions {
		diff := textdiff.Generate(previous, version.Content)
		history.Versions = append(history.Versions, VersionEntry{
			Version:   version.Version,
			Content:   version.Content,
			Score:     version.Score,
			Diff:      diff,
			DiffStats: textdiff.Summarize(diff),
		})
		previous = version.Content
	}
	return history
}
