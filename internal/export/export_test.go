package export

import (
	"strings"
	"testing"

	"github.com/promptlab-io/labhub/internal/api"
)

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("YAML"); err != nil || f != FormatYAML {
		t.Fatalf("expected yaml, got %v %v", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatJSON {
		t.Fatalf("expected json default, got %v %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for xml")
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf strings.Builder
	if err := Write(&buf, FormatJSON, map[string]string{"name": "demo"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"name": "demo"`) {
		t.Fatalf("unexpected json output: %s", buf.String())
	}
}

func TestWrite_YAML(t *testing.T) {
	var buf strings.Builder
	if err := Write(&buf, FormatYAML, map[string]string{"name": "demo"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "name: demo") {
		t.Fatalf("unexpected yaml output: %s", buf.String())
	}
}

func TestBuildPromptHistory(t *testing.T) {
	versions := []api.PromptVersion{
		{Version: 1, Content: "You are helpful."},
		{Version: 2, Content: "You are helpful.\nAnswer briefly."},
	}
	history := BuildPromptHistory("lab1", versions)
	if len(history.Versions) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(history.Versions))
	}
	first := history.Versions[0]
	if first.DiffStats.Additions != 1 || first.DiffStats.Deletions != 0 {
		t.Fatalf("first version should be pure addition: %+v", first.DiffStats)
	}
	second := history.Versions[1]
	if second.DiffStats.Additions != 1 || second.DiffStats.Unchanged != 1 {
		t.Fatalf("unexpected second diff stats: %+v", second.DiffStats)
	}
}
