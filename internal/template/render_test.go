package template

import "testing"

func TestRender_Substitutes(t *testing.T) {
	got := Render("{{GREETING}}, {{NAME}}!", map[string]any{"GREETING": "Hi", "NAME": "Ada"})
	if got != "Hi, Ada!" {
		t.Fatalf("unexpected render: %q", got)
	}
}

func TestRender_UnknownPlaceholderKept(t *testing.T) {
	got := Render("{{KNOWN}} and {{UNKNOWN}}", map[string]any{"KNOWN": "yes"})
	if got != "yes and {{UNKNOWN}}" {
		t.Fatalf("unexpected render: %q", got)
	}
}

func TestRender_WhitespaceInsidePlaceholder(t *testing.T) {
	got := Render("{{ NAME }}", map[string]any{"NAME": "Ada"})
	if got != "Ada" {
		t.Fatalf("unexpected render: %q", got)
	}
}

func TestExtractParams(t *testing.T) {
	names := ExtractParams("{{A}} {{B}} {{A}} {{c_1}}")
	want := []string{"A", "B", "c_1"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestExtractParams_None(t *testing.T) {
	if names := ExtractParams("plain text"); len(names) != 0 {
		t.Fatalf("expected no params, got %v", names)
	}
}
