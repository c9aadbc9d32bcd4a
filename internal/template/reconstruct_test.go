package template

import "testing"

func TestReconstruct_RoundTrip(t *testing.T) {
	params := map[string]any{"NAME": "Alice", "CITY": "Madrid"}
	rendered := Render("Hello {{NAME}}, welcome to {{CITY}}.", params)
	got := Reconstruct(rendered, params)
	if got != "Hello {{NAME}}, welcome to {{CITY}}." {
		t.Fatalf("round trip failed: %q", got)
	}
}

func TestReconstruct_LongestValueFirst(t *testing.T) {
	got := Reconstruct(
		"John Doe is a customer, John is the first name",
		map[string]any{"FULL_NAME": "John Doe", "FIRST_NAME": "John"},
	)
	want := "{{FULL_NAME}} is a customer, {{FIRST_NAME}} is the first name"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestReconstruct_SelfReferenceSkipped(t *testing.T) {
	text := "Use {{NAME}} here"
	got := Reconstruct(text, map[string]any{"NAME": "{{NAME}}"})
	if got != text {
		t.Fatalf("expected unchanged text, got %q", got)
	}
}

func TestReconstruct_NestedPlaceholderSkipped(t *testing.T) {
	text := "prefix call {{OTHER}} suffix"
	got := Reconstruct(text, map[string]any{"WRAP": "call {{OTHER}} suffix"})
	if got != text {
		t.Fatalf("expected unchanged text, got %q", got)
	}
}

func TestReconstruct_RegexSpecialCharacters(t *testing.T) {
	got := Reconstruct(
		"Price is $100 (discounted) [limited offer]",
		map[string]any{"PRICE": "$100 (discounted) [limited offer]"},
	)
	if got != "Price is {{PRICE}}" {
		t.Fatalf("expected literal match, got %q", got)
	}
}

func TestReconstruct_TripleBraceArtifact(t *testing.T) {
	// A value the text wraps in single braces reconstructs to triple braces.
	// Known round-trip artifact, asserted on purpose.
	got := Reconstruct("wrapped {value} here", map[string]any{"KEY": "value"})
	if got != "wrapped {{{KEY}}} here" {
		t.Fatalf("expected triple-brace artifact, got %q", got)
	}
}

func TestReconstruct_EmptyParams(t *testing.T) {
	text := "nothing to do"
	if got := Reconstruct(text, nil); got != text {
		t.Fatalf("expected unchanged text, got %q", got)
	}
	if got := Reconstruct(text, map[string]any{}); got != text {
		t.Fatalf("expected unchanged text, got %q", got)
	}
}

func TestReconstruct_EmptyInput(t *testing.T) {
	if got := Reconstruct("", map[string]any{"NAME": "Alice"}); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestReconstruct_AbsentValue(t *testing.T) {
	text := "no match here"
	if got := Reconstruct(text, map[string]any{"NAME": "Alice"}); got != text {
		t.Fatalf("expected unchanged text, got %q", got)
	}
}

func TestReconstruct_NonStringValues(t *testing.T) {
	got := Reconstruct(
		"retry 3 times, verbose true",
		map[string]any{"RETRIES": 3, "VERBOSE": true},
	)
	want := "retry {{RETRIES}} times, verbose {{VERBOSE}}"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestReconstruct_ReplacesAllOccurrences(t *testing.T) {
	got := Reconstruct("x=acme, y=acme, z=acme", map[string]any{"ORG": "acme"})
	if got != "x={{ORG}}, y={{ORG}}, z={{ORG}}" {
		t.Fatalf("expected all occurrences replaced, got %q", got)
	}
}
