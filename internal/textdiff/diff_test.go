package textdiff

import (
	"strings"
	"testing"
)

func TestGenerate_IdenticalTexts(t *testing.T) {
	text := "line one\nline two\nline three"
	lines := Generate(text, text)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if line.Type != LineUnchanged {
			t.Fatalf("line %d: expected unchanged, got %s", i, line.Type)
		}
	}
	want := strings.Split(text, "\n")
	for i, line := range lines {
		if line.Content != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], line.Content)
		}
	}
}

func TestGenerate_EmptyOld(t *testing.T) {
	lines := Generate("", "New content")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Type != LineAdded || lines[0].Content != "New content" {
		t.Fatalf("unexpected line %+v", lines[0])
	}
}

func TestGenerate_EmptyNew(t *testing.T) {
	lines := Generate("Old content", "")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Type != LineRemoved || lines[0].Content != "Old content" {
		t.Fatalf("unexpected line %+v", lines[0])
	}
}

func TestGenerate_BothEmpty(t *testing.T) {
	lines := Generate("", "")
	if len(lines) != 0 {
		t.Fatalf("expected no lines, got %d", len(lines))
	}
	stats := Summarize(lines)
	if stats.HasChanges {
		t.Fatalf("expected no changes")
	}
}

func TestGenerate_InsertedLine(t *testing.T) {
	lines := Generate("Line 1\nLine 3", "Line 1\nLine 2\nLine 3")
	want := []Line{
		{Type: LineUnchanged, Content: "Line 1"},
		{Type: LineAdded, Content: "Line 2"},
		{Type: LineUnchanged, Content: "Line 3"},
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %+v, got %+v", i, want[i], lines[i])
		}
	}
}

func TestGenerate_FullReplacement(t *testing.T) {
	lines := Generate("Old line 1\nOld line 2", "New line 1\nNew line 2")
	want := []Line{
		{Type: LineRemoved, Content: "Old line 1"},
		{Type: LineRemoved, Content: "Old line 2"},
		{Type: LineAdded, Content: "New line 1"},
		{Type: LineAdded, Content: "New line 2"},
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %+v, got %+v", i, want[i], lines[i])
		}
	}
}

func TestGenerate_LineCountInvariant(t *testing.T) {
	cases := [][2]string{
		{"a\nb\nc", "a\nc"},
		{"", "x\ny"},
		{"one\ntwo", "one\ntwo\nthree\nfour"},
		{"alpha\nbeta", "gamma"},
	}
	for _, tc := range cases {
		stats := Summarize(Generate(tc[0], tc[1]))
		oldCount := len(splitLines(tc[0]))
		newCount := len(splitLines(tc[1]))
		if stats.Additions-stats.Deletions != newCount-oldCount {
			t.Fatalf("invariant broken for %q -> %q: +%d -%d, lines %d -> %d",
				tc[0], tc[1], stats.Additions, stats.Deletions, oldCount, newCount)
		}
	}
}

func TestGenerate_PreservesWhitespace(t *testing.T) {
	lines := Generate("  indented\t", "  indented\t\nmore  ")
	if lines[0].Content != "  indented\t" {
		t.Fatalf("whitespace not preserved: %q", lines[0].Content)
	}
	if lines[1].Content != "more  " {
		t.Fatalf("whitespace not preserved: %q", lines[1].Content)
	}
}

func TestSummarize(t *testing.T) {
	lines := Generate("a\nb", "a\nc\nd")
	stats := Summarize(lines)
	if stats.Additions != 2 || stats.Deletions != 1 || stats.Unchanged != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if stats.Total != 4 || !stats.HasChanges {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestStyleFor(t *testing.T) {
	if StyleFor(LineRemoved).Prefix != "-" {
		t.Fatalf("expected '-' prefix for removed")
	}
	if StyleFor(LineAdded).Prefix != "+" {
		t.Fatalf("expected '+' prefix for added")
	}
	if StyleFor(LineUnchanged).Prefix != " " {
		t.Fatalf("expected blank prefix for unchanged")
	}
	if StyleFor(LineType("bogus")).LineClass != "diff-line-unchanged" {
		t.Fatalf("unknown type should fall back to unchanged style")
	}
}
