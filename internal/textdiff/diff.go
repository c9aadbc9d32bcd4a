package textdiff

import "strings"

// LineType classifies a single line of a computed diff.
type LineType string

const (
	LineUnchanged LineType = "unchanged"
	LineAdded     LineType = "added"
	LineRemoved   LineType = "removed"
)

// Line is one line of a diff, in old-to-new order.
type Line struct {
	Type    LineType `json:"type"`
	Content string   `json:"content"`
}

// Stats summarizes a diff.
type Stats struct {
	Additions  int  `json:"additions"`
	Deletions  int  `json:"deletions"`
	Unchanged  int  `json:"unchanged"`
	Total      int  `json:"total"`
	HasChanges bool `json:"has_changes"`
}

// Generate computes a line-level diff between two texts using the classic LCS
// dynamic program. An empty input contributes no lines, so diffing against an
// empty text yields pure additions or pure removals. The backtrack prefers
// emitting added lines when both directions carry equal LCS value, which pins
// the ordering of insertions before deletions on ambiguous inputs.
func Generate(oldText, newText string) []Line {
	oldLines := splitLines(oldText)
	newLines := splitLines(newText)
	m, n := len(oldLines), len(newLines)

	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if oldLines[i-1] == newLines[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	var lines []Line
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && oldLines[i-1] == newLines[j-1]:
			lines = append(lines, Line{Type: LineUnchanged, Content: oldLines[i-1]})
			i--
			j--
		case j > 0 && (i == 0 || dp[i][j-1] >= dp[i-1][j]):
			lines = append(lines, Line{Type: LineAdded, Content: newLines[j-1]})
			j--
		default:
			lines = append(lines, Line{Type: LineRemoved, Content: oldLines[i-1]})
			i--
		}
	}

	// Backtrack walks new-to-old; restore original order.
	for lo, hi := 0, len(lines)-1; lo < hi; lo, hi = lo+1, hi-1 {
		lines[lo], lines[hi] = lines[hi], lines[lo]
	}
	return lines
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Summarize counts lines by type.
func Summarize(lines []Line) Stats {
	stats := Stats{Total: len(lines)}
	for _, line := range lines {
		switch line.Type {
		case LineAdded:
			stats.Additions++
		case LineRemoved:
			stats.Deletions++
		default:
			stats.Unchanged++
		}
	}
	stats.HasChanges = stats.Additions > 0 || stats.Deletions > 0
	return stats
}
