package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/promptlab-io/labhub/internal/textdiff"
)

var (
	addedColor   = color.New(color.FgGreen)
	removedColor = color.New(color.FgRed)
)

// Diff prints a diff line by line, coloring additions and removals when
// colored is set. Each line is prefixed with its diff symbol.
func Diff(w io.Writer, lines []textdiff.Line, colored bool) {
	for _, line := range lines {
		prefix := textdiff.StyleFor(line.Type).Prefix
		switch {
		case colored && line.Type == textdiff.LineAdded:
			_, _ = addedColor.Fprintf(w, "%s%s\n", prefix, line.Content)
		case colored && line.Type == textdiff.LineRemoved:
			_, _ = removedColor.Fprintf(w, "%s%s\n", prefix, line.Content)
		default:
			fmt.Fprintf(w, "%s%s\n", prefix, line.Content)
		}
	}
}

// DiffSummary prints the one-line stats footer shown under a diff.
func DiffSummary(w io.Writer, stats textdiff.Stats) {
	if !stats.HasChanges {
		fmt.Fprintln(w, "no changes")
		return
	}
	fmt.Fprintf(w, "+%d -%d (%d unchanged)\n", stats.Additions, stats.Deletions, stats.Unchanged)
}
