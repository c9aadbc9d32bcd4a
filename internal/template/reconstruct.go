package template

import (
	"fmt"
	"regexp"
	"sort"
)

var placeholderRegexp = regexp.MustCompile(`\{\{[^{}]*\}\}`)

type paramEntry struct {
	key   string
	value string
}

// Reconstruct inverts parameter substitution: given text that already carries
// concrete parameter values, it replaces every occurrence of each value with
// the {{KEY}} placeholder, recovering the parameterized template.
//
// Parameters are applied longest value first so that values containing other
// values as substrings ("John Doe" vs "John") are matched whole before their
// fragments. Values equal to their own placeholder, values that embed a
// placeholder, and empty values are skipped. Matching is case-sensitive and
// literal.
//
// A value already wrapped in single braces in the text reconstructs to triple
// braces ({{{KEY}}}). That round-trip artifact is kept as-is; callers render
// it back through Render unchanged.
func Reconstruct(inputText string, params map[string]any) string {
	entries := make([]paramEntry, 0, len(params))
	for key, value := range params {
		entries = append(entries, paramEntry{key: key, value: stringify(value)})
	}
	// Longest value first; key order breaks ties so output is deterministic
	// regardless of map iteration order.
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].value) != len(entries[j].value) {
			return len(entries[i].value) > len(entries[j].value)
		}
		return entries[i].key < entries[j].key
	})

	result := inputText
	for _, entry := range entries {
		if entry.value == "" {
			continue
		}
		if entry.value == "{{"+entry.key+"}}" {
			continue
		}
		if placeholderRegexp.MatchString(entry.value) {
			continue
		}
		pattern := regexp.MustCompile(regexp.QuoteMeta(entry.value))
		result = pattern.ReplaceAllLiteralString(result, "{{"+entry.key+"}}")
	}
	return result
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
