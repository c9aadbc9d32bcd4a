package template

import (
	"regexp"
	"strings"
)

var namedPlaceholderRegexp = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.-]+)\s*\}\}`)

// Render substitutes parameter values into a template. Placeholders with no
// matching parameter are left untouched.
func Render(templateText string, params map[string]any) string {
	return namedPlaceholderRegexp.ReplaceAllStringFunc(templateText, func(match string) string {
		name := namedPlaceholderRegexp.FindStringSubmatch(match)[1]
		if value, ok := params[name]; ok {
			return stringify(value)
		}
		return match
	})
}

// ExtractParams lists the distinct placeholder names of a template in order
// of first appearance.
func ExtractParams(templateText string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, match := range namedPlaceholderRegexp.FindAllStringSubmatch(templateText, -1) {
		name := strings.TrimSpace(match[1])
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
