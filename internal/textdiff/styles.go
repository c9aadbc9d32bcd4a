package textdiff

// Style carries the presentation attributes for one line type: the CSS-ish
// class pair consumed by web frontends and the prefix symbol used in plain
// terminal output.
type Style struct {
	LineClass   string
	PrefixClass string
	Prefix      string
}

var styles = map[LineType]Style{
	LineRemoved:   {LineClass: "diff-line-removed", PrefixClass: "diff-prefix-removed", Prefix: "-"},
	LineAdded:     {LineClass: "diff-line-added", PrefixClass: "diff-prefix-added", Prefix: "+"},
	LineUnchanged: {LineClass: "diff-line-unchanged", PrefixClass: "diff-prefix-unchanged", Prefix: " "},
}

// StyleFor returns the display style for a line type. Unknown types fall back
// to the unchanged style.
func StyleFor(t LineType) Style {
	if s, ok := styles[t]; ok {
		return s
	}
	return styles[LineUnchanged]
}
