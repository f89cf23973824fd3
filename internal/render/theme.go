package render

import "sort"

// Theme defines the colors used for the diagram.
type Theme struct {
	Name       string
	Background string
	Node       ThemeColor
	Edge       string
}

// ThemeColor defines fill and stroke colors for an element type.
type ThemeColor struct {
	Fill   string
	Stroke string
	Font   string
}

var themes = map[string]*Theme{
	// classic is the yellow-on-black look of the plain dot output.
	"classic": {
		Name:       "classic",
		Background: "black",
		Node:       ThemeColor{Fill: "black", Stroke: "cyan", Font: "yellow"},
		Edge:       "yellow",
	},
	"dark": {
		Name:       "dark",
		Background: "#111827",
		Node:       ThemeColor{Fill: "#1F2937", Stroke: "#0EA5E9", Font: "#FDE047"},
		Edge:       "#EAB308",
	},
	"monochrome": {
		Name:       "monochrome",
		Background: "white",
		Node:       ThemeColor{Fill: "#F3F4F6", Stroke: "#374151", Font: "#111827"},
		Edge:       "#6B7280",
	},
	"ocean": {
		Name:       "ocean",
		Background: "#F0F9FF",
		Node:       ThemeColor{Fill: "#E0F2FE", Stroke: "#0284C7", Font: "#075985"},
		Edge:       "#0891B2",
	},
}

// ThemeNames returns all available theme names.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetTheme returns the named theme or the classic one.
func GetTheme(name string) *Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["classic"]
}
