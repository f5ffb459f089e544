// Package theme is the read-only registry of display themes. The registry is
// fixed at startup and lookups fall back to the default theme, so consumers
// never see a missing theme.
package theme

import "sort"

// Theme is the color/config block handed to a rendering layer.
type Theme struct {
	Name       string `json:"name"`
	Mode       string `json:"mode"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
}

var (
	Default = Theme{Name: "default", Mode: "light", Primary: "#1976d2", Secondary: "#dc004e", Background: "#fafafa"}
	Dark    = Theme{Name: "dark", Mode: "dark", Primary: "#90caf9", Secondary: "#f48fb1", Background: "#121212"}
	Music   = Theme{Name: "music", Mode: "light", Primary: "#9c27b0", Secondary: "#ff9800", Background: "#f3e5f5"}
)

var themes = map[string]Theme{
	Default.Name: Default,
	Dark.Name:    Dark,
	Music.Name:   Music,
}

// Get returns the named theme, or Default when the name is unknown.
func Get(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return Default
}

// Names lists the registered theme names in stable order.
func Names() []string {
	out := make([]string, 0, len(themes))
	for name := range themes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
