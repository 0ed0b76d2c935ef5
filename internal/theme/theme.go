// Package theme holds the fixed set of UI color presets.
package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Default is the preset used when preferences are missing or invalid.
const Default = "synthwave-84"

// Theme describes one preset: accent colors for the TUI chrome and the
// glamour style used for markdown previews.
type Theme struct {
	Name         string
	Primary      lipgloss.Color
	Secondary    lipgloss.Color
	Accent       lipgloss.Color
	Muted        lipgloss.Color
	GlamourStyle string
}

var presets = map[string]Theme{
	"synthwave-84": {
		Name:         "synthwave-84",
		Primary:      lipgloss.Color("#ff7edb"),
		Secondary:    lipgloss.Color("#36f9f6"),
		Accent:       lipgloss.Color("#fede5d"),
		Muted:        lipgloss.Color("#848bbd"),
		GlamourStyle: "dark",
	},
	"dracula": {
		Name:         "dracula",
		Primary:      lipgloss.Color("#bd93f9"),
		Secondary:    lipgloss.Color("#8be9fd"),
		Accent:       lipgloss.Color("#50fa7b"),
		Muted:        lipgloss.Color("#6272a4"),
		GlamourStyle: "dracula",
	},
	"nord": {
		Name:         "nord",
		Primary:      lipgloss.Color("#88c0d0"),
		Secondary:    lipgloss.Color("#81a1c1"),
		Accent:       lipgloss.Color("#a3be8c"),
		Muted:        lipgloss.Color("#4c566a"),
		GlamourStyle: "dark",
	},
	"gruvbox": {
		Name:         "gruvbox",
		Primary:      lipgloss.Color("#fabd2f"),
		Secondary:    lipgloss.Color("#83a598"),
		Accent:       lipgloss.Color("#b8bb26"),
		Muted:        lipgloss.Color("#928374"),
		GlamourStyle: "dark",
	},
	"paper": {
		Name:         "paper",
		Primary:      lipgloss.Color("#5f5fd7"),
		Secondary:    lipgloss.Color("#875f87"),
		Accent:       lipgloss.Color("#af5f00"),
		Muted:        lipgloss.Color("#8a8a8a"),
		GlamourStyle: "light",
	},
}

// Valid reports whether name is a recognized preset.
func Valid(name string) bool {
	_, ok := presets[name]
	return ok
}

// Get returns the preset by name, falling back to the default preset for
// unrecognized names.
func Get(name string) Theme {
	if t, ok := presets[name]; ok {
		return t
	}
	return presets[Default]
}

// Names lists the available presets in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
