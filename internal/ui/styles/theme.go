package styles

import "github.com/charmbracelet/lipgloss"

// Catppuccin Macchiato palette (subset used by the selector)
var (
	Subtext0 = lipgloss.Color("#a5adcb")
	Text     = lipgloss.Color("#cad3f5")

	Green = lipgloss.Color("#a6da95")
	Blue  = lipgloss.Color("#8aadf4")
)
