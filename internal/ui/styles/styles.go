// Package styles holds the lipgloss styles for the key list.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds all the UI styles
type Styles struct {
	// Rows
	Row       lipgloss.Style
	RowActive lipgloss.Style

	// Columns
	KeyID lipgloss.Style
	Label lipgloss.Style

	// Indicators
	Marker lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Row: lipgloss.NewStyle().
			Foreground(Text),

		// Highlighted row, reverse video
		RowActive: lipgloss.NewStyle().
			Reverse(true).
			Bold(true),

		KeyID: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(Subtext0),

		Marker: lipgloss.NewStyle().
			Foreground(Green),
	}
}

// Plain returns styles without colors or attributes, for output that
// must not carry escape sequences.
func Plain() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Row:       plain,
		RowActive: plain,
		KeyID:     plain,
		Label:     plain,
		Marker:    plain,
	}
}
