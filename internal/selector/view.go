package selector

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/signingkey/internal/ui/styles"
)

const (
	DefaultMarker = " ← current"
	DefaultCursor = "> "
)

// View renders a State as one line per entry
type View struct {
	styles *styles.Styles
	marker string
	cursor string
}

// NewView creates a View with the given styles, current marker and cursor glyph.
// Empty marker or cursor fall back to the defaults; nil styles to styles.New().
func NewView(s *styles.Styles, marker, cursor string) *View {
	if s == nil {
		s = styles.New()
	}
	if marker == "" {
		marker = DefaultMarker
	}
	if cursor == "" {
		cursor = DefaultCursor
	}
	return &View{
		styles: s,
		marker: marker,
		cursor: cursor,
	}
}

// Lines renders every entry in display order
func (v *View) Lines(st *State) []string {
	lines := make([]string, st.Len())
	for i := range lines {
		lines[i] = v.renderRow(st, i)
	}
	return lines
}

// Render joins the rendered lines with newlines
func (v *View) Render(st *State) string {
	return strings.Join(v.Lines(st), "\n")
}

// renderRow renders a single entry
func (v *View) renderRow(st *State, index int) string {
	entry := st.Entry(index)

	marker := ""
	if st.IsCurrent(index) {
		marker = v.marker
	}

	if index == st.HighlightIndex() {
		text := v.cursor + entry.ID
		if entry.Label != "" {
			text += " " + entry.Label
		}
		return v.styles.RowActive.Render(text + marker)
	}

	// Pad to the cursor width so columns line up with the highlighted row
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", lipgloss.Width(v.cursor)))
	b.WriteString(v.styles.KeyID.Render(entry.ID))
	if entry.Label != "" {
		b.WriteString(" ")
		b.WriteString(v.styles.Label.Render(entry.Label))
	}
	if marker != "" {
		b.WriteString(v.styles.Marker.Render(marker))
	}
	return v.styles.Row.Render(b.String())
}
