package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Frame renders content inside the panel style at the requested total width.
// Width already accounts for padding, so only the border columns come off.
func Frame(content string, width int, panelStyle lipgloss.Style) string {
	innerWidth := width - panelStyle.GetHorizontalBorderSize()
	innerWidth = max(innerWidth, 1)
	return panelStyle.Width(innerWidth).Render(content)
}

// FrameAccent renders the panel frame with its border tinted to the given
// color, leaving the content untouched.
func FrameAccent(content string, width int, panelStyle lipgloss.Style, borderColor string) string {
	return Frame(content, width, panelStyle.BorderForeground(lipgloss.Color(borderColor)))
}

func TruncateDisplayWidth(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(value) <= width {
		return value
	}
	if width == 1 {
		return "…"
	}
	limit := width - ansi.StringWidth("…")
	limit = max(limit, 0)
	var b strings.Builder
	current := 0
	for _, r := range value {
		w := ansi.StringWidth(string(r))
		if current+w > limit {
			break
		}
		b.WriteRune(r)
		current += w
	}
	return b.String() + "…"
}
