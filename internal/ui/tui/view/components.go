package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"linkpanel/internal/ui/tui/theme"
)

const (
	minComponentWidth = 1
	scrollbarMinThumb = 0
	pulseDotGlyph     = "●"
)

// MarkZone tags a rendered component with a bubblezone id for mouse hit
// testing.
func MarkZone(id string, content string) string {
	return zone.Mark(id, content)
}

// RenderStatusLine composes the icon glyph, the label, and the pulse dot in
// the variant's color. The pulse dot only appears while the link is offline;
// when animation is on, its color breathes with the animation phase.
func RenderStatusLine(rt Runtime, phase int, animate bool) string {
	var status string
	if rt.Online {
		status = theme.OnlineStyle.Render(rt.Icon + " " + rt.Label)
	} else {
		status = theme.OfflineStyle.Render(rt.Icon + " " + rt.Label)
	}
	if !rt.PulseVisible {
		return status
	}
	return status + " " + RenderPulseDot(phase, animate)
}

// RenderPulseDot renders the standalone offline pulse element.
func RenderPulseDot(phase int, animate bool) string {
	color := theme.PulseColorAt(phase)
	if !animate {
		color = theme.PulseColorAt(0)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(pulseDotGlyph)
}

// RenderSensorRow shows one sensor reading, dimmed while offline.
func RenderSensorRow(row SensorRow, online bool) string {
	name := theme.DimStyle.Render(row.Name + ":")
	reading := row.Reading
	if online {
		reading = theme.OnlineStyle.Render(reading)
	} else {
		reading = theme.OfflineStyle.Render(reading)
	}
	return name + " " + reading
}

func renderLinkToggle(state *State, rt Runtime) string {
	online := theme.SegmentIdleStyle.Render("Online")
	offline := theme.SegmentIdleStyle.Render("Offline")
	if rt.Online {
		online = theme.SegmentOnlineStyle.Render("Online")
	} else {
		offline = theme.SegmentOfflineStyle.Render("Offline")
	}
	content := online + theme.SegmentBaseStyle.Render("|") + offline

	var button string
	switch {
	case state.Focus == state.ToggleIndex():
		button = theme.ButtonFocusedStyle.Render(content)
	case state.HoverZone == zoneLinkToggle:
		button = theme.ButtonHoverStyle.Render(content)
	default:
		button = theme.ButtonStyle.Render(content)
	}
	return MarkZone(zoneLinkToggle, button)
}

func renderLogsButton(state *State) string {
	label := "Logs"
	if state.ShowLogs {
		label = "Hide Logs"
	}

	var button string
	switch {
	case state.Focus == state.LogsIndex():
		button = theme.ButtonFocusedStyle.Render(label)
	case state.HoverZone == zoneLogs:
		button = theme.ButtonHoverStyle.Render(label)
	default:
		button = theme.ButtonStyle.Render(label)
	}
	return MarkZone(zoneLogs, button)
}

func renderQuitButton(state *State) string {
	label := "Quit"

	var button string
	switch {
	case state.Focus == state.QuitIndex():
		button = theme.ButtonFocusedStyle.Render(label)
	case state.HoverZone == zoneQuit:
		button = theme.ButtonHoverStyle.Render(label)
	default:
		button = theme.ButtonStyle.Render(label)
	}
	return MarkZone(zoneQuit, button)
}

func RenderActionsRow(segments []string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = minComponentWidth
	}
	lines := make([]string, 0, len(segments))
	rowParts := make([]string, 0, len(segments))
	joinRow := func(parts []string) string {
		if len(parts) == 0 {
			return ""
		}
		row := parts[0]
		for i := 1; i < len(parts); i++ {
			row = lipgloss.JoinHorizontal(lipgloss.Top, row, " ", parts[i])
		}
		return row
	}
	for _, seg := range segments {
		if len(rowParts) == 0 {
			rowParts = append(rowParts, seg)
			continue
		}
		candidateParts := append(append([]string(nil), rowParts...), seg)
		candidate := joinRow(candidateParts)
		if lipgloss.Width(candidate) <= maxWidth {
			rowParts = candidateParts
			continue
		}
		lines = append(lines, joinRow(rowParts))
		rowParts = []string{seg}
	}
	if len(rowParts) > 0 {
		lines = append(lines, joinRow(rowParts))
	}
	return strings.Join(lines, "\n")
}

func WithScrollBar(content string, width int, height int, percent float64) string {
	if height <= 0 {
		return content
	}
	width = max(width, minComponentWidth)
	lines := strings.Split(content, "\n")
	if len(lines) < height {
		pad := make([]string, 0, height-len(lines))
		for range height - len(lines) {
			pad = append(pad, "")
		}
		lines = append(lines, pad...)
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	thumb := int(percent * float64(height-1))
	thumb = max(thumb, scrollbarMinThumb)
	if thumb >= height {
		thumb = height - 1
	}
	barInactive := lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Render("┊")
	barActive := lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Render("▯")

	out := make([]string, 0, height)
	for i := range height {
		bar := barInactive
		if i == thumb {
			bar = barActive
		}
		text := ansi.Cut(lines[i], 0, width)
		if pad := width - ansi.StringWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
		out = append(out, text+" "+bar)
	}
	return strings.Join(out, "\n")
}
