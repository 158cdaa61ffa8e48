package logging

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var forceLipglossColorOnce sync.Once

func ensureLipglossColorOutput() {
	forceLipglossColorOnce.Do(func() {
		lipgloss.SetColorProfile(termenv.TrueColor)
	})
}

// FormatEventANSI renders a single log event with terminal styling, for both
// direct stderr output and the in-panel log viewport.
func FormatEventANSI(event Event) string {
	ensureLipglossColorOutput()
	ts := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(event.Time.Format("15:04:05.000"))
	levelLabel, levelStyle := levelBadge(event.Level)
	msg := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Render(event.Message)

	line := lipgloss.JoinHorizontal(lipgloss.Center, ts, " ", levelStyle.Render(levelLabel), " ", msg)
	if len(event.Fields) == 0 {
		return line + "\n"
	}

	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
	valStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	keys := orderedFieldKeys(event.Fields)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, keyStyle.Render(key)+sepStyle.Render("=")+valStyle.Render(formatFieldValue(event.Fields[key])))
	}
	return line + "  " + strings.Join(parts, " ") + "\n"
}
