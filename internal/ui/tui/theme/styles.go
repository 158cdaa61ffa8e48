package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	PanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	FocusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	HelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	OnlineStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	OfflineStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	DimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	ButtonStyle        = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder())
	ButtonFocusedStyle = ButtonStyle.BorderForeground(lipgloss.Color("10")).Foreground(lipgloss.Color("10"))
	ButtonHoverStyle   = ButtonStyle.BorderForeground(lipgloss.Color("15")).Foreground(lipgloss.Color("15"))

	SegmentBaseStyle    = lipgloss.NewStyle().Padding(0, 1)
	SegmentOnlineStyle  = SegmentBaseStyle.Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10"))
	SegmentOfflineStyle = SegmentBaseStyle.Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("124"))
	SegmentIdleStyle    = SegmentBaseStyle.Foreground(lipgloss.Color("245")).Background(lipgloss.Color("236"))
)

// VariantBorderColor picks the accent color for a styling variant name.
func VariantBorderColor(variant string) string {
	if variant == "online" {
		return "10"
	}
	return "9"
}

// Pulse ramp endpoints: the offline pulse fades between these two reds.
const (
	pulseDimColor    = "#5f1010"
	pulseBrightColor = "#ff4545"
)

// PulseColorAt maps an animation phase to a color on the pulse ramp using a
// sine sweep, so the dot breathes instead of blinking.
func PulseColorAt(phase int) string {
	t := (math.Sin(float64(phase)*0.45) + 1) / 2
	return interpolateHex(pulseDimColor, pulseBrightColor, t)
}

func interpolateHex(a string, b string, t float64) string {
	ar, ag, ab := parseHexRGB(a)
	br, bg, bb := parseHexRGB(b)
	lerp := func(x int, y int) int {
		return int(float64(x) + (float64(y)-float64(x))*t)
	}
	return fmt.Sprintf("#%02x%02x%02x", lerp(ar, br), lerp(ag, bg), lerp(ab, bb))
}

func parseHexRGB(s string) (int, int, int) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return 255, 255, 255
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return int((v >> 16) & 0xff), int((v >> 8) & 0xff), int(v & 0xff)
}
