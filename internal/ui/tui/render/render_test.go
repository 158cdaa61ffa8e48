package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"linkpanel/internal/ui/tui/theme"
)

func TestTruncateDisplayWidth(t *testing.T) {
	tests := []struct {
		name  string
		value string
		width int
		want  string
	}{
		{"fits", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"truncated", "abcdef", 5, "abcd…"},
		{"width one", "abc", 1, "…"},
		{"zero width", "abc", 0, ""},
		{"wide runes", "温度計測", 5, "温度…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateDisplayWidth(tt.value, tt.width); got != tt.want {
				t.Fatalf("TruncateDisplayWidth(%q, %d) = %q, want %q", tt.value, tt.width, got, tt.want)
			}
		})
	}
}

func TestFrame_HonorsRequestedWidth(t *testing.T) {
	framed := Frame("hello", 20, theme.PanelStyle)
	for _, line := range strings.Split(framed, "\n") {
		if w := ansi.StringWidth(line); w != 20 {
			t.Fatalf("frame line width = %d, want 20: %q", w, line)
		}
	}
}

func TestFrameAccent_KeepsRequestedWidth(t *testing.T) {
	framed := FrameAccent("link online", 24, theme.PanelStyle, "10")
	for _, line := range strings.Split(framed, "\n") {
		if w := ansi.StringWidth(line); w != 24 {
			t.Fatalf("accent frame line width = %d, want 24: %q", w, line)
		}
	}
}
