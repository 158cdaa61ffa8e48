package view

import (
	"runtime"

	"github.com/charmbracelet/x/ansi"

	"linkpanel/internal/ui/tui/theme"
)

const (
	DefaultNonLogLayoutReserveMin = 18
	DefaultMinLogPanelHeight      = 6
	ConfirmQuitChoiceCancel       = 0
)

const (
	toggleControlIndex = iota
	logsControlIndex
	quitControlIndex
	logsDebugControlIndex
)

const (
	focusCountWithoutLogs = 3
	focusCountWithLogs    = 4
)

const (
	minPageWidth            = 24
	logPanelHorizontalInset = 8
	minViewportDimension    = 1
	minLogViewportWidth     = 20
	logViewportHeightOffset = 3
	minLogViewportHeight    = 3
)

func (s State) FocusCount() int {
	if s.ShowLogs {
		return focusCountWithLogs
	}
	return focusCountWithoutLogs
}

func (s State) ToggleIndex() int    { return toggleControlIndex }
func (s State) LogsIndex() int      { return logsControlIndex }
func (s State) QuitIndex() int      { return quitControlIndex }
func (s State) LogsDebugIndex() int { return logsDebugControlIndex }

func (s State) ContentWidth() int {
	width := max(s.Width, 1)
	// Some Windows terminals wrap when a styled line lands exactly on the
	// reported last column; keep one-column headroom to avoid right-edge drift.
	if runtime.GOOS == "windows" && width > 1 {
		width--
	}
	return width
}

func (s State) PageWidth() int {
	return max(s.ContentWidth()-theme.PanelStyle.GetHorizontalFrameSize(), minPageWidth)
}

func (s State) LogPanelHeight(nonLogLayoutReserveMin int, minLogPanelHeight int) int {
	available := s.Height - nonLogLayoutReserveMin
	if available < minLogPanelHeight {
		return minLogPanelHeight
	}
	return available
}

func (s *State) SetLogViewportContent() {
	width := max(s.LogView.Width, minViewportDimension)
	s.LogView.SetContent(wrapLogText(s.LogText, width))
}

func (s *State) ResizeLogs(nonLogLayoutReserveMin int, minLogPanelHeight int) {
	w := max(s.PageWidth()-logPanelHorizontalInset, minLogViewportWidth)
	h := max(s.LogPanelHeight(nonLogLayoutReserveMin, minLogPanelHeight)-logViewportHeightOffset, minLogViewportHeight)
	s.LogView.Width = w
	s.LogView.Height = h
	s.SetLogViewportContent()
}

func wrapLogText(text string, width int) string {
	if width <= 0 || text == "" {
		return text
	}
	return ansi.Wrap(text, width, "")
}
