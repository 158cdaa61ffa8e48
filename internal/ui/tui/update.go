package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"linkpanel/internal/sensors"
	tuiview "linkpanel/internal/ui/tui/view"
)

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		if _, ok := msg.(quitNowMsg); ok {
			m.cleanup()
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = m.ui.WithWindowSize(msg.Width, msg.Height)
		m.ui.ResizeLogs(nonLogLayoutReserveMin, minLogPanelHeight)
		if !m.surfaceReady {
			m.surfaceReady = true
			m.controller.SurfaceReady()
		}
		return m, nil
	case logMsg:
		line := string(msg)
		wasAtBottom := m.ui.LogView.AtBottom()
		m.ui.LogText = appendLogLinesWithLimit(m.ui.LogText, line, tuiLogLineLimit)
		m.ui.SetLogViewportContent()
		if m.ui.FollowLogs || wasAtBottom {
			m.ui.LogView.GotoBottom()
			m.ui.FollowLogs = true
		}
		return m, waitForLog(m.logCh)
	case catalogMsg:
		targets := m.surfaces.replaceSensors([]sensors.Spec(msg))
		m.controller.RebindSensors(targets)
		return m, waitForCatalog(m.catalogCh)
	case tickMsg:
		if m.ui.PulseAnim {
			m.ui = m.ui.WithTick()
		}
		return m, tickCmd()
	case tea.MouseMsg:
		return m.updateMouseMsg(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *tuiModel) updateMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	next, cmd, effect := tuiview.ReduceMouse(m.ui, msg)
	m.ui = next
	switch effect {
	case tuiview.MouseEffectActivateFocused:
		return m, tea.Batch(cmd, m.activateFocusedControl())
	case tuiview.MouseEffectConfirmQuitAccept:
		return m, tea.Batch(cmd, m.beginQuitCmd())
	}
	return m, cmd
}

func (m *tuiModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, effect := tuiview.ReduceKey(m.ui, msg)
	m.ui = next
	switch effect {
	case tuiview.KeyEffectRequestQuit:
		return m, m.requestQuitCmd()
	case tuiview.KeyEffectToggleLink:
		m.controller.Toggle()
		return m, nil
	case tuiview.KeyEffectActivateFocused:
		return m, m.activateFocusedControl()
	case tuiview.KeyEffectConfirmQuitAccept:
		return m, m.beginQuitCmd()
	default:
		return m, nil
	}
}

func (m *tuiModel) activateFocusedControl() tea.Cmd {
	next, effect := tuiview.ReduceActivate(m.ui)
	m.ui = next
	switch effect {
	case tuiview.ActivateEffectToggleLink:
		m.controller.Toggle()
		return nil
	case tuiview.ActivateEffectRequestQuit:
		return m.requestQuitCmd()
	case tuiview.ActivateEffectDebugLevelChanged:
		m.logger.SetDebugEnabled(m.ui.DebugOn)
		return nil
	default:
		return nil
	}
}

// requestQuitCmd interposes the confirm dialog while the link is online.
func (m *tuiModel) requestQuitCmd() tea.Cmd {
	if m.controller.State().Online() {
		m.ui.ConfirmQuit = true
		m.ui.ConfirmQuitChoice = tuiview.ConfirmQuitChoiceCancel
		return nil
	}
	return m.beginQuitCmd()
}

func (m *tuiModel) beginQuitCmd() tea.Cmd {
	m.quitting = true
	m.ui.ConfirmQuit = false
	return quitProgramCmd()
}

func quitProgramCmd() tea.Cmd {
	return tea.Sequence(func() tea.Msg {
		return tea.DisableMouse()
	}, waitForMouseDrainCmd(), func() tea.Msg {
		return quitNowMsg{}
	})
}

func waitForMouseDrainCmd() tea.Cmd {
	return func() tea.Msg {
		time.Sleep(120 * time.Millisecond)
		return nil
	}
}

func appendLogLinesWithLimit(current string, next string, limit int) string {
	if limit <= 0 {
		return ""
	}
	lines := splitLogLines(current)
	lines = append(lines, splitLogLines(next)...)
	if len(lines) > limit {
		lines = append([]string(nil), lines[len(lines)-limit:]...)
	}
	return strings.Join(lines, "\n")
}

func splitLogLines(input string) []string {
	normalized := strings.ReplaceAll(input, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	lines := strings.Split(normalized, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
