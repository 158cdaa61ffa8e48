package view

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"linkpanel/internal/config"
	"linkpanel/internal/ui/tui/keyboard"
)

const (
	defaultAnimPhase     = 0
	defaultLogViewWidth  = 80
	defaultLogViewHeight = 12
	maxAnimPhaseValue    = 1_000_000_000
)

type State struct {
	Focus int

	HelpView help.Model
	Keys     keyboard.Map

	ShowLogs   bool
	FollowLogs bool
	DebugOn    bool
	PulseAnim  bool

	LogText string
	LogView viewport.Model

	Width     int
	Height    int
	AnimPhase int

	ConfirmQuit       bool
	ConfirmQuitChoice int
	HoverZone         string
}

func NewState(opts config.Options) State {
	helpView := help.New()
	helpView.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	helpView.Styles.FullKey = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	helpView.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpView.Styles.FullDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpView.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpView.Styles.FullSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpView.Styles.Ellipsis = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return State{
		HelpView:   helpView,
		Keys:       keyboard.New(),
		DebugOn:    opts.Debug,
		PulseAnim:  !opts.NoPulse,
		FollowLogs: true,
		AnimPhase:  defaultAnimPhase,
		LogView:    viewport.New(defaultLogViewWidth, defaultLogViewHeight),
	}
}

func (s State) WithWindowSize(width int, height int) State {
	s.Width = width
	s.Height = height
	return s
}

func (s State) WithTick() State {
	s.AnimPhase++
	if s.AnimPhase > maxAnimPhaseValue {
		s.AnimPhase = defaultAnimPhase
	}
	return s
}
