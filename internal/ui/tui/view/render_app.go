package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"linkpanel/internal/ui/tui/render"
	"linkpanel/internal/ui/tui/theme"
)

// SensorRow is one sensor line as the model wants it displayed. Reading is
// whatever the panel controller last wrote, never the raw catalog value.
type SensorRow struct {
	Name    string
	Reading string
}

// Runtime carries the already-resolved presentation values into the render
// pass. The view never derives them from link state itself.
type Runtime struct {
	BuildVersion string
	Online       bool
	Variant      string
	Icon         string
	Label        string
	PulseVisible bool
	Sensors      []SensorRow
}

const (
	outerPaneGap            = 2
	frameInnerInset         = 4
	minStatusPaneWidth      = 30
	minSensorsPaneWidth     = 26
	sideBySideMinTotalWidth = 64
	dialogHorizontalInset   = 8
	quitDialogWidth         = 60
	minSensorNameWidth      = 8
)

func RenderApp(state *State, rt Runtime) string {
	if state.Width == 0 {
		return "initializing..."
	}

	base := renderBase(state, rt)
	if state.ConfirmQuit {
		return renderModalOverlay(state, base, renderQuitConfirmDialog(state))
	}
	return base
}

func renderBase(state *State, rt Runtime) string {
	header := theme.TitleStyle.Render("Link Panel (" + rt.BuildVersion + ")")
	content := renderPanes(state, rt)
	helpText := state.HelpView.View(state.Keys)

	sections := []string{header, content}
	if state.ShowLogs {
		state.ResizeLogs(DefaultNonLogLayoutReserveMin, DefaultMinLogPanelHeight)
		sections = append(sections, renderLogPanel(state))
	}
	sections = append(sections, theme.HelpStyle.Render(helpText))

	root := strings.Join(sections, "\n\n")
	return render.Frame(root, state.ContentWidth(), theme.PanelStyle)
}

func renderPanes(state *State, rt Runtime) string {
	total := state.PageWidth()

	statusBody := renderStatusPaneBody(state, rt)

	accent := theme.VariantBorderColor(rt.Variant)
	if total < sideBySideMinTotalWidth {
		status := render.FrameAccent(statusBody, total, theme.PanelStyle, accent)
		sensors := render.Frame(renderSensorsPaneBody(rt, total-frameInnerInset), total, theme.PanelStyle)
		return status + "\n\n" + sensors
	}

	statusWidth := max(total/2, minStatusPaneWidth)
	sensorsWidth := max(total-statusWidth-outerPaneGap, minSensorsPaneWidth)
	status := render.FrameAccent(statusBody, statusWidth, theme.PanelStyle, accent)
	sensors := render.Frame(renderSensorsPaneBody(rt, sensorsWidth-frameInnerInset), sensorsWidth, theme.PanelStyle)
	layout := lipgloss.JoinHorizontal(lipgloss.Top, status, strings.Repeat(" ", outerPaneGap), sensors)
	return lipgloss.NewStyle().Width(total).Render(layout)
}

func renderStatusPaneBody(state *State, rt Runtime) string {
	statusLine := RenderStatusLine(rt, state.AnimPhase, state.PulseAnim)
	actionsLine := renderActionsRowState(state, rt, max(state.PageWidth()/2-frameInnerInset, minComponentWidth))
	return strings.Join([]string{theme.TitleStyle.Render("Link"), statusLine, actionsLine}, "\n\n")
}

func renderSensorsPaneBody(rt Runtime, width int) string {
	header := theme.TitleStyle.Render("Sensors")
	if len(rt.Sensors) == 0 {
		return header + "\n" + theme.DimStyle.Render("no sensors configured")
	}
	lines := make([]string, 0, len(rt.Sensors))
	for _, row := range rt.Sensors {
		// Keep room for the reading so a long sensor name cannot push it off
		// the pane.
		reserve := ansi.StringWidth(row.Reading) + frameInnerInset
		row.Name = render.TruncateDisplayWidth(row.Name, max(width-reserve, minSensorNameWidth))
		lines = append(lines, RenderSensorRow(row, rt.Online))
	}
	return header + "\n" + strings.Join(lines, "\n")
}

func renderActionsRowState(state *State, rt Runtime, maxWidth int) string {
	segments := []string{
		renderLinkToggle(state, rt),
		renderLogsButton(state),
		renderQuitButton(state),
	}
	return RenderActionsRow(segments, maxWidth)
}

func renderLogPanel(state *State) string {
	check := "[ ] Debug"
	if state.DebugOn {
		check = "[x] Debug"
	}

	debug := theme.ButtonStyle.Render(check)
	if state.Focus == state.LogsDebugIndex() {
		debug = theme.ButtonFocusedStyle.Render(check)
	} else if state.HoverZone == zoneLogsDebug {
		debug = theme.ButtonHoverStyle.Render(check)
	}
	debug = MarkZone(zoneLogsDebug, debug)

	followHint := theme.HelpStyle.Render("ctrl+f follow")
	toolbar := lipgloss.JoinHorizontal(lipgloss.Center, theme.TitleStyle.Render("Logs"), "  ", debug, "  ", followHint)
	content := state.LogView.View()
	withBar := WithScrollBar(content, state.LogView.Width, state.LogView.Height, state.LogView.ScrollPercent())

	return render.Frame(toolbar+"\n"+withBar, state.PageWidth(), theme.PanelStyle)
}

func renderQuitConfirmDialog(state *State) string {
	cancelButton := theme.ButtonStyle.Render("Cancel")
	quitButton := theme.ButtonStyle.Render("Quit")
	if state.ConfirmQuitChoice == ConfirmQuitChoiceCancel {
		cancelButton = theme.ButtonFocusedStyle.Render("Cancel")
	} else {
		quitButton = theme.ButtonFocusedStyle.Render("Quit")
	}
	cancelButton = MarkZone(zoneDialogQuitCancel, cancelButton)
	quitButton = MarkZone(zoneDialogQuitAccept, quitButton)

	buttonRow := lipgloss.JoinHorizontal(lipgloss.Top, cancelButton, "  ", quitButton)
	dialogWidth := min(state.ContentWidth()-dialogHorizontalInset, quitDialogWidth)
	buttonLine := lipgloss.NewStyle().
		Width(max(dialogWidth-frameInnerInset, 1)).
		AlignHorizontal(lipgloss.Center).
		Render(buttonRow)

	body := strings.Join([]string{
		theme.TitleStyle.Render("Quit while online?"),
		"The link is currently connected.",
		buttonLine,
		theme.HelpStyle.Render("tab/arrow switch • enter confirms"),
	}, "\n")

	return render.Frame(body, dialogWidth, theme.PanelStyle)
}

func renderModalOverlay(state *State, base string, dialog string) string {
	faded := theme.DimStyle.Render(base)
	overlay := lipgloss.Place(state.Width, state.Height, lipgloss.Center, lipgloss.Center, dialog)
	return faded + "\n" + overlay
}
