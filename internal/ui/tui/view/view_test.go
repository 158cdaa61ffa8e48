package view

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"linkpanel/internal/config"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func testState() State {
	return NewState(config.Options{})
}

func TestRenderApp_ShowsPlaceholderBeforeFirstWindowSize(t *testing.T) {
	state := testState()
	got := RenderApp(&state, Runtime{BuildVersion: "test"})
	if got != "initializing..." {
		t.Fatalf("RenderApp() = %q, want placeholder", got)
	}
}

func TestRenderApp_RendersStatusAndSensors(t *testing.T) {
	state := testState().WithWindowSize(100, 40)
	rt := Runtime{
		BuildVersion: "test",
		Online:       false,
		Variant:      "offline",
		Icon:         "⊘",
		Label:        "Offline",
		PulseVisible: true,
		Sensors: []SensorRow{
			{Name: "Temperature (°C)", Reading: "0"},
		},
	}
	plain := ansi.Strip(RenderApp(&state, rt))
	for _, want := range []string{"Offline", "⊘", "Temperature (°C)", "Sensors"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("rendered output missing %q:\n%s", want, plain)
		}
	}
}

func TestRenderStatusLine_PulseOnlyWhileVisible(t *testing.T) {
	hidden := ansi.Strip(RenderStatusLine(Runtime{Online: true, Icon: "◉", Label: "Online"}, 0, true))
	if strings.Contains(hidden, pulseDotGlyph) {
		t.Fatalf("pulse dot rendered while hidden: %q", hidden)
	}
	shown := ansi.Strip(RenderStatusLine(Runtime{Online: false, Icon: "⊘", Label: "Offline", PulseVisible: true}, 0, true))
	if !strings.Contains(shown, pulseDotGlyph) {
		t.Fatalf("pulse dot missing while visible: %q", shown)
	}
}

func TestReduceKey_FocusWrapsAroundControls(t *testing.T) {
	state := testState()
	next := tea.KeyMsg{Type: tea.KeyTab}

	for i := range state.FocusCount() {
		if state.Focus != i {
			t.Fatalf("focus = %d, want %d", state.Focus, i)
		}
		state, _ = ReduceKey(state, next)
	}
	if state.Focus != 0 {
		t.Fatalf("focus after full cycle = %d, want 0", state.Focus)
	}
}

func TestReduceKey_ToggleShortcutEmitsToggleEffect(t *testing.T) {
	state := testState()
	_, effect := ReduceKey(state, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if effect != KeyEffectToggleLink {
		t.Fatalf("effect = %d, want KeyEffectToggleLink", effect)
	}
}

func TestReduceKey_QuitConfirmFlow(t *testing.T) {
	state := testState()
	state.ConfirmQuit = true
	state.ConfirmQuitChoice = ConfirmQuitChoiceCancel

	state, effect := ReduceKey(state, tea.KeyMsg{Type: tea.KeyTab})
	if effect != KeyEffectNone || state.ConfirmQuitChoice != confirmChoiceQuit {
		t.Fatalf("after tab: choice=%d effect=%d", state.ConfirmQuitChoice, effect)
	}

	_, effect = ReduceKey(state, tea.KeyMsg{Type: tea.KeyEnter})
	if effect != KeyEffectConfirmQuitAccept {
		t.Fatalf("enter on quit choice: effect = %d, want accept", effect)
	}

	state.ConfirmQuitChoice = ConfirmQuitChoiceCancel
	state, effect = ReduceKey(state, tea.KeyMsg{Type: tea.KeyEnter})
	if effect != KeyEffectNone || state.ConfirmQuit {
		t.Fatalf("enter on cancel choice: confirm=%v effect=%d", state.ConfirmQuit, effect)
	}
}

func TestReduceKey_EscDismissesQuitConfirm(t *testing.T) {
	state := testState()
	state.ConfirmQuit = true
	state, effect := ReduceKey(state, tea.KeyMsg{Type: tea.KeyEsc})
	if state.ConfirmQuit || effect != KeyEffectNone {
		t.Fatalf("esc: confirm=%v effect=%d", state.ConfirmQuit, effect)
	}
}

func TestReduceActivate_ByFocusedControl(t *testing.T) {
	tests := []struct {
		name  string
		focus func(State) int
		want  ActivateEffect
	}{
		{"toggle", State.ToggleIndex, ActivateEffectToggleLink},
		{"quit", State.QuitIndex, ActivateEffectRequestQuit},
		{"debug", State.LogsDebugIndex, ActivateEffectDebugLevelChanged},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := testState()
			state.ShowLogs = true
			state.Focus = tt.focus(state)
			_, effect := ReduceActivate(state)
			if effect != tt.want {
				t.Fatalf("effect = %d, want %d", effect, tt.want)
			}
		})
	}
}

func TestReduceActivate_LogsButtonTogglesPanel(t *testing.T) {
	state := testState()
	state.Focus = state.LogsIndex()

	state, effect := ReduceActivate(state)
	if effect != ActivateEffectNone || !state.ShowLogs || !state.FollowLogs {
		t.Fatalf("open: effect=%d show=%v follow=%v", effect, state.ShowLogs, state.FollowLogs)
	}

	state, _ = ReduceActivate(state)
	if state.ShowLogs {
		t.Fatal("logs panel still open after second activate")
	}
}

func TestRenderActionsRow_WrapsAtMaxWidth(t *testing.T) {
	segments := []string{"[aaaa]", "[bbbb]", "[cccc]"}
	narrow := RenderActionsRow(segments, 10)
	if lines := strings.Count(narrow, "\n") + 1; lines < 2 {
		t.Fatalf("narrow row did not wrap: %q", narrow)
	}
	wide := RenderActionsRow(segments, 100)
	if strings.Contains(wide, "\n") {
		t.Fatalf("wide row wrapped: %q", wide)
	}
}
