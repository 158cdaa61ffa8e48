package view

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

type MouseEffect int

const (
	MouseEffectNone MouseEffect = iota
	MouseEffectActivateFocused
	MouseEffectConfirmQuitAccept
)

func ReduceMouse(state State, msg tea.MouseMsg) (State, tea.Cmd, MouseEffect) {
	if msg.Action == tea.MouseActionMotion {
		state.HoverZone = hoveredZone(msg)
		return state, nil, MouseEffectNone
	}

	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		if state.ConfirmQuit {
			switch {
			case zone.Get(zoneDialogQuitAccept).InBounds(msg):
				return state, nil, MouseEffectConfirmQuitAccept
			case zone.Get(zoneDialogQuitCancel).InBounds(msg):
				state.ConfirmQuit = false
				return state, nil, MouseEffectNone
			default:
				return state, nil, MouseEffectNone
			}
		}

		for zoneID, focus := range map[string]int{
			zoneLinkToggle: state.ToggleIndex(),
			zoneLogs:       state.LogsIndex(),
			zoneQuit:       state.QuitIndex(),
			zoneLogsDebug:  state.LogsDebugIndex(),
		} {
			if zone.Get(zoneID).InBounds(msg) {
				state.Focus = focus
				return state, nil, MouseEffectActivateFocused
			}
		}
	}

	if state.ShowLogs {
		var cmd tea.Cmd
		state.LogView, cmd = state.LogView.Update(msg)
		state.FollowLogs = state.LogView.AtBottom()
		return state, cmd, MouseEffectNone
	}
	return state, nil, MouseEffectNone
}

func hoveredZone(msg tea.MouseMsg) string {
	for _, id := range []string{zoneLinkToggle, zoneLogs, zoneQuit, zoneLogsDebug} {
		if zone.Get(id).InBounds(msg) {
			return id
		}
	}
	return ""
}
