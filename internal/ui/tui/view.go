package tui

import (
	zone "github.com/lrstanley/bubblezone"

	tuiview "linkpanel/internal/ui/tui/view"
)

// runtimeView projects the controller-written surfaces into the render DTO
// consumed by the view package.
func (m *tuiModel) runtimeView() tuiview.Runtime {
	variant, icon, label, pulseVisible, rows := m.surfaces.snapshot()
	return tuiview.Runtime{
		BuildVersion: m.buildVersion,
		Online:       m.controller.State().Online(),
		Variant:      variant,
		Icon:         icon,
		Label:        label,
		PulseVisible: pulseVisible,
		Sensors:      rows,
	}
}

// View is the Bubble Tea render entrypoint; rendering is delegated to the
// pure view package.
func (m *tuiModel) View() string {
	return zone.Scan(tuiview.RenderApp(&m.ui, m.runtimeView()))
}
