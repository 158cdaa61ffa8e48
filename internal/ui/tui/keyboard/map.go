package keyboard

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	NextFocus   key.Binding
	PrevFocus   key.Binding
	Activate    key.Binding
	ToggleLink  key.Binding
	Quit        key.Binding
	ModalToggle key.Binding
}

func New() Map {
	return Map{
		NextFocus: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/down", "next"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/up", "prev"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "activate"),
		),
		ToggleLink: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle link"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		ModalToggle: key.NewBinding(
			key.WithKeys("tab", "up", "down", "left", "right"),
			key.WithHelp("tab/arrows", "toggle"),
		),
	}
}

func (m Map) ShortHelp() []key.Binding {
	return []key.Binding{m.NextFocus, m.Activate, m.ToggleLink, m.Quit}
}

func (m Map) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.NextFocus, m.PrevFocus, m.Activate},
		{m.ToggleLink, m.Quit},
	}
}
