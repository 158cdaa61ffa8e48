package linkstate

// State is the simulated link state. Exactly one of the two values holds at
// any time; there is no intermediate or unknown state.
type State int

const (
	Disconnected State = iota
	Connected
)

// Toggled returns the inverse state. Toggling is total: it is valid from
// either state and always yields the other one.
func (s State) Toggled() State {
	if s == Connected {
		return Disconnected
	}
	return Connected
}

func (s State) Online() bool {
	return s == Connected
}

// String is the machine-readable form, used in logs and settings.
func (s State) String() string {
	if s == Connected {
		return "connected"
	}
	return "disconnected"
}

// Label is the operator-facing form shown on the label surface.
func (s State) Label() string {
	if s == Connected {
		return "Online"
	}
	return "Offline"
}

// Variant names the styling variant applied to the indicator control.
func (s State) Variant() string {
	if s == Connected {
		return "online"
	}
	return "offline"
}
