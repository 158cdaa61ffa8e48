package linkstate

import "testing"

func TestToggled_IsAnInvolution(t *testing.T) {
	for _, start := range []State{Disconnected, Connected} {
		if start.Toggled() == start {
			t.Fatalf("Toggled() from %v did not change state", start)
		}
		if got := start.Toggled().Toggled(); got != start {
			t.Fatalf("double toggle from %v = %v, want %v", start, got, start)
		}
	}
}

func TestState_Presentation(t *testing.T) {
	tests := []struct {
		state   State
		str     string
		label   string
		variant string
		online  bool
	}{
		{Disconnected, "disconnected", "Offline", "offline", false},
		{Connected, "connected", "Online", "online", true},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if tt.state.String() != tt.str {
				t.Fatalf("String() = %q, want %q", tt.state.String(), tt.str)
			}
			if tt.state.Label() != tt.label {
				t.Fatalf("Label() = %q, want %q", tt.state.Label(), tt.label)
			}
			if tt.state.Variant() != tt.variant {
				t.Fatalf("Variant() = %q, want %q", tt.state.Variant(), tt.variant)
			}
			if tt.state.Online() != tt.online {
				t.Fatalf("Online() = %v, want %v", tt.state.Online(), tt.online)
			}
		})
	}
}
