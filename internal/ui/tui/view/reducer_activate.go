package view

type ActivateEffect int

const (
	ActivateEffectNone ActivateEffect = iota
	ActivateEffectToggleLink
	ActivateEffectRequestQuit
	ActivateEffectDebugLevelChanged
)

func ReduceActivate(state State) (State, ActivateEffect) {
	switch state.Focus {
	case state.ToggleIndex():
		return state, ActivateEffectToggleLink
	case state.LogsIndex():
		state.ShowLogs = !state.ShowLogs
		if state.ShowLogs {
			state.FollowLogs = true
			state.LogView.GotoBottom()
		}
		return state, ActivateEffectNone
	case state.QuitIndex():
		return state, ActivateEffectRequestQuit
	case state.LogsDebugIndex():
		state.DebugOn = !state.DebugOn
		return state, ActivateEffectDebugLevelChanged
	default:
		return state, ActivateEffectNone
	}
}
