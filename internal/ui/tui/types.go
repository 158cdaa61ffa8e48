package tui

import (
	"context"
	"sync"

	"linkpanel/internal/config"
	"linkpanel/internal/logging"
	"linkpanel/internal/panel"
	"linkpanel/internal/sensors"
	tuiview "linkpanel/internal/ui/tui/view"
)

const tuiLogLineLimit = 5_000

const (
	minLogPanelHeight      = 6
	nonLogLayoutReserveMin = 18
)

type logMsg string
type tickMsg struct{}
type catalogMsg []sensors.Spec
type quitNowMsg struct{}

type modelDeps struct {
	controller  *panel.Controller
	logger      *logging.Logger
	unsubscribe func()
	rootCtx     context.Context
	rootCancel  context.CancelFunc
}

type modelChannels struct {
	logCh     chan string
	catalogCh <-chan []sensors.Spec
}

type tuiModel struct {
	buildVersion string
	settings     config.PanelSettings
	modelDeps
	modelChannels
	surfaces     *surfaceStore
	surfaceReady bool
	quitting     bool
	cleanupOnce  sync.Once
	ui           tuiview.State
}
