package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"linkpanel/internal/config"
	"linkpanel/internal/logging"
	"linkpanel/internal/panel"
	"linkpanel/internal/sensors"
	tuiview "linkpanel/internal/ui/tui/view"
)

const (
	logChannelBufferSize = 512
	animTickInterval     = 120 * time.Millisecond
	runErrorExitCode     = 1
)

func Run(rootCtx context.Context, buildVersion string, opts config.Options) {
	defer forceDisableMouseTracking()

	saved, loadErr := config.LoadSettings()
	if loadErr == nil {
		opts = config.MergeOptionsWithSettings(opts, saved)
	} else {
		saved = config.SettingsFromOptions(opts)
	}

	logger := logging.New(false)
	logger.SetDebugEnabled(opts.Debug)
	if err := logger.EnableFilePersistence(0); err != nil {
		logger.Warn("failed to enable file log persistence", logging.Field("error", err))
	}
	logger.SetTerminalOutputEnabled(false)
	logger.Info("starting link panel TUI", logging.Field("version", buildVersion))

	m := newModel(rootCtx, buildVersion, opts, logger)
	m.settings = saved
	m.ui.ShowLogs = saved.ShowLogs
	zone.NewGlobal()
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	result, runErr := program.Run()
	model, _ := result.(*tuiModel)
	if model != nil {
		model.cleanup()
	}
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(runErrorExitCode)
	}
}

// Leftover mouse tracking sequences corrupt some shells after exit, so the
// disables are written unconditionally.
func forceDisableMouseTracking() {
	_, _ = os.Stdout.WriteString("\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l\x1b[?1015l")
}

func newModel(rootCtx context.Context, buildVersion string, opts config.Options, logger *logging.Logger) *tuiModel {
	if rootCtx == nil {
		rootCtx = context.Background()
	}
	runCtx, runCancel := context.WithCancel(rootCtx)

	catalogPath := strings.TrimSpace(opts.Catalog)
	if catalogPath == "" {
		catalogPath = config.DefaultCatalogPath()
	}
	specs := loadInitialCatalog(catalogPath, logger)

	store := &surfaceStore{}
	store.replaceSensors(specs)
	controller := panel.New(store.bindings(), logger)
	controller.Initialize()

	m := &tuiModel{
		buildVersion: buildVersion,
		modelDeps: modelDeps{
			controller: controller,
			logger:     logger,
			rootCtx:    runCtx,
			rootCancel: runCancel,
		},
		modelChannels: modelChannels{
			logCh: make(chan string, logChannelBufferSize),
		},
		surfaces: store,
		ui:       tuiview.NewState(opts),
	}

	if catalogPath != "" {
		if watcher, err := sensors.NewWatcher(catalogPath, logger); err != nil {
			logger.Warn("catalog watcher unavailable, hot reload disabled",
				logging.Field("path", catalogPath), logging.Field("error", err))
		} else {
			m.catalogCh = watcher.Updates()
			go func() {
				if runErr := watcher.Run(runCtx); runErr != nil {
					logger.Error("catalog watcher stopped", logging.Field("error", runErr))
				}
			}()
		}
	}

	m.unsubscribe = logger.Subscribe(func(event logging.Event) {
		line := logging.FormatEventANSI(event)
		select {
		case m.logCh <- line:
		default:
			select {
			case <-m.logCh:
			default:
			}
			m.logCh <- line
		}
	})

	return m
}

func loadInitialCatalog(path string, logger *logging.Logger) []sensors.Spec {
	if path == "" {
		return sensors.DefaultCatalog()
	}
	specs, err := sensors.LoadCatalog(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to load sensor catalog, using built-in sensors",
				logging.Field("path", path), logging.Field("error", err))
		}
		return sensors.DefaultCatalog()
	}
	logger.Info("sensor catalog loaded", logging.Field("path", path), logging.Field("count", len(specs)))
	return specs
}

func (m *tuiModel) Init() tea.Cmd {
	cmds := []tea.Cmd{
		waitForLog(m.logCh),
		tickCmd(),
	}
	if m.catalogCh != nil {
		cmds = append(cmds, waitForCatalog(m.catalogCh))
	}
	return tea.Batch(cmds...)
}

func waitForLog(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		line, ok := <-ch
		if !ok {
			return nil
		}
		return logMsg(line)
	}
}

func waitForCatalog(ch <-chan []sensors.Spec) tea.Cmd {
	return func() tea.Msg {
		specs, ok := <-ch
		if !ok {
			return nil
		}
		return catalogMsg(specs)
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(animTickInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m *tuiModel) cleanup() {
	m.cleanupOnce.Do(func() {
		if m.unsubscribe != nil {
			m.unsubscribe()
		}
		m.rootCancel()
		m.settings.ShowLogs = m.ui.ShowLogs
		if err := config.SaveSettings(m.settings); err != nil {
			m.logger.Warn("failed to persist panel settings", logging.Field("error", err))
		}
		m.logger.Info("link panel TUI stopped")
		_ = m.logger.Close()
	})
}
