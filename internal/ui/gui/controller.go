//go:build !headless

package gui

import (
	"context"
	"image/color"
	"math"
	"os"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"linkpanel/internal/config"
	"linkpanel/internal/logging"
	"linkpanel/internal/panel"
	"linkpanel/internal/sensors"
)

const (
	pulseTickInterval = 120 * time.Millisecond
	maxLogRows        = 1000
)

type controller struct {
	app    fyne.App
	win    fyne.Window
	logger *logging.Logger
	panel  *panel.Controller

	settings    config.PanelSettings
	draft       config.PanelSettings
	catalogPath string

	indicator  *canvas.Rectangle
	iconLabel  *widget.Label
	stateLabel *widget.Label
	pulse      *pulseDot
	pulseBox   *fyne.Container
	toggle     *sliderToggle

	sensorsBox     *fyne.Container
	sensorAdapters []*sensorAdapter

	debugLogs      *widget.Check
	pulseAnim      *sliderToggle
	catalogEntry   *widget.Entry
	saveSettings   *widget.Button
	cancelSettings *widget.Button

	logWindow     fyne.Window
	logWindowOpen bool
	logEntry      *widget.Entry
	logRawLines   []string

	pulseVisible bool
	animPhase    int

	cleanupOnce    sync.Once
	quitOnce       sync.Once
	bgWG           sync.WaitGroup
	unsubscribe    func()
	appCtx         context.Context
	appCancel      context.CancelFunc
	shuttingDown   bool
	confirmingQuit bool
}

func Run(rootCtx context.Context, buildVersion string, defaults config.Options) {
	uiApp := app.New()
	c := newController(rootCtx, uiApp, defaults)
	c.logger.Info("starting link panel UI", logging.Field("version", buildVersion))
	c.run()
}

func newController(rootCtx context.Context, uiApp fyne.App, defaults config.Options) *controller {
	settings := config.SettingsFromOptions(defaults)
	if saved, err := config.LoadSettings(); err == nil {
		defaults = config.MergeOptionsWithSettings(defaults, saved)
		settings = saved
	}
	settings.CatalogPath = strings.TrimSpace(defaults.Catalog)
	settings.Debug = defaults.Debug
	settings.PulseAnimation = !defaults.NoPulse

	logger := logging.New(false)
	logger.SetDebugEnabled(settings.Debug)
	if err := logger.EnableFilePersistence(0); err != nil {
		logger.Warn("failed to enable file log persistence", logging.Field("error", err))
	}
	if rootCtx == nil {
		rootCtx = context.Background()
	}
	appCtx, appCancel := context.WithCancel(rootCtx)

	catalogPath := settings.CatalogPath
	if catalogPath == "" {
		catalogPath = config.DefaultCatalogPath()
	}

	c := &controller{
		app:         uiApp,
		settings:    settings,
		draft:       settings,
		logger:      logger,
		catalogPath: catalogPath,
		appCtx:      appCtx,
		appCancel:   appCancel,
	}

	c.win = uiApp.NewWindow("Link Panel")
	c.win.SetMaster()
	c.win.Resize(fyne.NewSize(420, 340))
	c.buildUI()
	c.bindPanel()
	c.bindLogs()
	c.watchCatalog()
	c.app.Lifecycle().SetOnStopped(func() {
		c.logger.Debug("app lifecycle OnStopped hook triggered")
		c.cleanup()
	})
	return c
}

func (c *controller) run() {
	c.startPulseLoop()
	go func() {
		<-c.appCtx.Done()
		fyne.Do(func() {
			if c.shuttingDown {
				return
			}
			c.logger.Info("root context canceled; shutting down link panel UI")
			c.quitApp()
		})
	}()
	c.win.SetOnClosed(func() {
		c.logger.Debug("main window OnClosed hook triggered")
		if c.shuttingDown {
			return
		}
		c.cleanup()
	})
	c.win.SetCloseIntercept(func() {
		c.requestQuit()
	})

	c.win.Show()
	c.panel.SurfaceReady()
	c.app.Run()
}

func (c *controller) buildUI() {
	c.indicator = canvas.NewRectangle(indicatorOfflineColor)
	c.indicator.CornerRadius = 6
	c.indicator.SetMinSize(fyne.NewSize(8, 56))

	c.iconLabel = widget.NewLabel("")
	c.iconLabel.TextStyle = fyne.TextStyle{Bold: true}
	c.stateLabel = widget.NewLabel("")
	c.stateLabel.TextStyle = fyne.TextStyle{Bold: true}
	c.pulse = newPulseDot()
	c.pulseBox = container.NewHBox(c.pulse)
	c.pulseBox.Hide()

	c.toggle = newSliderToggle(func(bool) {
		c.panel.Toggle()
		c.syncToggle()
	})

	statusRow := container.NewHBox(c.iconLabel, c.stateLabel, c.pulseBox)
	toggleRow := container.NewBorder(nil, nil, widget.NewLabel("Link"), c.toggle, nil)
	statusPanel := container.NewBorder(nil, nil, c.indicator, nil,
		container.NewPadded(container.NewVBox(statusRow, toggleRow)))

	c.sensorsBox = container.NewVBox()
	c.rebuildSensorRows(c.loadCatalog())
	sensorsPanel := container.NewBorder(
		widget.NewLabel("Sensors"), nil, nil, nil,
		container.NewVScroll(c.sensorsBox))

	showLogs := widget.NewButton("Show logs", func() {
		c.setLogVisibility(true)
	})

	overviewTab := container.NewTabItem("Overview", container.NewPadded(container.NewBorder(
		container.NewVBox(statusPanel, showLogs), nil, nil, nil, sensorsPanel)))
	settingsTab := container.NewTabItem("Settings", c.buildSettingsTab())
	tabs := container.NewAppTabs(overviewTab, settingsTab)
	tabs.SetTabLocation(container.TabLocationTop)

	c.initLogWindow()

	minAnchor := canvas.NewRectangle(color.Transparent)
	minAnchor.SetMinSize(fyne.NewSize(400, 300))
	c.win.SetContent(container.NewStack(minAnchor, tabs))
}

func (c *controller) buildSettingsTab() *container.TabItem {
	c.catalogEntry = widget.NewEntry()
	c.catalogEntry.SetText(c.draft.CatalogPath)
	c.catalogEntry.OnChanged = func(v string) {
		c.draft.CatalogPath = strings.TrimSpace(v)
		c.refreshSettingsActions()
	}

	c.debugLogs = widget.NewCheck("Debug level", func(v bool) {
		c.draft.Debug = v
		c.logger.SetDebugEnabled(v)
		c.refreshSettingsActions()
	})
	c.debugLogs.SetChecked(c.draft.Debug)

	c.pulseAnim = newSliderToggle(func(v bool) {
		c.draft.PulseAnimation = v
		c.refreshSettingsActions()
	})
	c.pulseAnim.SetCheckedSilently(c.draft.PulseAnimation)

	c.saveSettings = widget.NewButton("Save", c.saveDraftSettings)
	c.cancelSettings = widget.NewButton("Cancel", c.cancelDraftSettings)
	actions := container.NewHBox(c.saveSettings, c.cancelSettings)
	c.refreshSettingsActions()

	form := container.NewVBox(
		widget.NewLabel("Sensor catalog"),
		c.catalogEntry,
		container.NewBorder(nil, nil, widget.NewLabel("Pulse animation"), c.pulseAnim, nil),
		c.debugLogs,
		actions,
	)
	return container.NewTabItem("Settings", container.NewPadded(form))
}

func (c *controller) bindPanel() {
	c.panel = panel.New(panel.Bindings{
		Indicator: &indicatorAdapter{rect: c.indicator},
		Icon:      &labelAdapter{label: c.iconLabel},
		Label:     &labelAdapter{label: c.stateLabel},
		Pulse:     &pulseAdapter{owner: c},
		Sensors:   c.sensorTargets(),
	}, c.logger)
	c.panel.Initialize()
}

func (c *controller) loadCatalog() []sensors.Spec {
	specs, err := sensors.LoadCatalog(c.catalogPath)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Warn("failed to load sensor catalog, using built-in sensors",
				logging.Field("path", c.catalogPath), logging.Field("error", err))
		}
		return sensors.DefaultCatalog()
	}
	return specs
}

func (c *controller) rebuildSensorRows(specs []sensors.Spec) {
	rows := make([]fyne.CanvasObject, 0, len(specs))
	adapters := make([]*sensorAdapter, 0, len(specs))
	for _, spec := range specs {
		name := widget.NewLabel(spec.DisplayName())
		name.Truncation = fyne.TextTruncateEllipsis
		reading := widget.NewLabel("")
		reading.TextStyle = fyne.TextStyle{Bold: true}
		rows = append(rows, container.NewBorder(nil, nil, name, reading, nil))
		adapters = append(adapters, &sensorAdapter{trueValue: spec.Value, reading: reading})
	}
	c.sensorAdapters = adapters
	c.sensorsBox.Objects = rows
	c.sensorsBox.Refresh()
}

func (c *controller) sensorTargets() []panel.SensorTarget {
	targets := make([]panel.SensorTarget, 0, len(c.sensorAdapters))
	for _, adapter := range c.sensorAdapters {
		targets = append(targets, adapter)
	}
	return targets
}

func (c *controller) watchCatalog() {
	if c.catalogPath == "" {
		return
	}
	watcher, err := sensors.NewWatcher(c.catalogPath, c.logger)
	if err != nil {
		c.logger.Warn("catalog watcher unavailable, hot reload disabled",
			logging.Field("path", c.catalogPath), logging.Field("error", err))
		return
	}
	c.startBackgroundLoop("catalog watcher", func(ctx context.Context) {
		if runErr := watcher.Run(ctx); runErr != nil {
			c.logger.Error("catalog watcher stopped", logging.Field("error", runErr))
		}
	})
	c.startBackgroundLoop("catalog reload pump", func(ctx context.Context) {
		for {
			select {
			case <-ctx.Done():
				return
			case specs, ok := <-watcher.Updates():
				if !ok {
					return
				}
				fyne.Do(func() {
					c.rebuildSensorRows(specs)
					c.panel.RebindSensors(c.sensorTargets())
				})
			}
		}
	})
}

func (c *controller) startBackgroundLoop(name string, fn func(context.Context)) {
	c.bgWG.Go(func() {
		c.logger.Debug("background loop started", logging.Field("loop", name))
		fn(c.appCtx)
		c.logger.Debug("background loop stopped", logging.Field("loop", name))
	})
}

// startPulseLoop drives the offline pulse. The dot stays at the dim end of
// the ramp when animation is disabled in settings.
func (c *controller) startPulseLoop() {
	c.startBackgroundLoop("pulse animation", func(ctx context.Context) {
		ticker := time.NewTicker(pulseTickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fyne.Do(func() {
					if !c.pulseVisible {
						return
					}
					if !c.settings.PulseAnimation {
						c.pulse.SetPhase(0)
						return
					}
					c.animPhase++
					c.pulse.SetPhase((math.Sin(float64(c.animPhase)*0.45) + 1) / 2)
				})
			}
		}
	})
}

func (c *controller) setPulseVisible(visible bool) {
	c.pulseVisible = visible
	if visible {
		c.pulseBox.Show()
	} else {
		c.pulseBox.Hide()
	}
	c.pulseBox.Refresh()
}

// syncToggle keeps the switch aligned with the panel state without firing
// its change callback again.
func (c *controller) syncToggle() {
	c.toggle.SetCheckedSilently(c.panel.State().Online())
}

func (c *controller) bindLogs() {
	logCh := make(chan string, 256)
	c.unsubscribe = c.logger.Subscribe(func(event logging.Event) {
		line := logging.FormatEventLine(event)
		select {
		case logCh <- line:
		default:
			select {
			case <-logCh:
			default:
			}
			logCh <- line
		}
	})

	c.startBackgroundLoop("gui log pump", func(ctx context.Context) {
		for {
			select {
			case <-ctx.Done():
				return
			case line, ok := <-logCh:
				if !ok {
					return
				}
				fyne.Do(func() {
					c.appendLog(line)
				})
			}
		}
	})
}

func (c *controller) initLogWindow() {
	c.logEntry = widget.NewMultiLineEntry()
	c.logEntry.Wrapping = fyne.TextWrapWord
	c.logEntry.TextStyle = fyne.TextStyle{Monospace: true}

	clearButton := widget.NewButton("Clear", func() {
		c.logRawLines = nil
		c.logEntry.SetText("")
	})
	c.logWindow = c.app.NewWindow("Link Panel Logs")
	c.logWindow.Resize(fyne.NewSize(720, 420))
	c.logWindow.SetContent(container.NewBorder(
		container.NewHBox(clearButton), nil, nil, nil,
		container.NewVScroll(c.logEntry)))
	c.logWindow.SetCloseIntercept(func() {
		if c.shuttingDown {
			return
		}
		c.logWindowOpen = false
		c.logWindow.Hide()
	})
}

func (c *controller) appendLog(line string) {
	if c.logEntry == nil {
		return
	}
	c.logRawLines = append(c.logRawLines, line)
	if len(c.logRawLines) > maxLogRows {
		c.logRawLines = append([]string(nil), c.logRawLines[len(c.logRawLines)-maxLogRows:]...)
	}
	c.logEntry.SetText(strings.Join(c.logRawLines, "\n"))
	c.logEntry.CursorRow = len(c.logRawLines)
}

func (c *controller) setLogVisibility(visible bool) {
	if visible {
		c.logWindowOpen = true
		c.logWindow.Show()
		c.logWindow.RequestFocus()
	} else {
		c.logWindowOpen = false
		c.logWindow.Hide()
	}
}

func (c *controller) settingsDirty() bool {
	return c.draft != c.settings
}

func (c *controller) refreshSettingsActions() {
	dirty := c.settingsDirty()
	if c.saveSettings != nil {
		if dirty {
			c.saveSettings.Enable()
		} else {
			c.saveSettings.Disable()
		}
	}
	if c.cancelSettings != nil {
		if dirty {
			c.cancelSettings.Enable()
		} else {
			c.cancelSettings.Disable()
		}
	}
}

func (c *controller) saveDraftSettings() {
	c.settings = c.draft
	if err := config.SaveSettings(c.settings); err != nil {
		dialog.ShowError(err, c.win)
		return
	}
	c.refreshSettingsActions()
}

func (c *controller) cancelDraftSettings() {
	c.draft = c.settings
	c.catalogEntry.SetText(c.draft.CatalogPath)
	c.debugLogs.SetChecked(c.draft.Debug)
	c.pulseAnim.SetCheckedSilently(c.draft.PulseAnimation)
	c.logger.SetDebugEnabled(c.draft.Debug)
	c.refreshSettingsActions()
}

func (c *controller) cleanup() {
	c.cleanupOnce.Do(func() {
		c.shuttingDown = true
		c.logger.Debug("gui cleanup started")
		if c.appCancel != nil {
			c.appCancel()
		}
		if c.unsubscribe != nil {
			c.unsubscribe()
		}
		if ok := waitGroupWithTimeout(&c.bgWG, 2*time.Second); !ok {
			c.logger.Warn("GUI background loops did not stop within timeout")
		}
		c.logger.Debug("gui cleanup complete")
		_ = c.logger.Close()
	})
}

func (c *controller) quitApp() {
	c.quitOnce.Do(func() {
		c.logger.Debug("quit requested")
		c.cleanup()
		c.app.Quit()
	})
}

func (c *controller) requestQuit() {
	if c.shuttingDown {
		return
	}
	if !c.panel.State().Online() {
		c.quitApp()
		return
	}
	if c.confirmingQuit {
		return
	}
	c.confirmingQuit = true
	dialog.ShowConfirm(
		"Quit Link Panel?",
		"The link is currently connected.",
		func(ok bool) {
			c.confirmingQuit = false
			if !ok {
				return
			}
			c.quitApp()
		},
		c.win,
	)
}

func waitGroupWithTimeout(wg *sync.WaitGroup, timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	if timeout <= 0 {
		<-done
		return true
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-done:
		return true
	case <-timer.C:
		return false
	}
}
