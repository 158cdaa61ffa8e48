package panel

import (
	"sync"

	"linkpanel/internal/linkstate"
	"linkpanel/internal/logging"
)

// Zero is the canonical reading shown for every sensor while the link is
// offline, regardless of the sensor's unit or true value.
const Zero = "0"

// Icon glyphs for the two link states.
const (
	OnlineGlyph  = "◉"
	OfflineGlyph = "⊘"
)

// StyleTarget receives the indicator control's styling variant
// ("online" or "offline").
type StyleTarget interface {
	SetVariant(variant string)
}

type TextTarget interface {
	SetText(text string)
}

type VisibilityTarget interface {
	SetVisible(visible bool)
}

// SensorTarget is one sensor display element: an immutable true value plus a
// mutable displayed reading.
type SensorTarget interface {
	TrueValue() string
	SetReading(text string)
}

// Bindings is the fixed surface set the controller writes to. A nil field
// means the surface is absent from the host UI; the controller degrades to
// skipping that surface instead of failing.
type Bindings struct {
	Indicator StyleTarget
	Icon      TextTarget
	Label     TextTarget
	Pulse     VisibilityTarget
	Sensors   []SensorTarget
}

// Controller owns the simulated link state and maps it onto the bound
// surfaces. It is the single writer for all of them; every operation runs to
// completion before the next one starts.
type Controller struct {
	mu       sync.Mutex
	state    linkstate.State
	surfaces Bindings
	logger   *logging.Logger

	ready    bool
	deferred bool
}

// New binds the controller to its display surfaces. The initial state is
// always Disconnected. Missing surfaces are reported once, here, and then
// silently skipped on every render.
func New(surfaces Bindings, logger *logging.Logger) *Controller {
	c := &Controller{
		state:    linkstate.Disconnected,
		surfaces: surfaces,
		logger:   logger,
	}
	c.reportMissingSurfaces()
	return c
}

func (c *Controller) reportMissingSurfaces() {
	if c.surfaces.Indicator == nil {
		c.logger.Warn("indicator surface missing, styling updates disabled")
	}
	if c.surfaces.Icon == nil {
		c.logger.Warn("icon surface missing, glyph updates disabled")
	}
	if c.surfaces.Label == nil {
		c.logger.Warn("label surface missing, label updates disabled")
	}
	if c.surfaces.Pulse == nil {
		c.logger.Warn("pulse surface missing, pulse visibility updates disabled")
	}
	if len(c.surfaces.Sensors) == 0 {
		c.logger.Warn("no sensor display elements bound")
	}
}

// State reports the current link state.
func (c *Controller) State() linkstate.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Toggle inverts the link state and re-renders. It is total: valid from
// either state, with no failure mode.
func (c *Controller) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	previous := c.state
	c.state = c.state.Toggled()
	c.logger.Info("link state toggled",
		logging.Field("from", previous),
		logging.Field("to", c.state))
	c.renderLocked()
}

// Render reapplies the current state to every bound surface. Idempotent:
// repeated calls with unchanged state write the same values again.
func (c *Controller) Render() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderLocked()
}

// Initialize schedules exactly one render for when the display surface
// becomes ready. If SurfaceReady has already fired, the render runs now.
func (c *Controller) Initialize() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready {
		c.renderLocked()
		return
	}
	c.deferred = true
}

// SurfaceReady is the one-shot readiness notification from the host UI.
// Repeat calls are ignored; the deferred initial render runs at most once.
func (c *Controller) SurfaceReady() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready {
		return
	}
	c.ready = true
	if c.deferred {
		c.deferred = false
		c.renderLocked()
	}
}

// RebindSensors swaps the sensor display elements (catalog reload) and
// re-renders so the state/display invariant holds for the new set.
func (c *Controller) RebindSensors(targets []SensorTarget) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.surfaces.Sensors = targets
	c.logger.Debug("sensor surfaces rebound", logging.Field("count", len(targets)))
	c.renderLocked()
}

func (c *Controller) renderLocked() {
	state := c.state
	if c.surfaces.Indicator != nil {
		c.surfaces.Indicator.SetVariant(state.Variant())
	}
	if c.surfaces.Icon != nil {
		if state.Online() {
			c.surfaces.Icon.SetText(OnlineGlyph)
		} else {
			c.surfaces.Icon.SetText(OfflineGlyph)
		}
	}
	if c.surfaces.Label != nil {
		c.surfaces.Label.SetText(state.Label())
	}
	if c.surfaces.Pulse != nil {
		c.surfaces.Pulse.SetVisible(!state.Online())
	}
	for _, sensor := range c.surfaces.Sensors {
		if sensor == nil {
			continue
		}
		if state.Online() {
			sensor.SetReading(sensor.TrueValue())
		} else {
			sensor.SetReading(Zero)
		}
	}
}
