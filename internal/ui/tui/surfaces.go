package tui

import (
	"sync"

	"linkpanel/internal/panel"
	"linkpanel/internal/sensors"
	"linkpanel/internal/ui/tui/view"
)

// surfaceStore is the terminal rendition of the display surfaces the panel
// controller writes to. The controller mutates it through the adapter types
// below; the model snapshots it into the render DTO each frame.
type surfaceStore struct {
	mu           sync.Mutex
	variant      string
	icon         string
	label        string
	pulseVisible bool
	sensors      []*sensorSurface
}

type indicatorSurface struct{ store *surfaceStore }

func (s *indicatorSurface) SetVariant(variant string) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.variant = variant
}

type iconSurface struct{ store *surfaceStore }

func (s *iconSurface) SetText(text string) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.icon = text
}

type labelSurface struct{ store *surfaceStore }

func (s *labelSurface) SetText(text string) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.label = text
}

type pulseSurface struct{ store *surfaceStore }

func (s *pulseSurface) SetVisible(visible bool) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.pulseVisible = visible
}

type sensorSurface struct {
	store     *surfaceStore
	name      string
	trueValue string
	reading   string
}

func (s *sensorSurface) TrueValue() string {
	return s.trueValue
}

func (s *sensorSurface) SetReading(text string) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.reading = text
}

func (s *surfaceStore) bindings() panel.Bindings {
	targets := make([]panel.SensorTarget, 0, len(s.sensors))
	for _, sensor := range s.sensors {
		targets = append(targets, sensor)
	}
	return panel.Bindings{
		Indicator: &indicatorSurface{store: s},
		Icon:      &iconSurface{store: s},
		Label:     &labelSurface{store: s},
		Pulse:     &pulseSurface{store: s},
		Sensors:   targets,
	}
}

// replaceSensors swaps the sensor surfaces for a reloaded catalog and returns
// the new targets for the controller to rebind.
func (s *surfaceStore) replaceSensors(specs []sensors.Spec) []panel.SensorTarget {
	s.mu.Lock()
	next := make([]*sensorSurface, 0, len(specs))
	for _, spec := range specs {
		next = append(next, &sensorSurface{
			store:     s,
			name:      spec.DisplayName(),
			trueValue: spec.Value,
		})
	}
	s.sensors = next
	s.mu.Unlock()

	targets := make([]panel.SensorTarget, 0, len(next))
	for _, sensor := range next {
		targets = append(targets, sensor)
	}
	return targets
}

func (s *surfaceStore) snapshot() (string, string, string, bool, []view.SensorRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]view.SensorRow, 0, len(s.sensors))
	for _, sensor := range s.sensors {
		rows = append(rows, view.SensorRow{Name: sensor.name, Reading: sensor.reading})
	}
	return s.variant, s.icon, s.label, s.pulseVisible, rows
}
