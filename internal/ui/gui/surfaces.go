//go:build !headless

package gui

import (
	"image/color"

	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

var (
	indicatorOnlineColor  = color.NRGBA{R: 72, G: 189, B: 109, A: 255}
	indicatorOfflineColor = color.NRGBA{R: 220, G: 84, B: 84, A: 255}
)

// The panel controller drives the GUI through these adapters. All writes
// happen on the fyne main thread: user taps, the post-show readiness hook,
// and catalog rebinds wrapped in fyne.Do.

type indicatorAdapter struct {
	rect *canvas.Rectangle
}

func (a *indicatorAdapter) SetVariant(variant string) {
	if variant == "online" {
		a.rect.FillColor = indicatorOnlineColor
	} else {
		a.rect.FillColor = indicatorOfflineColor
	}
	a.rect.Refresh()
}

type labelAdapter struct {
	label *widget.Label
}

func (a *labelAdapter) SetText(text string) {
	a.label.SetText(text)
}

type pulseAdapter struct {
	owner *controller
}

func (a *pulseAdapter) SetVisible(visible bool) {
	a.owner.setPulseVisible(visible)
}

type sensorAdapter struct {
	trueValue string
	reading   *widget.Label
}

func (a *sensorAdapter) TrueValue() string {
	return a.trueValue
}

func (a *sensorAdapter) SetReading(text string) {
	a.reading.SetText(text)
}
