//go:build !headless

package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const pulseDotSize = float32(12)

var (
	pulseDimColor    = color.NRGBA{R: 95, G: 16, B: 16, A: 255}
	pulseBrightColor = color.NRGBA{R: 255, G: 69, B: 69, A: 255}
)

// pulseDot is the offline pulse element: a small circle that the panel
// controller shows while the link is down and the animation loop breathes.
type pulseDot struct {
	widget.BaseWidget

	dot *canvas.Circle
}

func newPulseDot() *pulseDot {
	d := &pulseDot{dot: canvas.NewCircle(pulseDimColor)}
	d.ExtendBaseWidget(d)
	return d
}

func (d *pulseDot) MinSize() fyne.Size {
	return fyne.NewSize(pulseDotSize+4, pulseDotSize+4)
}

func (d *pulseDot) CreateRenderer() fyne.WidgetRenderer {
	anchor := canvas.NewRectangle(color.Transparent)
	anchor.SetMinSize(d.MinSize())
	dot := container.NewGridWrap(fyne.NewSize(pulseDotSize, pulseDotSize), d.dot)
	wrapped := container.NewStack(anchor, container.NewCenter(dot))
	return widget.NewSimpleRenderer(wrapped)
}

// SetPhase moves the dot along the dim-to-bright ramp. t is clamped to [0,1].
func (d *pulseDot) SetPhase(t float64) {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(a uint8, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	d.dot.FillColor = color.NRGBA{
		R: lerp(pulseDimColor.R, pulseBrightColor.R),
		G: lerp(pulseDimColor.G, pulseBrightColor.G),
		B: lerp(pulseDimColor.B, pulseBrightColor.B),
		A: 255,
	}
	d.dot.Refresh()
}
