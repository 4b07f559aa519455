package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"circlecalc/internal/calc"
)

// Display shows the previous expression above the current entry.
type Display struct {
	history *canvas.Text
	current *canvas.Text
	box     *fyne.Container
}

// NewDisplay creates a display showing "0".
func NewDisplay() *Display {
	d := &Display{}

	d.history = canvas.NewText("", ColorHistoryText)
	d.history.Alignment = fyne.TextAlignTrailing
	d.history.TextSize = HistoryTextSize

	d.current = canvas.NewText("0", ColorTextLight)
	d.current.Alignment = fyne.TextAlignTrailing
	d.current.TextSize = DisplayTextSize

	d.box = container.NewVBox(layout.NewSpacer(), d.history, d.current)
	return d
}

// Container returns the display's container.
func (d *Display) Container() *fyne.Container {
	return d.box
}

// Show renders a calculator screen. Must be called on the UI goroutine.
func (d *Display) Show(scr calc.Screen) {
	d.history.Text = scr.History
	d.current.Text = scr.Display
	d.history.Refresh()
	d.current.Refresh()
}

// Text returns the current entry as shown.
func (d *Display) Text() string {
	return d.current.Text
}

// HistoryText returns the history line as shown.
func (d *Display) HistoryText() string {
	return d.history.Text
}
