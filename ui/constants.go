package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// Window dimensions
const (
	WindowWidth  = 340
	WindowHeight = 560
)

// Display text sizes
const (
	DisplayTextSize = 44
	HistoryTextSize = 16
)

// Button colors
var (
	ColorDigit        = color.NRGBA{R: 51, G: 51, B: 51, A: 255}
	ColorFunction     = color.NRGBA{R: 165, G: 165, B: 165, A: 255}
	ColorAccent       = color.NRGBA{R: 255, G: 159, B: 10, A: 255}
	ColorTextLight    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	ColorTextDark     = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	ColorHistoryText  = color.NRGBA{R: 150, G: 150, B: 150, A: 255}
	ColorDisabledFill = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	ColorDisabledText = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
)

// Preference keys
const (
	prefRaw  = "calc.raw"
	prefLast = "calc.last"
)

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}
