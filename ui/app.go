package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"circlecalc/internal/calc"
	"circlecalc/internal/i18n"
)

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App, c *calc.Calculator) fyne.Window {
	win := app.NewWindow(i18n.T("app.title"))
	win.Resize(NewWindowSize())

	prefs := app.Preferences()
	LoadState(prefs, c)

	display := NewDisplay()
	tapeView := NewTapeView()
	keypad := NewKeypad(c, display, tapeView)

	calcTab := container.NewTabItem(i18n.T("tab.calculator"),
		container.NewBorder(display.Container(), nil, nil, nil, keypad.Container()))
	tapeTab := container.NewTabItem(i18n.T("tab.tape"),
		container.NewBorder(nil, keypad.TapeControls(), nil, nil, tapeView.Container()))
	tabs := container.NewAppTabs(calcTab, tapeTab)

	win.SetContent(tabs)
	win.Canvas().SetOnTypedRune(keypad.TypedRune)
	win.Canvas().SetOnTypedKey(keypad.TypedKey)

	win.SetCloseIntercept(func() {
		SaveState(prefs, c)
		win.Close()
	})

	return win
}

// LoadState restores the expression saved by a previous run.
func LoadState(prefs fyne.Preferences, c *calc.Calculator) {
	c.Restore(calc.State{
		Raw:  prefs.String(prefRaw),
		Last: prefs.String(prefLast),
	})
}

// SaveState stores the current expression for the next run.
func SaveState(prefs fyne.Preferences, c *calc.Calculator) {
	s := c.State()
	prefs.SetString(prefRaw, s.Raw)
	prefs.SetString(prefLast, s.Last)
}
